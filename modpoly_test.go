package modpoly

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jonathanmweiss/go-modpoly/coeff"
	"github.com/jonathanmweiss/go-modpoly/poly"
	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	a := assert.New(t)

	t.Run("valid", func(t *testing.T) {
		p, err := ToyParams[uint64](coeff.Uint64)
		a.NoError(err)
		a.Equal(5, p.D())
		a.Equal(uint64(11), p.N())
		a.Equal(uint64(11), p.Modulus())
		a.Equal([]uint64{1, 3, 5, 0, 8, 6}, p.Irreducible())
		a.True(p.IsField())

		k, err := KyberLikeParams[int32](coeff.Int32)
		a.NoError(err)
		a.Equal(256, k.D())
		a.True(k.IsField())

		c, err := NewParams[uint64](coeff.Uint64, 12, []uint64{1, 0, 1})
		a.NoError(err)
		a.False(c.IsField())
	})

	t.Run("tooShort", func(t *testing.T) {
		_, err := NewParams[uint64](coeff.Uint64, 11, []uint64{1})
		a.ErrorIs(err, ErrIrreducibleTooShort)

		_, err = NewParams[uint64](coeff.Uint64, 11, nil)
		a.ErrorIs(err, ErrIrreducibleTooShort)
	})

	t.Run("notMonic", func(t *testing.T) {
		_, err := NewParams[uint64](coeff.Uint64, 12, []uint64{1, 0, 4})
		a.ErrorIs(err, ErrIrreducibleNotMonic)

		_, err = NewParams[uint64](coeff.Uint64, 11, []uint64{1, 1, 0})
		a.ErrorIs(err, ErrIrreducibleNotMonic)

		// without a modulus only 1 is a unit.
		_, err = NewParams[int64](coeff.Int64, 0, []uint64{1, 2})
		a.ErrorIs(err, ErrIrreducibleNotMonic)

		_, err = NewParams[int64](coeff.Int64, 0, []uint64{1, 1})
		a.NoError(err)
	})

	t.Run("outOfRange", func(t *testing.T) {
		_, err := NewParams[uint64](coeff.Uint64, 11, []uint64{11, 1})
		a.ErrorIs(err, ErrCoefficientOutOfRange)

		_, err = NewParams[uint8](coeff.Uint8, 3329, []uint64{1, 1})
		a.ErrorIs(err, ErrModulusOutOfRange)

		_, err = NewParams[int8](coeff.Int8, 200, []uint64{1, 1})
		a.ErrorIs(err, ErrModulusOutOfRange)

		_, err = NewParams[int16](coeff.Int16, 40000, []uint64{1, 1})
		a.ErrorIs(err, ErrModulusOutOfRange)

		_, err = NewParams[int64](coeff.Int64, 1<<63, []uint64{1, 1})
		a.ErrorIs(err, ErrModulusOutOfRange)

		// the type's full range is accepted.
		_, err = NewParams[uint16](coeff.Uint16, 65535, []uint64{1, 1})
		a.NoError(err)

		_, err = NewParams[int8](coeff.Int8, 127, []uint64{1, 1})
		a.NoError(err)
	})
}

func toyRing(t *testing.T) *Ring[uint64] {
	t.Helper()

	p, err := ToyParams[uint64](coeff.Uint64)
	if err != nil {
		t.Fatal(err)
	}

	return NewRing(p)
}

func TestRingElements(t *testing.T) {
	a := assert.New(t)
	rg := toyRing(t)

	a.Equal([]uint64{0, 0, 0, 0, 0}, rg.Zero().Coefficients())
	a.Equal([]uint64{1, 0, 0, 0, 0}, rg.One().Coefficients())
	a.Equal([]uint64{5, 2, 0, 0, 0}, rg.NewElement([]uint64{16, 2}).Coefficients())

	s := rg.NewSparse(Term[uint64]{Coeff: 3, Degree: 4}, Term[uint64]{Coeff: 9, Degree: 0}, Term[uint64]{Coeff: 4, Degree: 4})
	a.Equal([]uint64{9, 0, 0, 0, 7}, s.Coefficients())

	a.Panics(func() { rg.NewSparse(Term[uint64]{Coeff: 1, Degree: 5}) })
	a.Panics(func() { rg.NewSparse(Term[uint64]{Coeff: 1, Degree: -1}) })
	a.Panics(func() { rg.NewElement([]uint64{1, 2, 3, 4, 5, 6}) })

	t.Run("signed", func(t *testing.T) {
		p, err := ToyParams[int64](coeff.Int64)
		a.NoError(err)

		srg := NewRing(p)
		a.Equal([]int64{8, 0, 10, 0, 0}, srg.NewDense([]int64{-3, 0, -1}).Coefficients())
	})
}

func TestRingArithmetic(t *testing.T) {
	a := assert.New(t)
	rg := toyRing(t)

	x := rg.NewElement([]uint64{5, 2, 7, 8, 9})
	y := rg.NewElement([]uint64{2, 1, 0, 2, 4})

	a.Equal([]uint64{7, 9, 2, 5, 10}, rg.Mul(x, y).Coefficients())
	a.Equal([]uint64{7, 3, 7, 10, 2}, rg.Add(x, y).Coefficients())
	a.Equal([]uint64{3, 1, 7, 6, 5}, rg.Sub(x, y).Coefficients())
	a.Equal([]uint64{6, 9, 4, 3, 2}, rg.Neg(x).Coefficients())

	q, r, err := rg.Div(x, y)
	a.NoError(err)
	a.Equal([]uint64{5, 0, 0, 0, 0}, q.Coefficients())
	a.Equal([]uint64{6, 8, 7, 9, 0}, r.Coefficients())

	inv, err := rg.Inv(rg.NewElement([]uint64{0, 1}))
	a.NoError(err)
	a.Equal([]uint64{8, 6, 0, 3, 5}, inv.Coefficients())
	a.True(rg.Mul(inv, rg.NewElement([]uint64{0, 1})).Equals(rg.One()))

	_, err = rg.Inv(rg.Zero())
	a.True(errors.Is(err, poly.ErrNotInvertible))

	wide := poly.NewFull[uint64](coeff.Uint64, rg.Irreducible(), []uint64{0, 0, 0, 0, 0, 1}, 11)
	a.Equal([]uint64{9, 5, 1, 0, 6}, rg.Reduce(wide).Coefficients())

	other, err := NewParams[uint64](coeff.Uint64, 13, []uint64{1, 0, 1})
	a.NoError(err)
	a.Panics(func() { rg.Add(x, NewRing(other).One()) })
}

func TestRandomElements(t *testing.T) {
	a := assert.New(t)

	p, err := KyberLikeParams[uint64](coeff.Uint64)
	a.NoError(err)
	rg := NewRing(p)

	t.Run("seeded", func(t *testing.T) {
		s1, err := NewSeededSource([]byte("seed"))
		a.NoError(err)
		s2, err := NewSeededSource([]byte("seed"))
		a.NoError(err)

		x, err := rg.Random(s1)
		a.NoError(err)
		y, err := rg.Random(s2)
		a.NoError(err)

		a.True(x.Equals(y))
		a.Len(x.Coefficients(), 256)

		for _, c := range x.Coefficients() {
			a.Less(c, uint64(3329))
		}
	})

	t.Run("derived", func(t *testing.T) {
		x, err := rg.Random(DeriveSource([]byte("seed"), "modpoly test a"))
		a.NoError(err)
		y, err := rg.Random(DeriveSource([]byte("seed"), "modpoly test a"))
		a.NoError(err)
		z, err := rg.Random(DeriveSource([]byte("seed"), "modpoly test b"))
		a.NoError(err)

		a.True(x.Equals(y))
		a.False(x.Equals(z))
	})

	t.Run("unseeded", func(t *testing.T) {
		src, err := NewSource()
		a.NoError(err)

		x, err := rg.Random(src)
		a.NoError(err)
		a.Len(x.Coefficients(), 256)
	})

	t.Run("exhaustedSource", func(t *testing.T) {
		_, err := rg.Random(bytes.NewReader(make([]byte, 16)))
		a.ErrorIs(err, io.ErrUnexpectedEOF)
	})

	t.Run("inverseInField", func(t *testing.T) {
		src := DeriveSource([]byte("seed"), "modpoly inverse")

		toy, err := ToyParams[uint64](coeff.Uint64)
		a.NoError(err)
		trg := NewRing(toy)

		for i := 0; i < 20; i++ {
			x, err := trg.Random(src)
			a.NoError(err)

			if x.IsZero() {
				continue
			}

			inv, err := trg.Inv(x)
			a.NoError(err)
			a.True(trg.Mul(x, inv).Equals(trg.One()))
			a.True(trg.Pow(x, 161049).Equals(inv))
		}
	})
}

func BenchmarkKyberMul(b *testing.B) {
	p, err := KyberLikeParams[uint64](coeff.Uint64)
	if err != nil {
		b.Fatal(err)
	}

	rg := NewRing(p)
	src := DeriveSource([]byte("bench"), "modpoly benchmark")

	x, err := rg.Random(src)
	if err != nil {
		b.Fatal(err)
	}

	y, err := rg.Random(src)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rg.Mul(x, y)
	}
}
