package coeff

import (
	"encoding/binary"
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// Uint128 implements Integer for 128-bit unsigned coefficients.
// Plain Add, Sub and Mul panic on overflow and underflow.
type Uint128 struct{}

func (Uint128) Zero() uint128.Uint128 { return uint128.Zero }
func (Uint128) One() uint128.Uint128  { return uint128.From64(1) }

func (Uint128) FromLiteral(x uint128.Uint128) uint128.Uint128 { return x }

func (Uint128) FromSignedLiteral(x int64) uint128.Uint128 {
	if x < 0 {
		return uint128.New(uint64(x), math.MaxUint64)
	}

	return uint128.From64(uint64(x))
}

func (u Uint128) Inv(x, n uint128.Uint128) uint128.Uint128 {
	return ExtendedEuclidInvert[uint128.Uint128](u, x, n)
}

func (u Uint128) CheckedInv(x, n uint128.Uint128) (uint128.Uint128, bool) {
	return ModInverse[uint128.Uint128](u, x, n)
}

func (Uint128) Max() uint128.Uint128 { return uint128.Max }

func (Uint128) SubMod(a, b, n uint128.Uint128) uint128.Uint128 {
	if n.IsZero() {
		return a.Sub(b)
	}

	a, b = a.Mod(n), b.Mod(n)
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}

	return n.Sub(b.Sub(a))
}

func (Uint128) AddMod(a, b, n uint128.Uint128) uint128.Uint128 {
	if n.IsZero() {
		return a.Add(b)
	}

	a, b = a.Mod(n), b.Mod(n)
	if d := n.Sub(b); a.Cmp(d) >= 0 {
		return a.Sub(d)
	}

	return a.Add(b)
}

func (Uint128) MulMod(a, b, n uint128.Uint128) uint128.Uint128 {
	if n.IsZero() {
		return a.Mul(b)
	}

	if a.Hi == 0 && b.Hi == 0 && n.Hi == 0 {
		return uint128.From64(mulMod64(a.Lo%n.Lo, b.Lo%n.Lo, n.Lo))
	}

	p := new(big.Int).Mul(a.Big(), b.Big())

	return uint128.FromBig(p.Mod(p, n.Big()))
}

func (Uint128) Rem(a, n uint128.Uint128) uint128.Uint128 { return a.Mod(n) }
func (Uint128) Abs(a uint128.Uint128) uint128.Uint128    { return a }

func (Uint128) Add(a, b uint128.Uint128) uint128.Uint128 { return a.Add(b) }
func (Uint128) Sub(a, b uint128.Uint128) uint128.Uint128 { return a.Sub(b) }
func (Uint128) Mul(a, b uint128.Uint128) uint128.Uint128 { return a.Mul(b) }
func (Uint128) Div(a, b uint128.Uint128) uint128.Uint128 { return a.Div(b) }

func (Uint128) Equal(a, b uint128.Uint128) bool { return a.Equals(b) }
func (Uint128) Cmp(a, b uint128.Uint128) int    { return a.Cmp(b) }
func (Uint128) IsZero(a uint128.Uint128) bool   { return a.IsZero() }

func (Uint128) Signed() bool { return false }

func (Uint128) Size() int { return 16 }

func (Uint128) PutBytes(b []byte, a uint128.Uint128) {
	binary.BigEndian.PutUint64(b[:8], a.Hi)
	binary.BigEndian.PutUint64(b[8:16], a.Lo)
}

func (Uint128) FromBytes(b []byte) uint128.Uint128 {
	return uint128.New(binary.BigEndian.Uint64(b[8:16]), binary.BigEndian.Uint64(b[:8]))
}

func (Uint128) Format(a uint128.Uint128) string { return a.String() }
