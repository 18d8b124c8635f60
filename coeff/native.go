package coeff

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Unsigned implements Integer for the native unsigned integers.
//
// Without a modulus it behaves like ℤ restricted to [0, Max]: Add and Mul panic on
// overflow and Sub panics on underflow. In particular SubMod(a, b, 0) panics when a < b,
// the caller guarantees the subtraction is valid in the plain ring.
type Unsigned[T constraints.Unsigned] struct{}

// Commonly used unsigned coefficient rings.
var (
	Uint8  = Unsigned[uint8]{}
	Uint16 = Unsigned[uint16]{}
	Uint32 = Unsigned[uint32]{}
	Uint64 = Unsigned[uint64]{}
)

func (Unsigned[T]) Zero() T { return 0 }
func (Unsigned[T]) One() T  { return 1 }

func (Unsigned[T]) FromLiteral(x uint128.Uint128) T { return T(x.Lo) }
func (Unsigned[T]) FromSignedLiteral(x int64) T     { return T(x) }

func (u Unsigned[T]) Inv(x, n T) T                { return ExtendedEuclidInvert[T](u, x, n) }
func (u Unsigned[T]) CheckedInv(x, n T) (T, bool) { return ModInverse[T](u, x, n) }

func (Unsigned[T]) Max() T { return ^T(0) }

func (u Unsigned[T]) SubMod(a, b, n T) T {
	if n == 0 {
		return u.Sub(a, b)
	}

	a, b = a%n, b%n
	if a >= b {
		return a - b
	}

	return n - (b - a)
}

func (u Unsigned[T]) AddMod(a, b, n T) T {
	if n == 0 {
		return u.Add(a, b)
	}

	a, b = a%n, b%n
	if d := n - b; a >= d {
		return a - d
	}

	return a + b
}

func (u Unsigned[T]) MulMod(a, b, n T) T {
	if n == 0 {
		return u.Mul(a, b)
	}

	return T(mulMod64(uint64(a%n), uint64(b%n), uint64(n)))
}

// mulMod64 returns a*b mod m for a, b < m.
func mulMod64(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}

func (Unsigned[T]) Rem(a, n T) T { return a % n }
func (Unsigned[T]) Abs(a T) T    { return a }

func (Unsigned[T]) Add(a, b T) T {
	s := a + b
	if s < a {
		panic(errOverflow)
	}

	return s
}

func (Unsigned[T]) Sub(a, b T) T {
	if a < b {
		panic(errUnderflow)
	}

	return a - b
}

func (Unsigned[T]) Mul(a, b T) T {
	p := a * b
	if a != 0 && p/a != b {
		panic(errOverflow)
	}

	return p
}

func (Unsigned[T]) Div(a, b T) T { return a / b }

func (Unsigned[T]) Equal(a, b T) bool { return a == b }
func (Unsigned[T]) IsZero(a T) bool   { return a == 0 }

func (Unsigned[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (Unsigned[T]) Signed() bool { return false }

func (Unsigned[T]) Size() int { return bits.Len64(uint64(^T(0))) / 8 }

func (u Unsigned[T]) PutBytes(b []byte, a T) { putUint(b[:u.Size()], uint64(a)) }

func (u Unsigned[T]) FromBytes(b []byte) T { return T(readUint(b[:u.Size()])) }

func (Unsigned[T]) Format(a T) string { return strconv.FormatUint(uint64(a), 10) }

// Signed implements Integer for the native signed integers.
//
// With an active modulus every modular operation returns the non-negative
// representative in [0, |n|). A modulus of MinInt has no magnitude in T and panics.
type Signed[T constraints.Signed] struct{}

// Commonly used signed coefficient rings.
var (
	Int8  = Signed[int8]{}
	Int16 = Signed[int16]{}
	Int32 = Signed[int32]{}
	Int64 = Signed[int64]{}
)

func (Signed[T]) Zero() T { return 0 }
func (Signed[T]) One() T  { return 1 }

func (Signed[T]) FromLiteral(x uint128.Uint128) T { return T(x.Lo) }
func (Signed[T]) FromSignedLiteral(x int64) T     { return T(x) }

func (s Signed[T]) Inv(x, n T) T                { return ExtendedEuclidInvert[T](s, x, n) }
func (s Signed[T]) CheckedInv(x, n T) (T, bool) { return ModInverse[T](s, x, n) }

func (Signed[T]) Max() T {
	m := T(1)
	for m<<1 > 0 {
		m = m<<1 | 1
	}

	return m
}

func (s Signed[T]) SubMod(a, b, n T) T {
	if n == 0 {
		return s.Sub(a, b)
	}

	m := s.modulus(n)
	a, b = SignedMod(a, m), SignedMod(b, m)
	if a >= b {
		return a - b
	}

	return m - (b - a)
}

func (s Signed[T]) AddMod(a, b, n T) T {
	if n == 0 {
		return s.Add(a, b)
	}

	m := s.modulus(n)
	a, b = SignedMod(a, m), SignedMod(b, m)
	if d := m - b; a >= d {
		return a - d
	}

	return a + b
}

func (s Signed[T]) MulMod(a, b, n T) T {
	if n == 0 {
		return s.Mul(a, b)
	}

	m := s.modulus(n)

	return T(mulMod64(uint64(SignedMod(a, m)), uint64(SignedMod(b, m)), uint64(m)))
}

func (s Signed[T]) modulus(n T) T {
	m := s.Abs(n)
	if m < 0 {
		panic(errModulusRange)
	}

	return m
}

// SignedMod returns the representative of x modulo n in [0, |n|).
// Panics when n is the minimum value of T.
func SignedMod[T constraints.Signed](x, n T) T {
	if n < 0 {
		n = -n
	}

	if n < 0 {
		panic(errModulusRange)
	}

	r := x % n
	if r < 0 {
		r += n
	}

	return r
}

func (Signed[T]) Rem(a, n T) T { return a % n }

func (Signed[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}

	return a
}

func (Signed[T]) Add(a, b T) T {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(errOverflow)
	}

	return s
}

func (Signed[T]) Sub(a, b T) T {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		panic(errUnderflow)
	}

	return d
}

func (Signed[T]) Mul(a, b T) T {
	p := a * b
	// -1 * MinInt wraps to MinInt and survives the division check.
	if (a == -1 && b < 0 && -b == b) || (a != 0 && p/a != b) {
		panic(errOverflow)
	}

	return p
}

func (Signed[T]) Div(a, b T) T { return a / b }

func (Signed[T]) Equal(a, b T) bool { return a == b }
func (Signed[T]) IsZero(a T) bool   { return a == 0 }

func (Signed[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (Signed[T]) Signed() bool { return true }

func (s Signed[T]) Size() int { return (bits.Len64(uint64(s.Max())) + 1) / 8 }

func (s Signed[T]) PutBytes(b []byte, a T) { putUint(b[:s.Size()], uint64(int64(a))) }

func (s Signed[T]) FromBytes(b []byte) T {
	size := s.Size()
	shift := 64 - 8*size

	return T(int64(readUint(b[:size])<<shift) >> shift)
}

func (Signed[T]) Format(a T) string { return strconv.FormatInt(int64(a), 10) }

// putUint writes the low len(b) bytes of v into b, big-endian.
func putUint(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func readUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}
