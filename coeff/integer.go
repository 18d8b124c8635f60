package coeff

import (
	"errors"

	"lukechampine.com/uint128"
)

// Integer is the set of operations a coefficient type T must support.
//
// Like a field over uint64, an Integer is an operations object: coefficients stay plain
// values of T and every arithmetic step goes through the Integer. A modulus equal to
// Zero() means "no modulus", i.e. the plain ring ℤ (or ℤ with sign for signed types).
type Integer[T any] interface {
	Zero() T
	One() T

	// FromLiteral casts an unsigned 128-bit literal into T. The cast is lossy for
	// types narrower than 128 bits.
	FromLiteral(x uint128.Uint128) T
	// FromSignedLiteral casts a signed literal into T. Negative values wrap for
	// unsigned types.
	FromSignedLiteral(x int64) T

	// Inv returns y with x*y = 1 (mod n).
	// Panics if no such y exists.
	Inv(x, n T) T
	// CheckedInv is Inv without the panic.
	CheckedInv(x, n T) (T, bool)

	Max() T

	// SubMod returns (a - b) mod n.
	SubMod(a, b, n T) T
	// AddMod returns (a + b) mod n.
	AddMod(a, b, n T) T
	// MulMod returns (a * b) mod n.
	MulMod(a, b, n T) T
	// Rem returns a % n.
	Rem(a, n T) T
	Abs(a T) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T

	Equal(a, b T) bool
	Cmp(a, b T) int
	IsZero(a T) bool

	// Signed selects the lifting policy used for negative intermediate values.
	Signed() bool

	// Size is the length in bytes of the fixed-width big-endian encoding of T.
	Size() int
	PutBytes(b []byte, a T)
	FromBytes(b []byte) T

	Format(a T) string
}

var (
	errOverflow  = errors.New("coefficient overflow")
	errUnderflow = errors.New("coefficient underflow")

	errModulusRange = errors.New("modulus magnitude does not fit the coefficient type")
)

const errNoInverse = "modular inverse does not exist"

// ExtendedEuclidInvert returns the inverse of x modulo n.
// Panics if gcd(x, n) != 1, or if n is zero and x is not one.
func ExtendedEuclidInvert[T any](r Integer[T], x, n T) T {
	inv, ok := ModInverse(r, x, n)
	if !ok {
		panic(errNoInverse)
	}

	return inv
}

// ModInverse returns the inverse of x modulo n and whether it exists.
//
// Bézout coefficients are kept reduced mod n throughout, so the result is always the
// representative in [0, n). Signed inputs are first lifted into [0, n) with the ring's
// own AddMod, unsigned ones are only reduced.
func ModInverse[T any](r Integer[T], x, n T) (T, bool) {
	zero, one := r.Zero(), r.One()

	if r.IsZero(n) {
		// ℤ: only 1 is a unit we accept.
		if r.Equal(x, one) {
			return one, true
		}

		return zero, false
	}

	n = r.Abs(n)
	if r.Signed() {
		x = r.AddMod(x, zero, n)
	} else {
		x = r.Rem(x, n)
	}

	a, b := n, x
	t0, t1 := zero, r.Rem(one, n)
	for !r.IsZero(b) {
		q := r.Div(a, b)
		a, b = b, r.Sub(a, r.Mul(q, b))
		t0, t1 = t1, r.SubMod(t0, r.MulMod(q, t1, n), n)
	}

	if !r.Equal(a, one) {
		return zero, false
	}

	return t0, true
}
