package poly

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/jonathanmweiss/go-modpoly/coeff"
)

// The functions in this file operate on raw coefficient slices, ordered from lowest to
// highest degree (e.g. [1, 2, 3] is 1 + 2x + 3x^2). They never modify their inputs.
// A zero modulus n means the coefficients live in the plain ring of T.

// ErrNotInvertible is returned when an element or a polynomial has no inverse.
var ErrNotInvertible = errors.New("not invertible")

func zeros[T any](r coeff.Integer[T], l int) []T {
	out := make([]T, l)
	for i := range out {
		out[i] = r.Zero()
	}

	return out
}

// Pad returns a copy of v, right-padded with zeroes to length l.
// Returns a plain copy if v is already at least l long.
func Pad[T any](r coeff.Integer[T], v []T, l int) []T {
	out := zeros(r, max(len(v), l))
	copy(out, v)

	return out
}

func normalize[T any](r coeff.Integer[T], x, y []T) ([]T, []T) {
	l := max(len(x), len(y))

	return Pad(r, x, l), Pad(r, y, l)
}

// LeadingCoefficient returns the degree and the coefficient of the highest non-zero term.
// The zero polynomial yields (0, zero).
func LeadingCoefficient[T any](r coeff.Integer[T], v []T) (int, T) {
	for i := len(v) - 1; i >= 0; i-- {
		if !r.IsZero(v[i]) {
			return i, v[i]
		}
	}

	return 0, r.Zero()
}

// Truncate removes the zero coefficients above the degree of v.
// The result has length degree+1.
func Truncate[T any](r coeff.Integer[T], v []T) []T {
	d, _ := LeadingCoefficient(r, v)

	return Pad(r, v[:min(len(v), d+1)], d+1)
}

// Monomial returns c*x^d.
func Monomial[T any](r coeff.Integer[T], c T, d int) []T {
	p := zeros(r, d+1)
	p[d] = c

	return p
}

func IsZero[T any](r coeff.Integer[T], v []T) bool {
	for _, c := range v {
		if !r.IsZero(c) {
			return false
		}
	}

	return true
}

// Add returns x + y with coefficients reduced mod n.
func Add[T any](r coeff.Integer[T], x, y []T, n T) []T {
	x, y = normalize(r, x, y)

	out := make([]T, len(x))
	for i := range x {
		out[i] = r.AddMod(x[i], y[i], n)
	}

	return out
}

// Sub returns x - y with coefficients reduced mod n.
func Sub[T any](r coeff.Integer[T], x, y []T, n T) []T {
	x, y = normalize(r, x, y)

	out := make([]T, len(x))
	for i := range x {
		out[i] = r.SubMod(x[i], y[i], n)
	}

	return out
}

// ScalarMul returns c*x with coefficients reduced mod n.
func ScalarMul[T any](r coeff.Integer[T], x []T, c T, n T) []T {
	out := make([]T, len(x))
	for i := range x {
		out[i] = r.MulMod(x[i], c, n)
	}

	return out
}

func support[T any](r coeff.Integer[T], v []T) *bitset.BitSet {
	s := bitset.New(uint(len(v)))
	for i, c := range v {
		if !r.IsZero(c) {
			s.Set(uint(i))
		}
	}

	return s
}

// Mul returns x * y using sparse multiplication: only pairs of non-zero coefficients
// contribute. The result has length len(x)+len(y) and is not reduced by any irreducible.
//
// The running time depends on the number of zero coefficients, so this is not
// side-channel resistant.
func Mul[T any](r coeff.Integer[T], x, y []T, n T) []T {
	out := zeros(r, len(x)+len(y))

	sx, sy := support(r, x), support(r, y)
	for i, ok := sx.NextSet(0); ok; i, ok = sx.NextSet(i + 1) {
		for j, okj := sy.NextSet(0); okj; j, okj = sy.NextSet(j + 1) {
			out[i+j] = r.AddMod(out[i+j], r.MulMod(x[i], y[j], n), n)
		}
	}

	return out
}

// MulOperandScanning returns x * y using operand scanning, visiting every pair of
// coefficients. It computes the same result as Mul.
//
// This is very inefficient and prone to side-channel attacks. It is kept as the
// straightforward reference algorithm.
func MulOperandScanning[T any](r coeff.Integer[T], x, y []T, n T) []T {
	out := zeros(r, len(x)+len(y))
	for i := range x {
		for j := range y {
			out[i+j] = r.AddMod(out[i+j], r.MulMod(x[i], y[j], n), n)
		}
	}

	return out
}

// EuclidDiv computes quotient q and remainder rem such that x = q*y + rem.
// Both results have length max(len(x), len(y)).
//
// Returns an error wrapping ErrNotInvertible if the leading coefficient of y is not a
// unit mod n. Panics if y is the zero polynomial.
func EuclidDiv[T any](r coeff.Integer[T], x, y []T, n T) (q, rem []T, err error) {
	if IsZero(r, y) {
		panic("division by zero polynomial")
	}

	x, y = normalize(r, x, y)

	d, c := LeadingCoefficient(r, y)

	// rc / c in ℤn, only possible if c is a unit.
	u, ok := r.CheckedInv(c, n)
	if !ok {
		return nil, nil, fmt.Errorf("leading coefficient %s mod %s: %w", r.Format(c), r.Format(n), ErrNotInvertible)
	}

	q = zeros(r, len(x))
	rem = Pad(r, x, len(x))

	rd, rc := LeadingCoefficient(r, rem)
	for rd >= d && !IsZero(r, rem) {
		s := Monomial(r, r.MulMod(rc, u, n), rd-d)
		q = Add(r, q, s, n)
		rem = Sub(r, rem, Mul(r, s, y, n), n)

		rd, rc = LeadingCoefficient(r, rem)
	}

	// everything above len(x) is zero by now.
	return q, rem[:len(x)], nil
}

// ExtendedEuclid returns the inverse of x modulo the polynomial irr, with coefficient
// arithmetic mod n.
//
// Returns an error wrapping ErrNotInvertible if gcd(x, irr) is not a unit, or if a
// leading coefficient met on the way has no inverse mod n. The latter can happen for a
// unit x when n is composite, e.g. 1+2x is its own inverse in ℤ4[x]/(x^2+1), so the
// error is only conclusive when n is prime.
func ExtendedEuclid[T any](r coeff.Integer[T], x, irr []T, n T) ([]T, error) {
	if IsZero(r, irr) {
		panic("inversion modulo the zero polynomial")
	}

	// Invariants:
	//   old = t * x (mod irr)
	//   cur = newT * x (mod irr)
	old, cur := Truncate(r, irr), Truncate(r, x)
	t, newT := []T{r.Zero()}, []T{r.One()}

	for !IsZero(r, cur) {
		q, _, err := EuclidDiv(r, old, cur, n)
		if err != nil {
			return nil, err
		}

		q = Truncate(r, q)
		old, cur = cur, Truncate(r, Sub(r, old, Mul(r, q, cur, n), n))
		t, newT = newT, Truncate(r, Sub(r, t, Mul(r, q, newT, n), n))
	}

	// old = gcd(x, irr), which must be a unit constant.
	d, c := LeadingCoefficient(r, old)
	if d > 0 || r.IsZero(c) {
		return nil, fmt.Errorf("gcd with irreducible has degree %d: %w", d, ErrNotInvertible)
	}

	u, ok := r.CheckedInv(c, n)
	if !ok {
		return nil, fmt.Errorf("gcd %s mod %s: %w", r.Format(c), r.Format(n), ErrNotInvertible)
	}

	return ScalarMul(r, t, u, n), nil
}

// Evaluate returns v(x) mod n using Horner's rule.
func Evaluate[T any](r coeff.Integer[T], v []T, x T, n T) T {
	result := r.Zero()
	for i := len(v) - 1; i >= 0; i-- {
		result = r.AddMod(v[i], r.MulMod(x, result, n), n)
	}

	return result
}
