package poly

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-modpoly/coeff"
)

var (
	errPointsSizeMismatch = errors.New("points size mismatch")
	errNonUniqueXs        = errors.New("non-unique x values")
	errNoModulus          = errors.New("interpolation needs a coefficient modulus")
)

// Interpolate returns the polynomial of degree < len(xs) over ℤn passing through the
// points (xs[i], ys[i]). The result has no irreducible.
//
// Interpolation follows the Lagrange method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// in O(len(xs)^2) operations:
//  1. Create m(x) = \prod_i m_i(x) = \prod_i (x - x_i).
//  2. For each i, create q_i(x) = m(x) / m_i(x) by synthetic division.
//  3. Scale each q_i by the inverse of q_i(x_i) to get the basis polynomial l_i.
//  4. Sum all l_i * y_i.
//
// n must be non-zero: over the plain ring the denominators are not units. Returns an
// error wrapping ErrNotInvertible when some q_i(x_i) is not a unit mod n, which can only
// happen when n is not prime.
func Interpolate[T any](r coeff.Integer[T], xs, ys []T, n T) (*Poly[T], error) {
	if err := validateInterpolationPoints(r, xs, ys, n); err != nil {
		return nil, err
	}

	miSlice := createMiSlice(r, xs, n)

	m := []T{r.One()}
	for _, mi := range miSlice {
		m = Truncate(r, Mul(r, m, mi, n))
	}

	sum := zeros(r, len(xs))
	for i, mi := range miSlice {
		qi := mDivMi(r, m, mi, n)

		// \prod_{j != i} (x_i - x_j)
		s := Evaluate(r, qi, xs[i], n)

		sinv, ok := r.CheckedInv(s, n)
		if !ok {
			return nil, fmt.Errorf("denominator at x=%s: %w", r.Format(xs[i]), ErrNotInvertible)
		}

		li := ScalarMul(r, qi, r.MulMod(sinv, ys[i], n), n)
		sum = Add(r, sum, li, n)
	}

	return FromCoefficients(r, nil, sum, n), nil
}

// createMiSlice creates the m_i(x) = x - x_i polynomials.
func createMiSlice[T any](r coeff.Integer[T], xs []T, n T) [][]T {
	miSlice := make([][]T, len(xs))
	for i, x := range xs {
		miSlice[i] = []T{r.SubMod(r.Zero(), x, n), r.One()}
	}

	return miSlice
}

// mDivMi divides m by mi = x - u_i. Quicker than long division since mi is monic of
// degree 1 and the remainder is known to be zero.
func mDivMi[T any](r coeff.Integer[T], m, mi []T, n T) []T {
	carry := zeros(r, len(m))
	copy(carry, m)

	q := zeros(r, len(m)-1)
	ui := mi[0]

	for i := len(m) - 1; i > 0; i-- {
		q[i-1] = carry[i]
		// carry[i] * (x - u_i) leaves -carry[i]*u_i behind.
		carry[i-1] = r.SubMod(carry[i-1], r.MulMod(carry[i], ui, n), n)
	}

	return q
}

func validateInterpolationPoints[T any](r coeff.Integer[T], xs, ys []T, n T) error {
	if r.IsZero(n) {
		return errNoModulus
	}

	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if r.IsZero(r.SubMod(xs[i], xs[j], n)) {
				return errNonUniqueXs
			}
		}
	}

	return nil
}
