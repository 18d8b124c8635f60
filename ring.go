package modpoly

import (
	"fmt"
	"io"

	"github.com/jonathanmweiss/go-modpoly/poly"
	"lukechampine.com/uint128"
)

// Term is the monomial Coeff*x^Degree.
type Term[T any] struct {
	Coeff  T
	Degree int
}

// Ring creates and operates on elements of ℤn[x]/(irr). Every element it returns is
// reduced and holds exactly D() coefficients.
type Ring[T any] struct {
	Params[T]
}

func NewRing[T any](p Params[T]) *Ring[T] {
	return &Ring[T]{Params: p}
}

// fit reduces p and pads it to the element size.
func (rg *Ring[T]) fit(p *poly.Poly[T]) *poly.Poly[T] {
	return p.Reduce().Pad(rg.D())
}

// NewDense builds an element from its coefficients, lowest degree first. Coefficients
// are reduced mod n. Panics if more than D() coefficients are given.
func (rg *Ring[T]) NewDense(coeffs []T) *poly.Poly[T] {
	if len(coeffs) > rg.D() {
		panic(fmt.Sprintf("%d coefficients do not fit in an element of %d", len(coeffs), rg.D()))
	}

	reduced := make([]T, rg.D())
	for i := range reduced {
		reduced[i] = rg.r.Zero()
	}

	for i, c := range coeffs {
		reduced[i] = rg.r.AddMod(c, rg.r.Zero(), rg.n)
	}

	return poly.FromCoefficients(rg.r, rg.irr, reduced, rg.n)
}

// NewElement is NewDense for unsigned literals.
func (rg *Ring[T]) NewElement(coeffs []uint64) *poly.Poly[T] {
	lifted := make([]T, len(coeffs))
	for i, c := range coeffs {
		lifted[i] = rg.r.FromLiteral(uint128.From64(c))
	}

	return rg.NewDense(lifted)
}

// NewSparse builds an element from its non-zero terms. Terms of equal degree add up.
// Panics if a degree falls outside [0, D()).
func (rg *Ring[T]) NewSparse(terms ...Term[T]) *poly.Poly[T] {
	coeffs := make([]T, rg.D())
	for i := range coeffs {
		coeffs[i] = rg.r.Zero()
	}

	for _, t := range terms {
		if t.Degree < 0 || t.Degree >= rg.D() {
			panic(fmt.Sprintf("term of degree %d does not fit in an element of %d", t.Degree, rg.D()))
		}

		coeffs[t.Degree] = rg.r.AddMod(coeffs[t.Degree], t.Coeff, rg.n)
	}

	return rg.NewDense(coeffs)
}

func (rg *Ring[T]) Zero() *poly.Poly[T] {
	return rg.NewDense(nil)
}

func (rg *Ring[T]) One() *poly.Poly[T] {
	return rg.NewDense([]T{rg.r.One()})
}

// Random returns an element whose coefficients are uniform in [0, n), using randomness
// read from src. Panics if the ring has no coefficient modulus.
func (rg *Ring[T]) Random(src io.Reader) (*poly.Poly[T], error) {
	coeffs, err := poly.UniformCoefficients(rg.r, rg.D(), rg.modulus, src)
	if err != nil {
		return nil, err
	}

	return rg.NewDense(coeffs), nil
}

func (rg *Ring[T]) Add(x, y *poly.Poly[T]) *poly.Poly[T] {
	return rg.fit(x.Add(y))
}

func (rg *Ring[T]) Sub(x, y *poly.Poly[T]) *poly.Poly[T] {
	return rg.fit(x.Sub(y))
}

func (rg *Ring[T]) Neg(x *poly.Poly[T]) *poly.Poly[T] {
	return rg.fit(x.Neg())
}

func (rg *Ring[T]) Mul(x, y *poly.Poly[T]) *poly.Poly[T] {
	return rg.fit(x.Mul(y))
}

func (rg *Ring[T]) Pow(x *poly.Poly[T], e uint64) *poly.Poly[T] {
	return rg.fit(x.Pow(e))
}

// Div returns the quotient and remainder of x by y, both reduced.
func (rg *Ring[T]) Div(x, y *poly.Poly[T]) (q, r *poly.Poly[T], err error) {
	q, r, err = x.Div(y)
	if err != nil {
		return nil, nil, err
	}

	return rg.fit(q), rg.fit(r), nil
}

// Inv returns the inverse of x in the ring. The error wraps poly.ErrNotInvertible
// when x is not a unit.
func (rg *Ring[T]) Inv(x *poly.Poly[T]) (*poly.Poly[T], error) {
	inv, err := x.Inv()
	if err != nil {
		return nil, err
	}

	return rg.fit(inv), nil
}

func (rg *Ring[T]) Reduce(x *poly.Poly[T]) *poly.Poly[T] {
	return rg.fit(x)
}
