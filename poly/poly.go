package poly

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-modpoly/coeff"
	"lukechampine.com/uint128"
)

// Poly is a polynomial in ℤn[x]/(irr).
//
// An empty irr means no reduction (ℤn[x]), a zero n means no coefficient modulus
// (ℤ[x]). Note that a Poly is not necessarily reduced by irr, call Reduce to make
// sure it is.
//
// Poly values are immutable: every method returns a new polynomial and never
// modifies its receiver or its arguments. The irreducible is shared between values
// derived from each other since nothing writes to it.
type Poly[T any] struct {
	r      coeff.Integer[T]
	coeffs []T
	irr    []T
	n      T
}

func literals[T any](r coeff.Integer[T], v []uint64) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = r.FromLiteral(uint128.From64(x))
	}

	return out
}

func signedLiterals[T any](r coeff.Integer[T], v []int64) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = r.FromSignedLiteral(x)
	}

	return out
}

func wideLiterals[T any](r coeff.Integer[T], v []uint128.Uint128) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = r.FromLiteral(x)
	}

	return out
}

// FromCoefficients builds a polynomial from its coefficients p (lowest degree first),
// the irreducible irr and the coefficient modulus n. The slices are copied.
func FromCoefficients[T any](r coeff.Integer[T], irr, p []T, n T) *Poly[T] {
	return &Poly[T]{
		r:      r,
		coeffs: Pad(r, p, 1),
		irr:    Pad(r, irr, 0),
		n:      n,
	}
}

// New builds a polynomial over the plain ring of T (no coefficient modulus).
func New[T any](r coeff.Integer[T], irr, p []uint64) *Poly[T] {
	return FromCoefficients(r, literals(r, irr), literals(r, p), r.Zero())
}

// NewSigned is New for signed literals.
func NewSigned[T any](r coeff.Integer[T], irr, p []int64) *Poly[T] {
	return FromCoefficients(r, signedLiterals(r, irr), signedLiterals(r, p), r.Zero())
}

// NewFull builds a polynomial in ℤn[x]/(irr).
func NewFull[T any](r coeff.Integer[T], irr, p []uint64, n uint64) *Poly[T] {
	return FromCoefficients(r, literals(r, irr), literals(r, p), r.FromLiteral(uint128.From64(n)))
}

// NewFullSigned is NewFull for signed literals.
func NewFullSigned[T any](r coeff.Integer[T], irr, p []int64, n int64) *Poly[T] {
	return FromCoefficients(r, signedLiterals(r, irr), signedLiterals(r, p), r.FromSignedLiteral(n))
}

// NewWide is NewFull for 128-bit literals.
func NewWide[T any](r coeff.Integer[T], irr, p []uint128.Uint128, n uint128.Uint128) *Poly[T] {
	return FromCoefficients(r, wideLiterals(r, irr), wideLiterals(r, p), r.FromLiteral(n))
}

// NewMonomial returns c*x^d over the plain ring of T.
func NewMonomial[T any](r coeff.Integer[T], irr []uint64, c T, d int) *Poly[T] {
	return FromCoefficients(r, literals(r, irr), Monomial(r, c, d), r.Zero())
}

// Random generates a polynomial of length len(irr)-1 whose coefficients are drawn
// uniformly from [lo, hi], using randomness read from src.
func Random[T any](r coeff.Integer[T], irr []T, lo, hi int64, n T, src io.Reader) (*Poly[T], error) {
	if len(irr) < 2 {
		panic("random polynomial needs an irreducible of degree >= 1")
	}

	p, err := RandomCoefficients(r, len(irr)-1, lo, hi, src)
	if err != nil {
		return nil, err
	}

	return FromCoefficients(r, irr, p, n), nil
}

// NewPoly builds a polynomial with the same irreducible and modulus as p.
func (p *Poly[T]) NewPoly(coeffs []uint64) *Poly[T] {
	return p.derive(literals(p.r, coeffs))
}

func (p *Poly[T]) derive(coeffs []T) *Poly[T] {
	return &Poly[T]{
		r:      p.r,
		coeffs: coeffs,
		irr:    p.irr,
		n:      p.n,
	}
}

// One returns the constant 1 with the same irreducible and modulus as p.
func (p *Poly[T]) One() *Poly[T] {
	return p.derive([]T{p.r.Rem(p.r.One(), p.modOrOne())})
}

// Zero returns the zero polynomial with the same irreducible and modulus as p.
func (p *Poly[T]) Zero() *Poly[T] {
	return p.derive([]T{p.r.Zero()})
}

// modOrOne lets One reduce 1 without dividing by a zero modulus.
func (p *Poly[T]) modOrOne() T {
	if p.r.IsZero(p.n) {
		return p.r.Max()
	}

	return p.n
}

func sameCoefficients[T any](r coeff.Integer[T], x, y []T) bool {
	x, y = normalize(r, x, y)
	for i := range x {
		if !r.Equal(x[i], y[i]) {
			return false
		}
	}

	return true
}

// sameIrreducible compares irreducibles exactly: an empty irreducible (no reduction)
// differs from any non-empty one, even a zero one.
func sameIrreducible[T any](p, q *Poly[T]) bool {
	return len(p.irr) == len(q.irr) && sameCoefficients(p.r, p.irr, q.irr)
}

func preOpVerification[T any](p, q *Poly[T]) {
	if !p.r.Equal(p.n, q.n) {
		panic(fmt.Sprintf("operands have different coefficient moduli: %s and %s", p.r.Format(p.n), q.r.Format(q.n)))
	}

	if !sameIrreducible(p, q) {
		panic("operands have different irreducibles")
	}
}

// Add returns p + q.
func (p *Poly[T]) Add(q *Poly[T]) *Poly[T] {
	preOpVerification(p, q)

	return p.derive(Add(p.r, p.coeffs, q.coeffs, p.n))
}

// Sub returns p - q.
func (p *Poly[T]) Sub(q *Poly[T]) *Poly[T] {
	preOpVerification(p, q)

	return p.derive(Sub(p.r, p.coeffs, q.coeffs, p.n))
}

// Neg returns -p.
func (p *Poly[T]) Neg() *Poly[T] {
	return p.derive(Sub(p.r, zeros(p.r, len(p.coeffs)), p.coeffs, p.n))
}

// Mul returns p * q, reduced by the irreducible if there is one.
func (p *Poly[T]) Mul(q *Poly[T]) *Poly[T] {
	preOpVerification(p, q)

	return p.reduceIfIrr(Mul(p.r, p.coeffs, q.coeffs, p.n))
}

// Pow returns p^e, reduced by the irreducible if there is one.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (p *Poly[T]) Pow(e uint64) *Poly[T] {
	x, base := p.One(), p.reduceIfIrr(p.coeffs)
	for e > 0 {
		if e%2 == 1 {
			x = x.Mul(base)
		}

		e /= 2
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return x
}

// MulOperandScanning is Mul computed with operand scanning.
func (p *Poly[T]) MulOperandScanning(q *Poly[T]) *Poly[T] {
	preOpVerification(p, q)

	return p.reduceIfIrr(MulOperandScanning(p.r, p.coeffs, q.coeffs, p.n))
}

func (p *Poly[T]) reduceIfIrr(coeffs []T) *Poly[T] {
	if len(p.irr) == 0 {
		return p.derive(coeffs)
	}

	return p.derive(coeffs).Reduce()
}

// Reduce returns p mod irr, truncated.
// Returns a copy of p if there is no irreducible.
//
// Panics if the leading coefficient of irr is not a unit mod n.
func (p *Poly[T]) Reduce() *Poly[T] {
	if len(p.irr) == 0 {
		return p.Copy()
	}

	_, rem, err := EuclidDiv(p.r, p.coeffs, p.irr, p.n)
	if err != nil {
		panic(fmt.Sprintf("cannot reduce by irreducible: %v", err))
	}

	return p.derive(Truncate(p.r, rem))
}

// EuclidDiv returns (q, r) with p = q*rhs + r. Results are not reduced by irr.
func (p *Poly[T]) EuclidDiv(rhs *Poly[T]) (q, r *Poly[T], err error) {
	preOpVerification(p, rhs)

	qc, rc, err := EuclidDiv(p.r, p.coeffs, rhs.coeffs, p.n)
	if err != nil {
		return nil, nil, err
	}

	return p.derive(qc), p.derive(rc), nil
}

// Div is EuclidDiv followed by reducing both the quotient and the remainder by irr.
func (p *Poly[T]) Div(rhs *Poly[T]) (q, r *Poly[T], err error) {
	q, r, err = p.EuclidDiv(rhs)
	if err != nil {
		return nil, nil, err
	}

	if len(p.irr) == 0 {
		return q, r, nil
	}

	return q.Reduce(), r.Reduce(), nil
}

// Inv returns the inverse of p modulo irr.
// The error wraps ErrNotInvertible when p has no inverse. The answer is exact when n
// is prime. For a composite n some units are reported as not invertible, see
// ExtendedEuclid.
// Panics if p has no irreducible.
func (p *Poly[T]) Inv() (*Poly[T], error) {
	if len(p.irr) == 0 || IsZero(p.r, p.irr) {
		panic("inverse requires an irreducible")
	}

	inv, err := ExtendedEuclid(p.r, p.coeffs, p.irr, p.n)
	if err != nil {
		return nil, err
	}

	return p.derive(inv).Reduce(), nil
}

// LeadingCoefficient returns the degree and value of the highest non-zero coefficient.
func (p *Poly[T]) LeadingCoefficient() (int, T) {
	return LeadingCoefficient(p.r, p.coeffs)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *Poly[T]) Degree() int {
	if p.IsZero() {
		return -1
	}

	d, _ := p.LeadingCoefficient()

	return d
}

// Pad returns p padded with zeroes to length l.
func (p *Poly[T]) Pad(l int) *Poly[T] {
	return p.derive(Pad(p.r, p.coeffs, l))
}

// Truncate returns p without the zero coefficients above its degree.
func (p *Poly[T]) Truncate() *Poly[T] {
	return p.derive(Truncate(p.r, p.coeffs))
}

func (p *Poly[T]) IsZero() bool {
	return IsZero(p.r, p.coeffs)
}

// Equals reports whether p and q have the same configuration and the same
// coefficients, ignoring trailing zeroes.
func (p *Poly[T]) Equals(q *Poly[T]) bool {
	if !p.r.Equal(p.n, q.n) || !sameIrreducible(p, q) {
		return false
	}

	return sameCoefficients(p.r, p.coeffs, q.coeffs)
}

// Eval returns p(x) mod n.
func (p *Poly[T]) Eval(x T) T {
	return Evaluate(p.r, p.coeffs, x, p.n)
}

func (p *Poly[T]) Copy() *Poly[T] {
	return p.derive(Pad(p.r, p.coeffs, 0))
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Poly[T]) Coefficients() []T {
	return Pad(p.r, p.coeffs, 0)
}

func (p *Poly[T]) Irreducible() []T {
	return Pad(p.r, p.irr, 0)
}

func (p *Poly[T]) Modulus() T {
	return p.n
}

func (p *Poly[T]) Integer() coeff.Integer[T] {
	return p.r
}

func (p *Poly[T]) String() string {
	d, _ := p.LeadingCoefficient()
	if d == 0 {
		return p.r.Format(p.coeffs[0])
	}

	bldr := strings.Builder{}
	for i := d; i >= 0; i-- {
		if p.r.IsZero(p.coeffs[i]) {
			continue
		}

		if i != d {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(p.r.Format(p.coeffs[i]))

		if i != 0 {
			bldr.WriteString("*x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}
