// Package modpoly builds fixed-degree polynomial rings ℤn[x]/(m(x)) on top of the
// poly and coeff packages.
package modpoly

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-modpoly/coeff"
	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

var (
	ErrIrreducibleTooShort   = errors.New("irreducible must have degree at least 1")
	ErrIrreducibleNotMonic   = errors.New("leading coefficient of the irreducible must be a unit mod n")
	ErrCoefficientOutOfRange = errors.New("irreducible coefficient must be smaller than n")
	ErrModulusOutOfRange     = errors.New("modulus does not fit the coefficient type")
)

// Params describe the ring ℤn[x]/(irr). Elements of the ring have d = len(irr)-1
// coefficients.
type Params[T any] struct {
	r       coeff.Integer[T]
	modulus uint64
	n       T
	irr     []T
}

// NewParams validates and lifts the ring description into the coefficient type T.
// A zero n means no coefficient modulus.
func NewParams[T any](r coeff.Integer[T], n uint64, irr []uint64) (Params[T], error) {
	if len(irr) < 2 {
		return Params[T]{}, ErrIrreducibleTooShort
	}

	nT := r.FromLiteral(uint128.From64(n))
	if size := r.Size(); (size < 8 && n>>(8*size) != 0) || r.Cmp(nT, r.Zero()) < 0 {
		return Params[T]{}, fmt.Errorf("%d: %w", n, ErrModulusOutOfRange)
	}

	lifted := make([]T, len(irr))
	for i, c := range irr {
		if n != 0 && c >= n {
			return Params[T]{}, fmt.Errorf("coefficient %d of degree %d: %w", c, i, ErrCoefficientOutOfRange)
		}

		lifted[i] = r.FromLiteral(uint128.From64(c))
	}

	if _, ok := r.CheckedInv(lifted[len(lifted)-1], nT); !ok {
		return Params[T]{}, ErrIrreducibleNotMonic
	}

	return Params[T]{
		r:       r,
		modulus: n,
		n:       nT,
		irr:     lifted,
	}, nil
}

// KyberLikeParams returns the ring ℤ3329[x]/(x^256 + 1).
func KyberLikeParams[T any](r coeff.Integer[T]) (Params[T], error) {
	irr := make([]uint64, 257)
	irr[0], irr[256] = 1, 1

	return NewParams(r, 3329, irr)
}

// ToyParams returns the ring ℤ11[x]/(6x^5 + 8x^4 + 5x^2 + 3x + 1), small enough to be
// checked by hand.
func ToyParams[T any](r coeff.Integer[T]) (Params[T], error) {
	return NewParams(r, 11, []uint64{1, 3, 5, 0, 8, 6})
}

// D is the number of coefficients of a ring element.
func (p Params[T]) D() int {
	return len(p.irr) - 1
}

func (p Params[T]) N() T {
	return p.n
}

// Modulus returns n as given to NewParams.
func (p Params[T]) Modulus() uint64 {
	return p.modulus
}

func (p Params[T]) Irreducible() []T {
	out := make([]T, len(p.irr))
	copy(out, p.irr)

	return out
}

func (p Params[T]) Integer() coeff.Integer[T] {
	return p.r
}

// IsField reports whether n is prime. Combined with an irreducible that is irreducible
// mod n this makes every non-zero element invertible.
func (p Params[T]) IsField() bool {
	return ring.IsPrime(p.modulus)
}
