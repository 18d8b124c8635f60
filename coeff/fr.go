package coeff

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"lukechampine.com/uint128"
)

// Fr implements Integer for elements of the BN254 scalar field.
//
// The field modulus is fixed by the type, so every modulus argument is ignored and the
// modular operations coincide with the plain ones. Every non-zero element is a unit,
// which makes long division over Fr total.
type Fr struct{}

func (Fr) Zero() fr.Element { return fr.Element{} }

func (Fr) One() fr.Element {
	var e fr.Element
	e.SetOne()

	return e
}

func (Fr) FromLiteral(x uint128.Uint128) fr.Element {
	var e fr.Element
	e.SetBigInt(x.Big())

	return e
}

func (Fr) FromSignedLiteral(x int64) fr.Element {
	var e fr.Element
	e.SetInt64(x)

	return e
}

func (f Fr) Inv(x, n fr.Element) fr.Element {
	inv, ok := f.CheckedInv(x, n)
	if !ok {
		panic("zero has no inverse")
	}

	return inv
}

func (Fr) CheckedInv(x, _ fr.Element) (fr.Element, bool) {
	if x.IsZero() {
		return fr.Element{}, false
	}

	var e fr.Element
	e.Inverse(&x)

	return e, true
}

// Max returns q-1.
func (f Fr) Max() fr.Element {
	e := f.One()
	e.Neg(&e)

	return e
}

func (f Fr) SubMod(a, b, _ fr.Element) fr.Element { return f.Sub(a, b) }
func (f Fr) AddMod(a, b, _ fr.Element) fr.Element { return f.Add(a, b) }
func (f Fr) MulMod(a, b, _ fr.Element) fr.Element { return f.Mul(a, b) }

func (Fr) Rem(a, _ fr.Element) fr.Element { return a }
func (Fr) Abs(a fr.Element) fr.Element    { return a }

func (Fr) Add(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Add(&a, &b)

	return c
}

func (Fr) Sub(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Sub(&a, &b)

	return c
}

func (Fr) Mul(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Mul(&a, &b)

	return c
}

func (f Fr) Div(a, b fr.Element) fr.Element {
	return f.Mul(a, f.Inv(b, fr.Element{}))
}

func (Fr) Equal(a, b fr.Element) bool { return a.Equal(&b) }
func (Fr) Cmp(a, b fr.Element) int    { return a.Cmp(&b) }
func (Fr) IsZero(a fr.Element) bool   { return a.IsZero() }

func (Fr) Signed() bool { return false }

func (Fr) Size() int { return fr.Bytes }

func (Fr) PutBytes(b []byte, a fr.Element) {
	bs := a.Bytes()
	copy(b[:fr.Bytes], bs[:])
}

func (Fr) FromBytes(b []byte) fr.Element {
	var e fr.Element
	e.SetBytes(b[:fr.Bytes])

	return e
}

func (Fr) Format(a fr.Element) string { return a.String() }
