package poly

import (
	"encoding/hex"
	"fmt"

	"github.com/jonathanmweiss/go-modpoly/coeff"
)

// Bytes encodes the coefficients of p, lowest degree first, each as r.Size() big-endian
// bytes.
func (p *Poly[T]) Bytes() []byte {
	size := p.r.Size()

	b := make([]byte, len(p.coeffs)*size)
	for i, c := range p.coeffs {
		p.r.PutBytes(b[i*size:(i+1)*size], c)
	}

	return b
}

// Hex is the hexadecimal form of Bytes.
func (p *Poly[T]) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// FromBytes decodes a polynomial of length coefficients written by Bytes.
// Panics if b does not hold exactly length coefficients.
func FromBytes[T any](r coeff.Integer[T], irr []T, b []byte, n T, length int) *Poly[T] {
	size := r.Size()
	if len(b) != length*size {
		panic(fmt.Sprintf("expected %d bytes for %d coefficients, got %d", length*size, length, len(b)))
	}

	coeffs := make([]T, length)
	for i := range coeffs {
		coeffs[i] = r.FromBytes(b[i*size : (i+1)*size])
	}

	return FromCoefficients(r, irr, coeffs, n)
}

// FromHex decodes a polynomial of length coefficients written by Hex.
// Panics if s is not valid hexadecimal or has the wrong length.
func FromHex[T any](r coeff.Integer[T], irr []T, s string, n T, length int) *Poly[T] {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("malformed hex polynomial: %v", err))
	}

	return FromBytes(r, irr, b, n, length)
}
