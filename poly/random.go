package poly

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/jonathanmweiss/go-modpoly/coeff"
	"lukechampine.com/uint128"
)

// uniformSampler draws uniform integers from the bytes of a random source.
type uniformSampler struct {
	src io.Reader
	buf [8]byte
}

func newUniformSampler(src io.Reader) *uniformSampler {
	return &uniformSampler{src: src}
}

func (s *uniformSampler) sample() (uint64, error) {
	if _, err := io.ReadFull(s.src, s.buf[:]); err != nil {
		// a source drained before every coefficient is drawn is always short.
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return 0, fmt.Errorf("reading random source: %w", err)
	}

	return binary.LittleEndian.Uint64(s.buf[:]), nil
}

// sampleN uniformly samples an integer in [0, N). N == 0 stands for 2^64.
func (s *uniformSampler) sampleN(N uint64) (uint64, error) {
	if N == 0 {
		return s.sample()
	}

	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res, err := s.sample()
		if err != nil {
			return 0, err
		}

		if res < bound {
			return res % N, nil
		}
	}
}

// RandomCoefficients returns l coefficients drawn independently and uniformly from
// [lo, hi]. Coefficients that do not fit in T are cast like signed literals.
func RandomCoefficients[T any](r coeff.Integer[T], l int, lo, hi int64, src io.Reader) ([]T, error) {
	if hi < lo {
		panic(fmt.Sprintf("empty coefficient range [%d, %d]", lo, hi))
	}

	s := newUniformSampler(src)
	span := uint64(hi) - uint64(lo) + 1

	out := make([]T, l)
	for i := range out {
		v, err := s.sampleN(span)
		if err != nil {
			return nil, err
		}

		out[i] = r.FromSignedLiteral(lo + int64(v))
	}

	return out, nil
}

// UniformCoefficients returns l coefficients drawn independently and uniformly from
// [0, n). Panics if n is zero.
func UniformCoefficients[T any](r coeff.Integer[T], l int, n uint64, src io.Reader) ([]T, error) {
	if n == 0 {
		panic("uniform sampling needs a coefficient modulus")
	}

	s := newUniformSampler(src)

	out := make([]T, l)
	for i := range out {
		v, err := s.sampleN(n)
		if err != nil {
			return nil, err
		}

		out[i] = r.FromLiteral(uint128.From64(v))
	}

	return out, nil
}
