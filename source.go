package modpoly

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/sampling"
	"github.com/zeebo/blake3"
)

// NewSeededSource returns a deterministic random stream keyed by seed. Two sources with
// the same seed produce the same elements.
func NewSeededSource(seed []byte) (io.Reader, error) {
	prng, err := sampling.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("keying prng: %w", err)
	}

	return prng, nil
}

// NewSource returns a random stream keyed from the system's entropy.
func NewSource() (io.Reader, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("creating prng: %w", err)
	}

	return prng, nil
}

// DeriveSource returns an unbounded stream derived from seed under the context label.
// Streams with different labels are independent even when the seed is shared.
func DeriveSource(seed []byte, label string) io.Reader {
	h := blake3.NewDeriveKey(label)
	_, _ = h.Write(seed)

	return h.Digest()
}
