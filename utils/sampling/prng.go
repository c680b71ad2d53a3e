// Package sampling implements the pseudo-random byte sources used for seed
// generation and deterministic test streams.
package sampling

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a byte stream source. Implementations must be deterministic for a
// given key.
type PRNG interface {
	Read(p []byte) (int, error)
	Reset()
}

// KeyedPRNG is a deterministic PRNG based on the blake2b XOF. Two instances
// created with the same key produce identical streams.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG with the provided key. The key must be at
// most 64 bytes long.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	prng := &KeyedPRNG{key: key}
	var err error
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key); err != nil {
		return nil, fmt.Errorf("sampling: cannot instantiate xof: %w", err)
	}
	return prng, nil
}

// NewPRNG creates a KeyedPRNG keyed with 64 bytes from crypto/rand.
func NewPRNG() (*KeyedPRNG, error) {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("sampling: cannot read system entropy: %w", err)
	}
	return NewKeyedPRNG(key)
}

// Read fills p with bytes from the stream.
func (prng *KeyedPRNG) Read(p []byte) (int, error) {
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its beginning.
func (prng *KeyedPRNG) Reset() {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key)
	if err != nil {
		panic(err)
	}
	prng.xof = xof
}
