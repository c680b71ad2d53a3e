package kyber

import "github.com/primelattice/kyber/ring"

const (
	// SeedSize is the length of the matrix, secret and encryption seeds.
	SeedSize = 32

	// PlaintextSize is the length of a message; each bit maps to one ring
	// coefficient.
	PlaintextSize = 32

	// compressionVector is the bit width used for compressed module
	// elements: the public key component and the ciphertext component u.
	compressionVector = 11

	// compressionElement is the bit width used for the ciphertext
	// component v.
	compressionElement = 3

	// secretKeyEntryBits is the width of one secret-key evaluation.
	secretKeyEntryBits = 13

	// SecretKeySize is the byte length of an encoded secret key:
	// 3 * 256 evaluations of 13 bits.
	SecretKeySize = ring.Dim * ring.N * secretKeyEntryBits / 8

	// PublicKeySize is the byte length of an encoded public key: an 11-bit
	// compressed module element followed by the matrix seed.
	PublicKeySize = ring.Dim*ring.N*compressionVector/8 + SeedSize

	// CiphertextSize is the byte length of an encoded ciphertext: an 11-bit
	// compressed module element followed by a 3-bit compressed ring element.
	CiphertextSize = ring.Dim*ring.N*compressionVector/8 + ring.N*compressionElement/8
)

// Seed is a 32-byte domain-separated input to the XOF expansions.
type Seed = [SeedSize]byte

// Plaintext is a 32-byte message.
type Plaintext = [PlaintextSize]byte
