/*
Package kyber implements the CRYSTALS-Kyber IND-CPA public-key encryption
primitive for the parameter set with module rank 3, modulus 7681 and ring
degree 256.

The arithmetic core lives in the ring subpackage: the scalar field Zq, the
quotient ring Rq = Zq[X]/(X^256+1) with its coefficient and evaluation
representations linked by a number-theoretic transform, the rank-3 module
over Rq and the lossy bit-level compression codecs. This package composes
them into the three top-level operations KeyGen, Encrypt and Decrypt and
defines the wire formats.

The scheme has an intrinsic, negligible decryption failure probability; no
recovery is attempted. All operations are deterministic given their seeds.
*/
package kyber

import "github.com/primelattice/kyber/ring"

// SecretKey holds the secret module element in evaluation representation.
type SecretKey struct {
	S ring.Vector
}

// PublicKey holds the compressed public module element b = A*s + e and the
// seed the matrix A was expanded from.
type PublicKey struct {
	B    ring.CompressedVector
	Seed Seed
}

// Ciphertext holds the compressed pair (u, v).
type Ciphertext struct {
	U ring.CompressedVector
	V ring.CompressedPoly
}

// KeyGen derives a key pair from the two seeds: the matrix A is expanded
// from matrixSeed via SHAKE-128, the secret vector s and error vector e are
// drawn from the centered binomial distribution via SHAKE-256 on secretSeed,
// and the public element is b = A*s + e.
func KeyGen(matrixSeed, secretSeed Seed) (*SecretKey, *PublicKey) {
	a := ExpandMatrix(matrixSeed)
	noise := newNoiseSampler(secretSeed)
	s := noise.sampleVector()
	e := noise.sampleVector()
	b := a.MulVec(s).Add(e)
	return &SecretKey{S: s},
		&PublicKey{B: b.Compress(compressionVector), Seed: matrixSeed}
}

// Encrypt encrypts a 32-byte plaintext under pk. The ephemeral randomness
// r, e1, e2 is drawn from the centered binomial distribution via SHAKE-256
// on encSeed; the plaintext bits are embedded as 1-bit compressed
// coefficients scaled to the rounded Q/2.
func Encrypt(pk *PublicKey, plaintext Plaintext, encSeed Seed) *Ciphertext {
	t := ring.DecompressVector(pk.B)
	a := ExpandMatrix(pk.Seed)

	noise := newNoiseSampler(encSeed)
	r := noise.sampleVector()
	e1 := noise.sampleVector()
	e2 := noise.samplePoly().NTT()

	u := a.Transposed().MulVec(r).Add(e1)

	mu := ring.DecompressPoly(ring.CompressedPolyFromBytes(plaintext))
	v := t.Dot(r).Add(e2).Add(mu.NTT())

	return &Ciphertext{
		U: u.Compress(compressionVector),
		V: v.InvNTT().Compress(compressionElement),
	}
}

// Decrypt recovers the plaintext as the 1-bit compression of
// v - s*u in coefficient representation.
func Decrypt(sk *SecretKey, ct *Ciphertext) Plaintext {
	u := ring.DecompressVector(ct.U)
	v := ring.DecompressPoly(ct.V)
	w := v.Sub(sk.S.Dot(u).InvNTT())
	return w.Compress(1).Bytes()
}
