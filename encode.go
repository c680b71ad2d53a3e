package kyber

import (
	"bytes"
	"fmt"

	"github.com/primelattice/kyber/encoding"
	"github.com/primelattice/kyber/ring"
)

// Wire formats. All multi-value encodings write their fields in declaration
// order through the big-endian bit queue; the fixed parameter set makes
// every size a compile-time constant.

// MarshalBinary encodes the secret key as 3*256 evaluations of 13 bits.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, SecretKeySize))
	w := encoding.NewBitWriter(buf)
	if err := sk.S.EncodeNTT(w); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode secret key: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode secret key: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a secret key produced by MarshalBinary.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	if len(data) != SecretKeySize {
		return fmt.Errorf("kyber: invalid secret key length %d, want %d", len(data), SecretKeySize)
	}
	s, err := ring.DecodeVectorNTT(encoding.NewBitReader(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("kyber: cannot decode secret key: %w", err)
	}
	sk.S = s
	return nil
}

// MarshalBinary encodes the public key as the 11-bit compressed module
// element followed by the matrix seed.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, PublicKeySize))
	w := encoding.NewBitWriter(buf)
	if err := pk.B.Encode(w); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode public key: %w", err)
	}
	if err := w.WriteBytes(pk.Seed[:]); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode public key: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode public key: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a public key produced by MarshalBinary.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != PublicKeySize {
		return fmt.Errorf("kyber: invalid public key length %d, want %d", len(data), PublicKeySize)
	}
	r := encoding.NewBitReader(bytes.NewReader(data))
	b, err := ring.DecodeCompressedVector(r, compressionVector)
	if err != nil {
		return fmt.Errorf("kyber: cannot decode public key: %w", err)
	}
	var seed Seed
	if err := r.ReadBytes(seed[:]); err != nil {
		return fmt.Errorf("kyber: cannot decode public key seed: %w", err)
	}
	pk.B = b
	pk.Seed = seed
	return nil
}

// MarshalBinary encodes the ciphertext as the 11-bit compressed u followed
// by the 3-bit compressed v.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, CiphertextSize))
	w := encoding.NewBitWriter(buf)
	if err := ct.U.Encode(w); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode ciphertext: %w", err)
	}
	if err := ct.V.Encode(w); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode ciphertext: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode ciphertext: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a ciphertext produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) != CiphertextSize {
		return fmt.Errorf("kyber: invalid ciphertext length %d, want %d", len(data), CiphertextSize)
	}
	r := encoding.NewBitReader(bytes.NewReader(data))
	u, err := ring.DecodeCompressedVector(r, compressionVector)
	if err != nil {
		return fmt.Errorf("kyber: cannot decode ciphertext: %w", err)
	}
	v, err := ring.DecodeCompressedPoly(r, compressionElement)
	if err != nil {
		return fmt.Errorf("kyber: cannot decode ciphertext: %w", err)
	}
	ct.U = u
	ct.V = v
	return nil
}
