package kyber

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short hex digest of an encoded key or ciphertext
// blob, suitable for logs and key listings.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Fingerprint returns the fingerprint of the encoded public key.
func (pk *PublicKey) Fingerprint() string {
	b, err := pk.MarshalBinary()
	if err != nil {
		return ""
	}
	return Fingerprint(b)
}

// Fingerprint returns the fingerprint of the encoded secret key.
func (sk *SecretKey) Fingerprint() string {
	b, err := sk.MarshalBinary()
	if err != nil {
		return ""
	}
	return Fingerprint(b)
}
