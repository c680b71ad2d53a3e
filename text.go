package kyber

import (
	"bytes"
	"fmt"

	"github.com/primelattice/kyber/encoding"
)

// Base64 text framing for the binary wire formats. The standard alphabet is
// used with '=' padding and no line breaks.

// WriteSecretKey encodes sk as Base64 text.
func WriteSecretKey(sk *SecretKey) (string, error) {
	b, err := sk.MarshalBinary()
	if err != nil {
		return "", err
	}
	return encoding.Base64EncodeToString(b), nil
}

// ReadSecretKey decodes a secret key from Base64 text.
func ReadSecretKey(s string) (*SecretKey, error) {
	b, err := encoding.Base64DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("kyber: cannot read secret key: %w", err)
	}
	sk := new(SecretKey)
	if err := sk.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return sk, nil
}

// WritePublicKey encodes pk as Base64 text.
func WritePublicKey(pk *PublicKey) (string, error) {
	b, err := pk.MarshalBinary()
	if err != nil {
		return "", err
	}
	return encoding.Base64EncodeToString(b), nil
}

// ReadPublicKey decodes a public key from Base64 text.
func ReadPublicKey(s string) (*PublicKey, error) {
	b, err := encoding.Base64DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("kyber: cannot read public key: %w", err)
	}
	pk := new(PublicKey)
	if err := pk.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return pk, nil
}

// WriteCiphertext encodes ct as Base64 text.
func WriteCiphertext(ct *Ciphertext) (string, error) {
	b, err := ct.MarshalBinary()
	if err != nil {
		return "", err
	}
	return encoding.Base64EncodeToString(b), nil
}

// ReadCiphertext decodes a ciphertext from Base64 text.
func ReadCiphertext(s string) (*Ciphertext, error) {
	b, err := encoding.Base64DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("kyber: cannot read ciphertext: %w", err)
	}
	ct := new(Ciphertext)
	if err := ct.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return ct, nil
}

// WriteMessage encodes a plaintext as Base64 text through the byte-aligned
// stream codec.
func WriteMessage(m Plaintext) string {
	buf := new(bytes.Buffer)
	sw := encoding.NewByteStreamWriter(buf)
	if err := sw.WriteBytes(m[:]); err != nil {
		panic(err)
	}
	return encoding.Base64EncodeToString(buf.Bytes())
}

// ReadMessage decodes a plaintext from Base64 text. Longer inputs are
// allowed; only the 32-byte prefix is used.
func ReadMessage(s string) (Plaintext, error) {
	b, err := encoding.Base64DecodeString(s)
	if err != nil {
		return Plaintext{}, fmt.Errorf("kyber: cannot read message: %w", err)
	}
	var m Plaintext
	sr := encoding.NewByteStreamReader(bytes.NewReader(b))
	if err := sr.ReadBytes(m[:]); err != nil {
		return Plaintext{}, fmt.Errorf("kyber: cannot read message: %w", err)
	}
	return m, nil
}
