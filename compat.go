package kyber

import (
	"bytes"
	"fmt"

	"github.com/primelattice/kyber/encoding"
	"github.com/primelattice/kyber/ring"
)

// The NIST reference implementation stores the secret-key evaluations under
// a different ordering of the primitive 512th roots of unity. The fixed
// permutation below converts between the two orderings:
// ourVector[convertPermutation[i]] = refVector[i].
var convertPermutation = [ring.N]int{
	140, 12, 204, 76, 172, 44, 236, 108, 28, 156, 92, 220, 60,
	188, 124, 252, 84, 212, 148, 20, 116, 244, 180, 52, 228, 100,
	36, 164, 4, 132, 68, 196, 240, 112, 48, 176, 16, 144, 80,
	208, 128, 0, 192, 64, 160, 32, 224, 96, 184, 56, 248, 120,
	216, 88, 24, 152, 72, 200, 136, 8, 104, 232, 168, 40, 190,
	62, 254, 126, 222, 94, 30, 158, 78, 206, 142, 14, 110, 238,
	174, 46, 134, 6, 198, 70, 166, 38, 230, 102, 22, 150, 86,
	214, 54, 182, 118, 246, 34, 162, 98, 226, 66, 194, 130, 2,
	178, 50, 242, 114, 210, 82, 18, 146, 234, 106, 42, 170, 10,
	138, 74, 202, 122, 250, 186, 58, 154, 26, 218, 90, 165, 37,
	229, 101, 197, 69, 5, 133, 53, 181, 117, 245, 85, 213, 149,
	21, 109, 237, 173, 45, 141, 13, 205, 77, 253, 125, 61, 189,
	29, 157, 93, 221, 9, 137, 73, 201, 41, 169, 105, 233, 153,
	25, 217, 89, 185, 57, 249, 121, 209, 81, 17, 145, 241, 113,
	49, 177, 97, 225, 161, 33, 129, 1, 193, 65, 215, 87, 23,
	151, 247, 119, 55, 183, 103, 231, 167, 39, 135, 7, 199, 71,
	159, 31, 223, 95, 191, 63, 255, 127, 47, 175, 111, 239, 79,
	207, 143, 15, 59, 187, 123, 251, 91, 219, 155, 27, 203, 75,
	11, 139, 235, 107, 43, 171, 3, 131, 67, 195, 35, 163, 99,
	227, 147, 19, 211, 83, 179, 51, 243, 115,
}

// convertInvPermutation is the inverse of convertPermutation.
var convertInvPermutation = [ring.N]int{
	41, 189, 103, 240, 28, 134, 81, 205, 59, 160, 116, 234, 1,
	149, 75, 223, 36, 178, 110, 249, 19, 143, 88, 194, 54, 169,
	125, 231, 8, 156, 70, 209, 45, 187, 96, 244, 26, 129, 85,
	203, 63, 164, 114, 238, 5, 147, 79, 216, 34, 182, 105, 253,
	23, 136, 92, 198, 49, 173, 123, 224, 12, 154, 65, 213, 43,
	191, 100, 242, 30, 133, 83, 207, 56, 162, 118, 233, 3, 151,
	72, 220, 38, 177, 109, 251, 16, 140, 90, 193, 53, 171, 127,
	228, 10, 158, 69, 211, 47, 184, 98, 246, 25, 131, 87, 200,
	60, 166, 113, 237, 7, 144, 76, 218, 33, 181, 107, 255, 20,
	138, 94, 197, 51, 175, 120, 226, 14, 153, 67, 215, 40, 188,
	102, 241, 29, 135, 80, 204, 58, 161, 117, 235, 0, 148, 74,
	222, 37, 179, 111, 248, 18, 142, 89, 195, 55, 168, 124, 230,
	9, 157, 71, 208, 44, 186, 97, 245, 27, 128, 84, 202, 62,
	165, 115, 239, 4, 146, 78, 217, 35, 183, 104, 252, 22, 137,
	93, 199, 48, 172, 122, 225, 13, 155, 64, 212, 42, 190, 101,
	243, 31, 132, 82, 206, 57, 163, 119, 232, 2, 150, 73, 221,
	39, 176, 108, 250, 17, 141, 91, 192, 52, 170, 126, 229, 11,
	159, 68, 210, 46, 185, 99, 247, 24, 130, 86, 201, 61, 167,
	112, 236, 6, 145, 77, 219, 32, 180, 106, 254, 21, 139, 95,
	196, 50, 174, 121, 227, 15, 152, 66, 214,
}

// MarshalBinaryRef encodes the secret key in the reference ordering: the
// permutation is applied to the evaluation coordinates of every component
// before the 13-bit encoding.
func (sk *SecretKey) MarshalBinaryRef() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, SecretKeySize))
	w := encoding.NewBitWriter(buf)
	for i := 0; i < ring.Dim; i++ {
		for j := 0; j < ring.N; j++ {
			v := sk.S[i].ValueAt(convertPermutation[j])
			if err := w.WriteBits(uint16(v), secretKeyEntryBits); err != nil {
				return nil, fmt.Errorf("kyber: cannot encode secret key: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("kyber: cannot encode secret key: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinaryRef decodes a secret key stored in the reference ordering.
func (sk *SecretKey) UnmarshalBinaryRef(data []byte) error {
	if len(data) != SecretKeySize {
		return fmt.Errorf("kyber: invalid secret key length %d, want %d", len(data), SecretKeySize)
	}
	r := encoding.NewBitReader(bytes.NewReader(data))
	for i := 0; i < ring.Dim; i++ {
		values := make([]ring.Zq, ring.N)
		for j := 0; j < ring.N; j++ {
			v, err := r.ReadBits(secretKeyEntryBits)
			if err != nil {
				return fmt.Errorf("kyber: cannot decode secret key: %w", err)
			}
			if v >= ring.Q {
				return fmt.Errorf("kyber: secret key evaluation out of range: %d", v)
			}
			values[convertPermutation[j]] = ring.Zq(v)
		}
		sk.S[i] = ring.NewNTTPolyFromZq(values)
	}
	return nil
}
