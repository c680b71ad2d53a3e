package ring

import (
	"fmt"
	"math"

	"github.com/primelattice/kyber/encoding"
)

// Compress returns the value y in 0..2^d-1 for which y*Q/2^d is nearest to
// x modulo Q. After decompression the round-trip error is at most
// ceil(Q/2^(d+1)). d must be at most 16.
func (x Zq) Compress(d uint) uint16 {
	n := float32(int32(1) << d)
	return uint16(math.Round(float64(float32(x)*n/float32(Q)))) & (uint16(1)<<d - 1)
}

// DecompressZq returns the element of Zq whose representative is nearest to
// y*Q/2^d.
func DecompressZq(y uint16, d uint) Zq {
	n := float32(int32(1) << d)
	r := uint32(math.Round(float64(float32(y) * float32(Q) / n)))
	if r >= Q {
		r -= Q
	}
	return Zq(r)
}

// CompressedPoly is the lossy d-bit image of a coefficient-form ring
// element: 256 values of d bits each.
type CompressedPoly struct {
	D    uint
	Data [N]uint16
}

// Compress maps every coefficient to its d-bit image.
func (p Poly) Compress(d uint) CompressedPoly {
	c := CompressedPoly{D: d}
	for i := 0; i < vecCount; i++ {
		lanes := p.coeffs[i].Compress(d)
		copy(c.Data[i*vecSize:], lanes[:])
	}
	return c
}

// DecompressPoly maps every d-bit value back to the nearest coefficient.
func DecompressPoly(c CompressedPoly) Poly {
	var p Poly
	for i := 0; i < vecCount; i++ {
		var lanes [8]uint16
		copy(lanes[:], c.Data[i*vecSize:])
		p.coeffs[i] = DecompressVec8(lanes, c.D)
	}
	return p
}

// Encode writes the 256 values back-to-back, D bits each.
func (c CompressedPoly) Encode(w *encoding.BitWriter) error {
	for i := 0; i < N; i++ {
		if err := w.WriteBits(c.Data[i], int(c.D)); err != nil {
			return fmt.Errorf("ring: cannot encode compressed coefficient %d: %w", i, err)
		}
	}
	return nil
}

// DecodeCompressedPoly reads 256 values of d bits each.
func DecodeCompressedPoly(r *encoding.BitReader, d uint) (CompressedPoly, error) {
	c := CompressedPoly{D: d}
	for i := 0; i < N; i++ {
		v, err := r.ReadBits(int(d))
		if err != nil {
			return CompressedPoly{}, fmt.Errorf("ring: cannot decode compressed coefficient %d: %w", i, err)
		}
		c.Data[i] = v
	}
	return c, nil
}

// Bytes packs a 1-bit compressed element into 32 bytes, bit i of the result
// going to byte i/8, position i%8. Only defined for D == 1; this is the
// plaintext embedding.
func (c CompressedPoly) Bytes() [32]byte {
	if c.D != 1 {
		panic("ring: byte packing requires 1-bit compression")
	}
	var out [32]byte
	for i := 0; i < N; i++ {
		out[i/8] |= byte(c.Data[i]) << (i % 8)
	}
	return out
}

// CompressedPolyFromBytes expands 32 bytes into a 1-bit compressed element.
func CompressedPolyFromBytes(m [32]byte) CompressedPoly {
	c := CompressedPoly{D: 1}
	for i := 0; i < N; i++ {
		c.Data[i] = uint16(m[i/8]>>(i%8)) & 1
	}
	return c
}
