package ring

import (
	"fmt"

	"github.com/primelattice/kyber/encoding"
)

// Dim is the rank of the module over Rq.
const Dim = 3

// Vector is an element of the rank-3 free module over Rq, held in
// evaluation representation so that products are pointwise.
type Vector [Dim]NTTPoly

// Add returns v + w component-wise.
func (v Vector) Add(w Vector) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// Sub returns v - w component-wise.
func (v Vector) Sub(w Vector) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

// MulPoly scales every component by the ring element x.
func (v Vector) MulPoly(x NTTPoly) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = v[i].Mul(x)
	}
	return out
}

// MulZq scales every component by x.
func (v Vector) MulZq(x Zq) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = v[i].MulZq(x)
	}
	return out
}

// Dot returns the inner product, accumulated with the fused add-product
// primitive.
func (v Vector) Dot(w Vector) NTTPoly {
	var acc NTTPoly
	for i := 0; i < Dim; i++ {
		acc.AddProduct(&v[i], &w[i])
	}
	return acc
}

// Equal reports component-wise equality.
func (v Vector) Equal(w Vector) bool {
	for i := 0; i < Dim; i++ {
		if !v[i].Equal(w[i]) {
			return false
		}
	}
	return true
}

// CompressedVector is the lossy d-bit image of a module element.
type CompressedVector [Dim]CompressedPoly

// Compress routes every component through the inverse transform and
// compresses the coefficients to d bits.
func (v Vector) Compress(d uint) CompressedVector {
	var out CompressedVector
	for i := 0; i < Dim; i++ {
		out[i] = v[i].InvNTT().Compress(d)
	}
	return out
}

// DecompressVector rebuilds a module element: every component is
// decompressed to coefficients and converted back to evaluation form.
func DecompressVector(c CompressedVector) Vector {
	var out Vector
	for i := 0; i < Dim; i++ {
		out[i] = DecompressPoly(c[i]).NTT()
	}
	return out
}

// Encode writes the components in order.
func (c CompressedVector) Encode(w *encoding.BitWriter) error {
	for i := 0; i < Dim; i++ {
		if err := c[i].Encode(w); err != nil {
			return fmt.Errorf("ring: cannot encode vector component %d: %w", i, err)
		}
	}
	return nil
}

// DecodeCompressedVector reads three d-bit compressed components.
func DecodeCompressedVector(r *encoding.BitReader, d uint) (CompressedVector, error) {
	var c CompressedVector
	for i := 0; i < Dim; i++ {
		var err error
		if c[i], err = DecodeCompressedPoly(r, d); err != nil {
			return CompressedVector{}, fmt.Errorf("ring: cannot decode vector component %d: %w", i, err)
		}
	}
	return c, nil
}

// EncodeNTT writes the three components as raw 13-bit evaluations, the
// lossless secret-key format.
func (v Vector) EncodeNTT(w *encoding.BitWriter) error {
	for i := 0; i < Dim; i++ {
		if err := v[i].Encode(w); err != nil {
			return fmt.Errorf("ring: cannot encode vector component %d: %w", i, err)
		}
	}
	return nil
}

// DecodeVectorNTT reads three components of raw 13-bit evaluations.
func DecodeVectorNTT(r *encoding.BitReader) (Vector, error) {
	var v Vector
	for i := 0; i < Dim; i++ {
		var err error
		if v[i], err = DecodeNTTPoly(r); err != nil {
			return Vector{}, fmt.Errorf("ring: cannot decode vector component %d: %w", i, err)
		}
	}
	return v, nil
}
