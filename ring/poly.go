package ring

import (
	"fmt"

	"github.com/primelattice/kyber/encoding"
)

// nttEntryBits is the field width used when serializing one evaluation.
const nttEntryBits = 13

// Poly is an element of Rq in coefficient representation: the polynomial
// coeffs[0] + coeffs[1]*X + ... + coeffs[255]*X^255.
//
// Coefficient form supports the linear operations and lossy compression;
// multiplication requires converting to NTTPoly first.
type Poly struct {
	coeffs [vecCount]Vec8
}

// NewPoly returns the zero polynomial.
func NewPoly() Poly {
	return Poly{}
}

// NewPolyFromInt16 builds a polynomial from 256 signed coefficients,
// reducing each modulo Q.
func NewPolyFromInt16(values []int16) Poly {
	if len(values) != N {
		panic(fmt.Sprintf("ring: expected %d coefficients, got %d", N, len(values)))
	}
	var p Poly
	for i := 0; i < vecCount; i++ {
		p.coeffs[i] = NewVec8(values[i*vecSize : (i+1)*vecSize])
	}
	return p
}

// NewPolyFromZq builds a polynomial from 256 reduced coefficients.
func NewPolyFromZq(values []Zq) Poly {
	if len(values) != N {
		panic(fmt.Sprintf("ring: expected %d coefficients, got %d", N, len(values)))
	}
	var p Poly
	for i := 0; i < N; i++ {
		p.coeffs[i/vecSize][i%vecSize] = int32(values[i])
	}
	return p
}

// Coeff returns coefficient i.
func (p Poly) Coeff(i int) Zq {
	return Zq(p.coeffs[i/vecSize][i%vecSize])
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	var out Poly
	for i := 0; i < vecCount; i++ {
		out.coeffs[i] = p.coeffs[i].Add(q.coeffs[i])
	}
	return out
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	var out Poly
	for i := 0; i < vecCount; i++ {
		out.coeffs[i] = p.coeffs[i].Sub(q.coeffs[i])
	}
	return out
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	var out Poly
	for i := 0; i < vecCount; i++ {
		out.coeffs[i] = p.coeffs[i].Neg()
	}
	return out
}

// MulZq returns p scaled by x.
func (p Poly) MulZq(x Zq) Poly {
	w := BroadcastVec8(x)
	var out Poly
	for i := 0; i < vecCount; i++ {
		out.coeffs[i] = p.coeffs[i].Mul(w)
	}
	return out
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	for i := 0; i < vecCount; i++ {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// NTTPoly is an element of Rq in evaluation representation: values[i] is the
// polynomial evaluated at the i-th primitive 512th root of unity. Pointwise
// multiplication of two NTTPoly corresponds to polynomial multiplication
// modulo X^256+1.
type NTTPoly struct {
	values [vecCount]Vec8
}

// NewNTTPoly returns the zero element.
func NewNTTPoly() NTTPoly {
	return NTTPoly{}
}

// NewNTTPolyFromInt16 builds an evaluation vector from 256 signed values,
// reducing each modulo Q.
func NewNTTPolyFromInt16(values []int16) NTTPoly {
	return NTTPoly{values: NewPolyFromInt16(values).coeffs}
}

// NewNTTPolyFromZq builds an evaluation vector from 256 reduced values.
func NewNTTPolyFromZq(values []Zq) NTTPoly {
	return NTTPoly{values: NewPolyFromZq(values).coeffs}
}

// ValueAt returns the evaluation at the zeta of the given index.
func (p NTTPoly) ValueAt(i int) Zq {
	return Zq(p.values[i/vecSize][i%vecSize])
}

// Add returns p + q.
func (p NTTPoly) Add(q NTTPoly) NTTPoly {
	var out NTTPoly
	for i := 0; i < vecCount; i++ {
		out.values[i] = p.values[i].Add(q.values[i])
	}
	return out
}

// Sub returns p - q.
func (p NTTPoly) Sub(q NTTPoly) NTTPoly {
	var out NTTPoly
	for i := 0; i < vecCount; i++ {
		out.values[i] = p.values[i].Sub(q.values[i])
	}
	return out
}

// Mul returns the pointwise product, i.e. the product of the two ring
// elements.
func (p NTTPoly) Mul(q NTTPoly) NTTPoly {
	var out NTTPoly
	for i := 0; i < vecCount; i++ {
		out.values[i] = p.values[i].Mul(q.values[i])
	}
	return out
}

// MulZq returns p scaled by x.
func (p NTTPoly) MulZq(x Zq) NTTPoly {
	w := BroadcastVec8(x)
	var out NTTPoly
	for i := 0; i < vecCount; i++ {
		out.values[i] = p.values[i].Mul(w)
	}
	return out
}

// DivZq returns p scaled by the inverse of x. x must be nonzero.
func (p NTTPoly) DivZq(x Zq) NTTPoly {
	return p.MulZq(x.Inv())
}

// AddProduct accumulates a*b onto p without materializing the intermediate
// product.
func (p *NTTPoly) AddProduct(a, b *NTTPoly) {
	for i := 0; i < vecCount; i++ {
		p.values[i] = p.values[i].Add(a.values[i].Mul(b.values[i]))
	}
}

// Equal reports value-wise equality.
func (p NTTPoly) Equal(q NTTPoly) bool {
	for i := 0; i < vecCount; i++ {
		if !p.values[i].Equal(q.values[i]) {
			return false
		}
	}
	return true
}

// Encode writes the 256 evaluations back-to-back, 13 bits each.
func (p NTTPoly) Encode(w *encoding.BitWriter) error {
	for i := 0; i < N; i++ {
		if err := w.WriteBits(uint16(p.ValueAt(i)), nttEntryBits); err != nil {
			return fmt.Errorf("ring: cannot encode evaluation %d: %w", i, err)
		}
	}
	return nil
}

// DecodeNTTPoly reads 256 evaluations of 13 bits each. Values outside
// 0..Q-1 are rejected.
func DecodeNTTPoly(r *encoding.BitReader) (NTTPoly, error) {
	var p NTTPoly
	for i := 0; i < N; i++ {
		v, err := r.ReadBits(nttEntryBits)
		if err != nil {
			return NTTPoly{}, fmt.Errorf("ring: cannot decode evaluation %d: %w", i, err)
		}
		if v >= Q {
			return NTTPoly{}, fmt.Errorf("ring: evaluation %d out of range: %d", i, v)
		}
		p.values[i/vecSize][i%vecSize] = int32(v)
	}
	return p, nil
}
