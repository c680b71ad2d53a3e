package ring

import "math"

const (
	vecSize  = 8
	vecCount = N / vecSize
)

// qInv is the nearest float32 to 1/Q, used by the reciprocal reduction.
const qInv = float32(1) / float32(Q)

// Vec8 bundles eight Zq lanes so that the inner NTT loops operate on flat
// fixed-size arrays the compiler can turn into single-instruction code.
// Invariant: every lane holds a value in 0..Q-1.
type Vec8 [8]int32

// reduceProduct returns p mod Q for |p| <= 7680*7680.
//
// The quotient is obtained by multiplying with the float32 reciprocal of Q
// and truncating toward zero. A float32 carries 24 significant bits while p
// may have up to 26, so the quotient can be off by one in either direction; the remainder then lies in
// [-Q, 2Q-1] and a single conditional correction brings it into range.
func reduceProduct(p int32) int32 {
	quotient := int32(float32(p) * qInv)
	r := p - quotient*Q
	if r < 0 {
		r += Q
	}
	if r > Q-1 {
		r -= Q
	}
	return r
}

// ZeroVec8 returns the all-zero vector.
func ZeroVec8() Vec8 {
	return Vec8{}
}

// BroadcastVec8 replicates x across all eight lanes.
func BroadcastVec8(x Zq) Vec8 {
	v := int32(x)
	return Vec8{v, v, v, v, v, v, v, v}
}

// NewVec8 reduces eight signed 16-bit values lane-wise.
func NewVec8(values []int16) Vec8 {
	var v Vec8
	for i := 0; i < vecSize; i++ {
		v[i] = reduceProduct(int32(values[i]))
	}
	return v
}

// NewVec8Perfect wraps eight already-reduced lanes.
func NewVec8Perfect(values [8]Zq) Vec8 {
	var v Vec8
	for i := 0; i < vecSize; i++ {
		v[i] = int32(values[i])
	}
	return v
}

// Lanes returns the eight lanes as Zq elements.
func (v Vec8) Lanes() [8]Zq {
	var out [8]Zq
	for i := 0; i < vecSize; i++ {
		out[i] = Zq(v[i])
	}
	return out
}

// Add returns the lane-wise sum.
func (v Vec8) Add(w Vec8) Vec8 {
	var out Vec8
	for i := 0; i < vecSize; i++ {
		s := v[i] + w[i]
		if s > Q-1 {
			s -= Q
		}
		out[i] = s
	}
	return out
}

// Sub returns the lane-wise difference.
func (v Vec8) Sub(w Vec8) Vec8 {
	var out Vec8
	for i := 0; i < vecSize; i++ {
		d := v[i] - w[i]
		if d < 0 {
			d += Q
		}
		out[i] = d
	}
	return out
}

// Mul returns the lane-wise product, reduced with reduceProduct.
func (v Vec8) Mul(w Vec8) Vec8 {
	var out Vec8
	for i := 0; i < vecSize; i++ {
		out[i] = reduceProduct(v[i] * w[i])
	}
	return out
}

// MulZq multiplies every lane by x.
func (v Vec8) MulZq(x Zq) Vec8 {
	return v.Mul(BroadcastVec8(x))
}

// DivZq divides every lane by x, implemented as multiplication by the
// inverse. x must be nonzero.
func (v Vec8) DivZq(x Zq) Vec8 {
	return v.Mul(BroadcastVec8(x.Inv()))
}

// Neg returns the lane-wise negation.
func (v Vec8) Neg() Vec8 {
	var out Vec8
	for i := 0; i < vecSize; i++ {
		if v[i] != 0 {
			out[i] = Q - v[i]
		}
	}
	return out
}

// Equal reports lane-wise equality. Both operands satisfy the range
// invariant, so representatives compare directly.
func (v Vec8) Equal(w Vec8) bool {
	for i := 0; i < vecSize; i++ {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// Sum returns the horizontal sum of the lanes as an unreduced integer.
func (v Vec8) Sum() int32 {
	var s int32
	for i := 0; i < vecSize; i++ {
		s += v[i]
	}
	return s
}

// Compress maps every lane to round(lane * 2^d / Q) mod 2^d. The float
// rounding is exact for this Q and any d <= 16: the fractional part of
// lane*2^d/Q stays further from 0.5 than the representation error of the
// reciprocal.
func (v Vec8) Compress(d uint) [8]uint16 {
	factor := float32(int32(1)<<d) / float32(Q)
	mask := uint16(1)<<d - 1
	var out [8]uint16
	for i := 0; i < vecSize; i++ {
		out[i] = uint16(math.Round(float64(float32(v[i])*factor))) & mask
	}
	return out
}

// DecompressVec8 maps every d-bit lane back to the nearest representative
// round(lane * Q / 2^d).
func DecompressVec8(c [8]uint16, d uint) Vec8 {
	factor := float32(Q) / float32(int32(1)<<d)
	var out Vec8
	for i := 0; i < vecSize; i++ {
		r := int32(math.Round(float64(float32(c[i]) * factor)))
		if r >= Q {
			r -= Q
		}
		out[i] = r
	}
	return out
}

// transposeLanes reinterprets the 32 vectors as a 32x8 matrix of lanes and
// returns its 8x32 transpose. The NTT uses it to move between the wide
// stages (one twiddle broadcast per vector) and the narrow stages (one
// twiddle per lane).
func transposeLanes(v *[vecCount]Vec8) [vecCount]Vec8 {
	var out [vecCount]Vec8
	for r := 0; r < vecSize; r++ {
		for c := 0; c < vecCount; c++ {
			f := r*vecCount + c
			out[f/vecSize][f%vecSize] = v[c][r]
		}
	}
	return out
}
