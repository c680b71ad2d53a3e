package ring

import "github.com/klauspost/cpuid/v2"

// useLanes selects the lane-transposed kernel on CPUs with 256-bit vector
// units, where the flat eight-lane loops compile to single instructions.
// The scalar kernel is the reference path; both compute identical results.
var useLanes = cpuid.CPU.Supports(cpuid.AVX2)

// rootFn supplies the twiddle for a given butterfly index.
type rootFn func(i int) Zq

func forwardRoot(i int) Zq {
	return UnityRoots512[2*i%512]
}

func inverseRoot(i int) Zq {
	return UnityRoots512[2*((N-i)%N)]
}

// fftLanes runs the radix-2 decimation-in-time transform on 32 eight-lane
// vectors. The first five stages have butterfly strides of at least one
// vector, so a single broadcast twiddle serves all eight lanes. The last
// three stages have sub-vector strides; the 32x8 lane matrix is transposed
// once so that each vector then holds one element from eight independent
// butterfly groups and a per-lane twiddle vector is read off the root table.
func fftLanes(values [vecCount]Vec8, root rootFn) [vecCount]Vec8 {
	var temp [vecCount]Vec8

	fftStageWide(&temp, &values, 1, root)
	fftStageWide(&values, &temp, 2, root)
	fftStageWide(&temp, &values, 3, root)
	fftStageWide(&values, &temp, 4, root)
	fftStageWide(&temp, &values, 5, root)

	temp = transposeLanes(&temp)

	fftStageNarrow(&values, &temp, 6, root)
	fftStageNarrow(&temp, &values, 7, root)
	fftStageNarrow(&values, &temp, 8, root)

	return values
}

// fftStageWide performs stage i with few butterfly groups and wide runs:
// every group spans at least one full vector, so the twiddle is broadcast.
func fftStageWide(dst, src *[vecCount]Vec8, i int, root rootFn) {
	n := 1 << i
	d := 1 << (8 - i)
	oldN := n >> 1
	dVec := d / vecSize
	oldDVec := dVec << 1

	for k := 0; k < oldN; k++ {
		w := BroadcastVec8(root(k * d))
		for j := 0; j < dVec; j++ {
			a := src[k*oldDVec+j]
			b := src[k*oldDVec+j+dVec].Mul(w)
			dst[k*dVec+j] = a.Add(b)
			dst[(k+oldN)*dVec+j] = a.Sub(b)
		}
	}
}

// fftStageNarrow performs stage i after the transpose, with many butterfly
// groups and sub-vector runs: the eight lanes of one vector belong to eight
// different groups and need individual twiddles.
func fftStageNarrow(dst, src *[vecCount]Vec8, i int, root rootFn) {
	d := 1 << (8 - i)
	n := 1 << i
	oldN := n >> 1
	nVec := n / vecSize
	oldNVec := oldN / vecSize

	for j := 0; j < d; j++ {
		for vk := 0; vk < oldNVec; vk++ {
			var w Vec8
			for dk := 0; dk < vecSize; dk++ {
				w[dk] = int32(root((vk*vecSize + dk) * d))
			}
			a := src[j*oldNVec+vk]
			b := src[(j+d)*oldNVec+vk].Mul(w)
			dst[j*nVec+vk] = a.Add(b)
			dst[j*nVec+vk+oldNVec] = a.Sub(b)
		}
	}
}

// fftScalar is the reference kernel: the same eight stages on a flat array
// of 256 scalars, with the source and destination arrays swapping roles each
// stage. After the eighth stage the result has landed back in values.
func fftScalar(values *[N]Zq, root rootFn) {
	var temp [N]Zq
	src, dst := values[:], temp[:]

	n, d := 1, N
	for i := 1; i <= 8; i++ {
		n <<= 1
		d >>= 1
		oldD := d << 1
		for k := 0; k < n/2; k++ {
			w := root(k * d)
			for j := 0; j < d; j++ {
				a := src[k*oldD+j]
				b := w.Mul(src[k*oldD+j+d])
				dst[k*d+j] = a.Add(b)
				dst[(k+n/2)*d+j] = a.Sub(b)
			}
		}
		src, dst = dst, src
	}
}

// fft dispatches to the selected kernel.
func fft(values [vecCount]Vec8, root rootFn) [vecCount]Vec8 {
	if useLanes {
		return fftLanes(values, root)
	}
	flat := flatten(&values)
	fftScalar(&flat, root)
	return unflatten(&flat)
}

func flatten(v *[vecCount]Vec8) [N]Zq {
	var out [N]Zq
	for i := 0; i < vecCount; i++ {
		for j := 0; j < vecSize; j++ {
			out[i*vecSize+j] = Zq(v[i][j])
		}
	}
	return out
}

func unflatten(v *[N]Zq) [vecCount]Vec8 {
	var out [vecCount]Vec8
	for i := 0; i < vecCount; i++ {
		for j := 0; j < vecSize; j++ {
			out[i][j] = int32(v[i*vecSize+j])
		}
	}
	return out
}

// NTT evaluates the polynomial at the 256 primitive 512th roots of unity.
//
// A plain length-256 transform would evaluate at the 256th roots of unity,
// i.e. reduce modulo X^256-1. Scaling coefficient i by zeta^i beforehand
// shifts the evaluation points to zeta*omega^k, the primitive 512th roots,
// which reduces modulo X^256+1 instead.
func (p Poly) NTT() NTTPoly {
	values := p.coeffs
	for i := 0; i < vecCount; i++ {
		values[i] = values[i].Mul(forwardTwist[i])
	}
	return NTTPoly{values: fft(values, forwardRoot)}
}

// InvNTT recovers the coefficients from the evaluations: the transform is
// run with the reversed roots, then each output i is scaled by zeta^-i and
// by 1/N.
func (p NTTPoly) InvNTT() Poly {
	result := fft(p.values, inverseRoot)
	for i := 0; i < vecCount; i++ {
		result[i] = result[i].Mul(inversePostScale[i])
	}
	return Poly{coeffs: result}
}
