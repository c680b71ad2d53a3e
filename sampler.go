package kyber

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/sha3"

	"github.com/primelattice/kyber/ring"
)

// uniformSampler draws uniform Zq elements from a SHAKE-128 stream by
// reading 13-bit chunks and rejecting values of Q and above. The rejection
// rate is below 7 percent.
type uniformSampler struct {
	xof sha3.ShakeHash
}

func newUniformSampler(seed []byte) *uniformSampler {
	xof := sha3.NewShake128()
	xof.Write(seed)
	return &uniformSampler{xof: xof}
}

func (s *uniformSampler) sampleZq() ring.Zq {
	var buf [2]byte
	for {
		s.xof.Read(buf[:])
		v := binary.LittleEndian.Uint16(buf[:]) & 0x1FFF
		if v < ring.Q {
			return ring.Zq(v)
		}
	}
}

func (s *uniformSampler) samplePoly() ring.NTTPoly {
	coeffs := make([]ring.Zq, ring.N)
	for i := range coeffs {
		coeffs[i] = s.sampleZq()
	}
	// a uniform coefficient vector transforms to a uniform evaluation
	// vector; converting keeps the two expansion paths interchangeable
	return ring.NewPolyFromZq(coeffs).NTT()
}

// ExpandMatrix expands the 3x3 public matrix A from seed with a single
// SHAKE-128 stream, row-major by (row, col).
func ExpandMatrix(seed Seed) ring.Matrix {
	s := newUniformSampler(seed[:])
	var a ring.Matrix
	for row := 0; row < ring.Dim; row++ {
		for col := 0; col < ring.Dim; col++ {
			a[row][col] = s.samplePoly()
		}
	}
	return a
}

// ExpandMatrixSeeded expands A with one SHAKE-128 stream per element, keyed
// by seed followed by the column and row indices. This derivation keeps
// individual elements reproducible independently of each other.
func ExpandMatrixSeeded(seed Seed) ring.Matrix {
	var a ring.Matrix
	for row := 0; row < ring.Dim; row++ {
		for col := 0; col < ring.Dim; col++ {
			elementSeed := append(append(seed[:len(seed):len(seed)], byte(col)), byte(row))
			a[row][col] = newUniformSampler(elementSeed).samplePoly()
		}
	}
	return a
}

// noiseSampler draws small elements from the centered binomial distribution
// with parameter 4 out of a SHAKE-256 stream: one byte per coefficient,
// value popcount(low nibble) - popcount(high nibble).
type noiseSampler struct {
	xof sha3.ShakeHash
}

func newNoiseSampler(seed Seed) *noiseSampler {
	xof := sha3.NewShake256()
	xof.Write(seed[:])
	return &noiseSampler{xof: xof}
}

func centeredBinomial(b byte) ring.Zq {
	v := int16(bits.OnesCount8(b&0x0F)) - int16(bits.OnesCount8(b>>4))
	if v < 0 {
		v += ring.Q
	}
	return ring.NewZqPerfect(v)
}

func (s *noiseSampler) samplePoly() ring.Poly {
	var buf [ring.N]byte
	s.xof.Read(buf[:])
	coeffs := make([]ring.Zq, ring.N)
	for i, b := range buf {
		coeffs[i] = centeredBinomial(b)
	}
	return ring.NewPolyFromZq(coeffs)
}

func (s *noiseSampler) sampleVector() ring.Vector {
	var v ring.Vector
	for i := 0; i < ring.Dim; i++ {
		v[i] = s.samplePoly().NTT()
	}
	return v
}
