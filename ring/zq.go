// Package ring implements arithmetic in Zq = Z/7681Z, in the quotient ring
// Rq = Zq[X]/(X^256+1) and in the rank-3 module over Rq.
//
// Rq elements exist in two representations: Poly holds the 256 coefficients,
// NTTPoly holds the evaluations at the primitive 512th roots of unity.
// Multiplication is only defined on NTTPoly, where it is pointwise; the two
// types are linked by the explicit NTT and InvNTT conversions.
package ring

// Q is the prime modulus. 512 divides Q-1, so Zq contains primitive 512th
// roots of unity and X^256+1 splits into linear factors over Zq.
const Q = 7681

// N is the degree of the cyclotomic polynomial X^N + 1.
const N = 256

// NInv is the inverse of N modulo Q, used to scale the inverse NTT.
const NInv = 7651

// Zq is a residue class modulo Q, stored as its canonical representative
// in 0..Q-1.
type Zq uint32

// NewZq returns the residue class of value.
func NewZq(value int16) Zq {
	// adding 5*Q makes any int16 positive without overflowing int32
	return Zq((int32(value) + 5*Q) % Q)
}

// NewZqPerfect wraps a value the caller guarantees to be in 0..Q-1.
func NewZqPerfect(value int16) Zq {
	if value < 0 || value >= Q {
		panic("ring: value out of range for perfect construction")
	}
	return Zq(value)
}

// Add returns x + y.
func (x Zq) Add(y Zq) Zq {
	s := x + y
	if s >= Q {
		s -= Q
	}
	return s
}

// Sub returns x - y.
func (x Zq) Sub(y Zq) Zq {
	s := x + Q - y
	if s >= Q {
		s -= Q
	}
	return s
}

// Neg returns -x.
func (x Zq) Neg() Zq {
	if x == 0 {
		return 0
	}
	return Q - x
}

// Mul returns x * y.
func (x Zq) Mul(y Zq) Zq {
	return x * y % Q
}

// Inv returns the multiplicative inverse of x. x must be nonzero.
func (x Zq) Inv() Zq {
	if x == 0 {
		panic("ring: inverse of zero")
	}
	_, t := extendedEuclideanModQ(Q, uint32(x))
	return Zq(t)
}

// Div returns x / y. y must be nonzero.
func (x Zq) Div(y Zq) Zq {
	return x.Mul(y.Inv())
}

// Pow raises x to the power of a natural number by square-and-multiply.
func (x Zq) Pow(e uint) Zq {
	power := x
	result := Zq(1)
	for e != 0 {
		if e&1 == 1 {
			result = result.Mul(power)
		}
		power = power.Mul(power)
		e >>= 1
	}
	return result
}

// RepresentativePos returns the canonical representative in 0..Q-1.
func (x Zq) RepresentativePos() int16 {
	return int16(x)
}

// RepresentativePosNeg returns the signed representative of least absolute
// value, in -(Q-1)/2..(Q-1)/2.
func (x Zq) RepresentativePosNeg() int16 {
	if x > Q/2 {
		return int16(x) - Q
	}
	return int16(x)
}

// extendedEuclideanModQ returns (s, t) with s*fst + t*snd = gcd(fst, snd)
// mod Q. All coefficient arithmetic happens in Zq.
func extendedEuclideanModQ(fst, snd uint32) (uint32, uint32) {
	a, b := fst, snd
	sa, ta := uint32(1), uint32(0)
	sb, tb := uint32(0), uint32(1)

	// invariant: a = sa*fst + ta*snd mod Q, b = sb*fst + tb*snd mod Q
	for b != 0 {
		ta = (ta + Q - a/b*tb%Q) % Q
		sa = (sa + Q - a/b*sb%Q) % Q
		a, b = b, a%b
		sa, sb = sb, sa
		ta, tb = tb, ta
	}
	return sa, ta
}
