package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZqReduction(t *testing.T) {
	require.Equal(t, Zq(0), NewZq(-3*Q))
	require.Equal(t, Zq(625), NewZq(4*Q+625-2*Q))
	require.Equal(t, Zq(Q-1), NewZq(-1))
	require.Equal(t, Zq(1), NewZq(-7680))
	require.Equal(t, Zq(5637), NewZq(-32768))
}

func TestZqAdditiveInverse(t *testing.T) {
	for x := Zq(0); x < Q; x++ {
		require.Equal(t, Zq(0), x.Add(x.Neg()))
	}
}

func TestZqMulIdentity(t *testing.T) {
	for x := Zq(0); x < Q; x++ {
		require.Equal(t, x, x.Mul(1))
	}
}

func TestZqMulAgainstReference(t *testing.T) {
	// stepped grid through the full multiplication table
	for i := uint32(0); i < Q; i += 7 {
		for j := uint32(0); j < Q; j += 13 {
			want := Zq(i * j % Q)
			require.Equal(t, want, Zq(i).Mul(Zq(j)), "%d * %d", i, j)
		}
	}
}

func TestZqDivision(t *testing.T) {
	for x := Zq(1); x < Q; x += 11 {
		for y := Zq(1); y < Q; y += 17 {
			require.Equal(t, x, x.Div(y).Mul(y), "%d / %d", x, y)
		}
	}
}

func TestZqInverse(t *testing.T) {
	for x := Zq(1); x < Q; x++ {
		require.Equal(t, Zq(1), x.Mul(x.Inv()), "inverse of %d", x)
	}
}

func TestZqPow(t *testing.T) {
	require.Equal(t, Zq(1), Zq(3).Pow(0))
	require.Equal(t, Zq(3), Zq(3).Pow(1))
	require.Equal(t, NewZq(3*3*3*3), Zq(3).Pow(4))
	// Fermat: x^(Q-1) = 1 for x != 0
	for _, x := range []Zq{1, 2, 1704, 5000, Q - 1} {
		require.Equal(t, Zq(1), x.Pow(Q-1))
	}
}

func TestZqRepresentatives(t *testing.T) {
	require.Equal(t, int16(5), Zq(5).RepresentativePos())
	require.Equal(t, int16(5), Zq(5).RepresentativePosNeg())
	require.Equal(t, int16(Q-1), Zq(Q-1).RepresentativePos())
	require.Equal(t, int16(-1), Zq(Q-1).RepresentativePosNeg())
	require.Equal(t, int16(Q/2), Zq(Q/2).RepresentativePosNeg())
	require.Equal(t, int16(-(Q / 2)), Zq(Q/2+1).RepresentativePosNeg())

	for x := Zq(0); x < Q; x += 3 {
		require.Equal(t, x, NewZq(x.RepresentativePos()))
		require.Equal(t, x, NewZq(x.RepresentativePosNeg()))
	}
}

func TestZqPerfectConstruction(t *testing.T) {
	require.Equal(t, Zq(7680), NewZqPerfect(7680))
	require.Panics(t, func() { NewZqPerfect(Q) })
	require.Panics(t, func() { NewZqPerfect(-1) })
}

func TestUnityRootTables(t *testing.T) {
	zeta := UnityRoots512[1]
	require.Equal(t, Zq(1704), zeta)

	for i := 0; i < 512; i++ {
		require.Equal(t, UnityRoots512[i], zeta.Pow(uint(i)), "root %d", i)
	}
	for i := 0; i < 256; i++ {
		require.Equal(t, Zq(1), UnityRoots512[i].Mul(InvUnityRoots512[i]), "inverse root %d", i)
	}

	// zeta is a primitive 512th root: zeta^256 = -1
	require.Equal(t, Zq(Q-1), UnityRoots512[256])
	require.Equal(t, Zq(NInv), NewZq(N).Inv())
}
