package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func vec8FromInt16(values ...int16) Vec8 {
	return NewVec8(values)
}

func TestVec8Construction(t *testing.T) {
	v := vec8FromInt16(-3*Q, 4*Q+625, 1, 0, -7680, 2*Q+3000, -1, 2*Q+6000)
	w := vec8FromInt16(0, 625, 1, 0, 1, 3000, 7680, 6000)
	require.True(t, v.Equal(w))
}

func TestVec8AddSub(t *testing.T) {
	v := vec8FromInt16(3567, 132, 6113, 5432, -314, 543, 0, -321)
	w := vec8FromInt16(-5609, 12, 2386, -2728, -64, 12, -8000, -12)
	sum := vec8FromInt16(-2042, 144, 818, 2704, -378, 555, -319, -333)
	difference := vec8FromInt16(1495, 120, 3727, 479, -250, 531, 319, -309)

	v = v.Add(w)
	require.True(t, sum.Equal(v))
	v = v.Sub(w)
	v = v.Sub(w)
	require.True(t, difference.Equal(v))
}

func TestVec8Mul(t *testing.T) {
	v := vec8FromInt16(3567, 132, 6113, 5432, -314, 543, 0, -321)
	w := vec8FromInt16(-5609, 12, 2386, -2728, -64, 12, -8000, -12)
	expected := vec8FromInt16(-5979, 1584, 7080, -1847, 4734, 6516, 0, 3852)
	require.True(t, expected.Equal(v.Mul(w)))
}

func TestVec8ScalarOps(t *testing.T) {
	v := vec8FromInt16(1, 2, 3, 4, 5, 6, 7, 7680)
	x := NewZq(653)

	scaled := v.MulZq(x)
	for i, lane := range v.Lanes() {
		require.Equal(t, lane.Mul(x), scaled.Lanes()[i])
	}
	require.True(t, v.Equal(scaled.DivZq(x)))
}

func TestVec8Neg(t *testing.T) {
	v := vec8FromInt16(0, 1, 2, 3840, 3841, 7679, 7680, 5)
	n := v.Neg()
	for i, lane := range v.Lanes() {
		require.Equal(t, lane.Neg(), n.Lanes()[i])
	}
	require.True(t, v.Add(n).Equal(ZeroVec8()))
}

func TestVec8BroadcastAndSum(t *testing.T) {
	v := BroadcastVec8(NewZq(100))
	require.Equal(t, int32(800), v.Sum())
	for _, lane := range v.Lanes() {
		require.Equal(t, Zq(100), lane)
	}
}

// The reduction must return p mod Q for every product of two reduced values.
// The low range is checked densely, the full range with a stride.
func TestReduceProductExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive reduction check skipped in short mode")
	}
	const max = (Q - 1) * (Q - 1)
	for p := int32(0); p <= max/8; p++ {
		if got := reduceProduct(p); got != p%Q {
			t.Fatalf("reduceProduct(%d) = %d, want %d", p, got, p%Q)
		}
	}
	for p := int64(0); p <= max; p += 31 {
		if got := reduceProduct(int32(p)); int64(got) != p%Q {
			t.Fatalf("reduceProduct(%d) = %d, want %d", p, got, p%Q)
		}
	}
	for p := int64(0); p >= -max; p -= 37 {
		want := int32(((p % Q) + Q) % Q)
		if got := reduceProduct(int32(p)); got != want {
			t.Fatalf("reduceProduct(%d) = %d, want %d", p, got, want)
		}
	}
}

func TestTransposeLanes(t *testing.T) {
	var in [vecCount]Vec8
	for i := 0; i < N; i++ {
		in[i/vecSize][i%vecSize] = int32(i)
	}
	out := transposeLanes(&in)
	// flat position r*32+c of the output holds flat position c*8+r of the
	// input: the 32x8 lane matrix transposed
	for r := 0; r < vecSize; r++ {
		for c := 0; c < vecCount; c++ {
			f := r*vecCount + c
			require.Equal(t, int32(c*vecSize+r), out[f/vecSize][f%vecSize])
		}
	}
}
