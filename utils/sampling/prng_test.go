package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/primelattice/kyber/utils/sampling"
)

func TestKeyedPRNG(t *testing.T) {
	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	ha, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	hb, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)

	sum0 := make([]byte, 512)
	sum1 := make([]byte, 512)

	for i := 0; i < 128; i++ {
		_, err = hb.Read(sum1)
		require.NoError(t, err)
	}

	hb.Reset()

	_, err = ha.Read(sum0)
	require.NoError(t, err)
	_, err = hb.Read(sum1)
	require.NoError(t, err)

	require.Equal(t, sum0, sum1)
}

func TestUnkeyedPRNG(t *testing.T) {
	ha, err := sampling.NewPRNG()
	require.NoError(t, err)
	hb, err := sampling.NewPRNG()
	require.NoError(t, err)

	a := make([]byte, 64)
	b := make([]byte, 64)
	_, err = ha.Read(a)
	require.NoError(t, err)
	_, err = hb.Read(b)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}
