package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianBitQueue(t *testing.T) {
	var q bigEndianBitQueue
	q.writeBits(6, 63)
	q.writeBits(6, 3<<4)
	require.Equal(t, uint16(255), q.readBits(8))
	require.Equal(t, 4, q.len())
}

func TestLittleEndianBitQueue(t *testing.T) {
	var q littleEndianBitQueue
	q.writeBits(3, 0b110)
	q.writeBits(5, 0b01110)
	require.Equal(t, uint16(0b1110110), q.readBits(7))
	require.Equal(t, uint16(0b0), q.readBits(1))
}

func TestBitWriterReaderRoundTrip(t *testing.T) {
	fields := []struct {
		v uint16
		n int
	}{
		{0x1FFF, 13}, {0, 13}, {0x7FF, 11}, {5, 3}, {1, 1}, {0xABC, 12}, {0xFFFF, 16},
	}

	buf := new(bytes.Buffer)
	bw := NewBitWriter(buf)
	for _, f := range fields {
		require.NoError(t, bw.WriteBits(f.v, f.n))
	}
	require.NoError(t, bw.Flush())

	br := NewBitReader(buf)
	for _, f := range fields {
		v, err := br.ReadBits(f.n)
		require.NoError(t, err)
		require.Equal(t, f.v, v)
	}
}

func TestBitReaderShortInput(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xAB}))
	_, err := br.ReadBits(13)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestByteStreamRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	sw := NewByteStreamWriter(buf)
	require.NoError(t, sw.WriteBits(0x15A3, 13))
	require.NoError(t, sw.WriteBits(0x3, 3))
	require.NoError(t, sw.WriteBytes([]byte{0x41, 0x61}))

	sr := NewByteStreamReader(buf)
	v, err := sr.ReadBits(13)
	require.NoError(t, err)
	require.Equal(t, uint16(0x15A3), v)
	v, err = sr.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint16(0x3), v)
	var p [2]byte
	require.NoError(t, sr.ReadBytes(p[:]))
	require.Equal(t, [2]byte{0x41, 0x61}, p)
}

func TestBase64BytePass(t *testing.T) {
	// The canonical byte-pass scenario: 0x41, 0x61, 0x03, 0xFF.
	in := []byte{0x41, 0x61, 0x03, 0xFF}
	s := Base64EncodeToString(in)
	require.Equal(t, 0, len(s)%4)

	out, err := Base64DecodeString(s)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestBase64AgainstKnownText(t *testing.T) {
	require.Equal(t, "TWFu", Base64EncodeToString([]byte("Man")))
	require.Equal(t, "TWE=", Base64EncodeToString([]byte("Ma")))
	require.Equal(t, "TQ==", Base64EncodeToString([]byte("M")))

	out, err := Base64DecodeString("TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), out)
}

func TestBase64InvalidCharacter(t *testing.T) {
	_, err := Base64DecodeString("TW#u")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestBase64DecoderBitFields(t *testing.T) {
	e := NewBase64Encoder()
	require.NoError(t, e.WriteBits(0x155, 11))
	require.NoError(t, e.WriteBits(0x5, 3))
	require.NoError(t, e.WriteBits(0x41, 8))
	s := e.String()

	d := NewBase64Decoder(s)
	v, err := d.ReadBits(11)
	require.NoError(t, err)
	require.Equal(t, uint16(0x155), v)
	v, err = d.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint16(0x5), v)
	v, err = d.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint16(0x41), v)
}
