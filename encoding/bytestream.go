package encoding

import (
	"fmt"
	"io"
)

// ByteStreamWriter packs variable-width fields least significant bit first
// and hands completed bytes to the underlying writer. It is the 8-bit-aligned
// counterpart of BitWriter, used when a caller exchanges raw byte blobs.
type ByteStreamWriter struct {
	w io.Writer
	q littleEndianBitQueue
}

// NewByteStreamWriter returns a ByteStreamWriter emitting to w.
func NewByteStreamWriter(w io.Writer) *ByteStreamWriter {
	return &ByteStreamWriter{w: w}
}

// WriteBits appends the n least significant bits of v, for n <= 16.
func (sw *ByteStreamWriter) WriteBits(v uint16, n int) error {
	if n < 0 || n > maxFieldBits {
		return fmt.Errorf("encoding: invalid field width %d", n)
	}
	sw.q.writeBits(n, v)
	var out [4]byte
	m := 0
	for sw.q.len() >= 8 {
		out[m] = byte(sw.q.readBits(8))
		m++
	}
	if m == 0 {
		return nil
	}
	if _, err := sw.w.Write(out[:m]); err != nil {
		return fmt.Errorf("encoding: cannot write: %w", err)
	}
	return nil
}

// WriteByte appends a full byte.
func (sw *ByteStreamWriter) WriteByte(b byte) error {
	return sw.WriteBits(uint16(b), 8)
}

// WriteBytes appends each byte of p in order.
func (sw *ByteStreamWriter) WriteBytes(p []byte) error {
	for _, b := range p {
		if err := sw.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// ByteStreamReader unpacks little-endian variable-width fields from a byte
// stream.
type ByteStreamReader struct {
	r io.Reader
	q littleEndianBitQueue
}

// NewByteStreamReader returns a ByteStreamReader consuming r.
func NewByteStreamReader(r io.Reader) *ByteStreamReader {
	return &ByteStreamReader{r: r}
}

// ReadBits dequeues the next n bits, for n <= 16. It returns
// ErrUnexpectedEOF if the underlying stream ends first.
func (sr *ByteStreamReader) ReadBits(n int) (uint16, error) {
	if n < 0 || n > maxFieldBits {
		return 0, fmt.Errorf("encoding: invalid field width %d", n)
	}
	var in [1]byte
	for sr.q.len() < n {
		if _, err := io.ReadFull(sr.r, in[:]); err != nil {
			return 0, ErrUnexpectedEOF
		}
		sr.q.writeBits(8, uint16(in[0]))
	}
	return sr.q.readBits(n), nil
}

// ReadByte dequeues a full byte.
func (sr *ByteStreamReader) ReadByte() (byte, error) {
	v, err := sr.ReadBits(8)
	return byte(v), err
}

// ReadBytes fills p with consecutive bytes from the stream.
func (sr *ByteStreamReader) ReadBytes(p []byte) error {
	for i := range p {
		b, err := sr.ReadByte()
		if err != nil {
			return err
		}
		p[i] = b
	}
	return nil
}
