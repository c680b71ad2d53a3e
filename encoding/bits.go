package encoding

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedEOF is returned when a decoder runs out of input before all
// requested fields have been read.
var ErrUnexpectedEOF = errors.New("encoding: unexpected end of input")

// maxFieldBits is the widest field the bit codecs accept in a single call.
const maxFieldBits = 16

// BitWriter packs variable-width fields into a byte stream, most significant
// bit first. Fields are written back-to-back with no alignment; Flush pads
// the final partial byte with zero bits.
type BitWriter struct {
	w io.Writer
	q bigEndianBitQueue
}

// NewBitWriter returns a BitWriter emitting to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBits appends the n least significant bits of v, for n <= 16.
func (bw *BitWriter) WriteBits(v uint16, n int) error {
	if n < 0 || n > maxFieldBits {
		return fmt.Errorf("encoding: invalid field width %d", n)
	}
	bw.q.writeBits(n, v)
	return bw.drain()
}

// WriteByte appends a full byte.
func (bw *BitWriter) WriteByte(b byte) error {
	return bw.WriteBits(uint16(b), 8)
}

// WriteBytes appends each byte of p in order.
func (bw *BitWriter) WriteBytes(p []byte) error {
	for _, b := range p {
		if err := bw.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes out any buffered partial byte, padding with zero bits.
func (bw *BitWriter) Flush() error {
	if bw.q.len() == 0 {
		return nil
	}
	bw.q.writeBits(8-bw.q.len(), 0)
	return bw.drain()
}

func (bw *BitWriter) drain() error {
	var out [4]byte
	n := 0
	for bw.q.len() >= 8 {
		out[n] = byte(bw.q.readBits(8))
		n++
	}
	if n == 0 {
		return nil
	}
	if _, err := bw.w.Write(out[:n]); err != nil {
		return fmt.Errorf("encoding: cannot write: %w", err)
	}
	return nil
}

// BitReader unpacks variable-width big-endian fields from a byte stream.
type BitReader struct {
	r io.Reader
	q bigEndianBitQueue
}

// NewBitReader returns a BitReader consuming r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: r}
}

// ReadBits dequeues the next n bits, for n <= 16. It returns
// ErrUnexpectedEOF if the underlying stream ends first.
func (br *BitReader) ReadBits(n int) (uint16, error) {
	if n < 0 || n > maxFieldBits {
		return 0, fmt.Errorf("encoding: invalid field width %d", n)
	}
	var in [1]byte
	for br.q.len() < n {
		if _, err := io.ReadFull(br.r, in[:]); err != nil {
			return 0, ErrUnexpectedEOF
		}
		br.q.writeBits(8, uint16(in[0]))
	}
	return br.q.readBits(n), nil
}

// ReadByte dequeues a full byte.
func (br *BitReader) ReadByte() (byte, error) {
	v, err := br.ReadBits(8)
	return byte(v), err
}

// ReadBytes fills p with consecutive bytes from the stream.
func (br *BitReader) ReadBytes(p []byte) error {
	for i := range p {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		p[i] = b
	}
	return nil
}
