package binary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNegativeOffset is returned when seeking before the start of the source.
var ErrNegativeOffset = errors.New("seek: negative offset")

// Reader wraps an io.ReadSeeker with position tracking and the fixed-width
// little-endian reads used by COFF. Reads go through a buffer that is dropped
// whenever Seek leaves the buffered window.
type Reader struct {
	src io.ReadSeeker
	buf *bufio.Reader
	pos int64
}

// NewReader creates a Reader positioned at the current offset of src,
// which is assumed to be 0.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src, buf: bufio.NewReader(src)}
}

// Position returns the current absolute byte position.
func (r *Reader) Position() int64 {
	return r.pos
}

// Seek moves to the absolute offset off. Seeking past the end is allowed;
// the next read then fails with io.EOF.
func (r *Reader) Seek(off int64) error {
	if off < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOffset, off)
	}
	if delta := off - r.pos; delta >= 0 && delta <= int64(r.buf.Buffered()) {
		n, err := r.buf.Discard(int(delta))
		r.pos += int64(n)
		return err
	}
	if _, err := r.src.Seek(off, io.SeekStart); err != nil {
		return err
	}
	r.buf.Reset(r.src)
	r.pos = off
	return nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes. It returns io.EOF if nothing could be read
// and io.ErrUnexpectedEOF if the source ended part way.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	read, err := io.ReadFull(r.buf, out)
	r.pos += int64(read)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadPaddedString reads a name field of at most limit bytes. It stops at the
// first null byte or once limit bytes have been collected, whichever comes
// first. The null byte is consumed but never returned, and no byte beyond
// limit is read.
func (r *Reader) ReadPaddedString(limit int) ([]byte, error) {
	out := make([]byte, 0, limit)
	for len(out) < limit {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return out, nil
}

// ReadCString reads bytes up to the next null byte with no length limit.
// The null byte is consumed but not returned. Running out of input before
// the terminator is an error.
func (r *Reader) ReadCString() ([]byte, error) {
	line, err := r.buf.ReadSlice(0)
	if err == nil {
		r.pos += int64(len(line))
		return append([]byte(nil), line[:len(line)-1]...), nil
	}

	// Terminator not within the buffered window; fall back to accumulating.
	var out []byte
	for {
		r.pos += int64(len(line))
		out = append(out, line...)
		if err != bufio.ErrBufferFull {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		line, err = r.buf.ReadSlice(0)
		if err == nil {
			r.pos += int64(len(line))
			out = append(out, line[:len(line)-1]...)
			return out, nil
		}
	}
}
