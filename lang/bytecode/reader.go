package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader decodes little-endian primitives from a fixed byte buffer,
// advancing an internal cursor. Every method fails (returning a non-nil
// error) rather than reading past the end of the buffer; on failure the
// cursor is left unspecified and the caller must abort.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the given starting offset.
func NewReader(buf []byte, start int) *Reader {
	return &Reader{buf: buf, pos: start}
}

// ErrShortBuffer is wrapped into every bounds-violation error returned by a
// Reader method.
var ErrShortBuffer = fmt.Errorf("unexpected end of artifact")

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining in the buffer.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, r.pos, len(r.buf)-r.pos)
	}
	return nil
}

// ReadU8 reads one byte and advances the cursor.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadU32LE reads a little-endian uint32 and advances the cursor.
func (r *Reader) ReadU32LE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32LE reads a little-endian two's-complement int32 and advances the
// cursor.
func (r *Reader) ReadI32LE() (int32, error) {
	v, err := r.ReadU32LE()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadF64LE reads a little-endian IEEE-754 double and advances the cursor.
func (r *Reader) ReadF64LE() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// ReadBytes reads n raw bytes into a freshly allocated slice and advances
// the cursor. The returned slice is owned by the caller.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative length %d", n)
	}
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadString reads a u32 length prefix followed by that many raw bytes, and
// returns them as a Go string (no wire-side terminator is assumed).
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU32LE()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
