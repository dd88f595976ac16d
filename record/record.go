// Package record provides a bounds-checked view over a raw byte buffer
// holding fixed-width elements.
//
// All engine algorithms address elements exclusively through Buffer, so a
// validated Wrap guarantees no access outside [0, count*width). Multi-byte
// values are little-endian; the Uint/Int/PutUint helpers read and write
// elements of any width from 1 to 8 bytes.
package record

import "errors"

var (
	// ErrInvalidWidth is returned by Wrap for a non-positive element width.
	ErrInvalidWidth = errors.New("record: invalid element width")

	// ErrInvalidCount is returned by Wrap for a negative element count.
	ErrInvalidCount = errors.New("record: invalid element count")

	// ErrShortBuffer is returned by Wrap when the byte slice cannot hold
	// count elements of the given width.
	ErrShortBuffer = errors.New("record: buffer shorter than count*width")
)

// Buffer is a view of count fixed-width elements over a caller-owned byte
// slice. The zero value is an empty buffer.
type Buffer struct {
	data  []byte
	count int
	width int
}

// Wrap validates and wraps data as count elements of width bytes each.
// The underlying slice is shared, not copied; mutating the Buffer mutates
// the caller's bytes.
func Wrap(data []byte, count, width int) (Buffer, error) {
	if width <= 0 {
		return Buffer{}, ErrInvalidWidth
	}
	if count < 0 {
		return Buffer{}, ErrInvalidCount
	}
	if len(data) < count*width {
		return Buffer{}, ErrShortBuffer
	}
	return Buffer{data: data[:count*width], count: count, width: width}, nil
}

// Len returns the element count.
func (b Buffer) Len() int { return b.count }

// Width returns the element width in bytes.
func (b Buffer) Width() int { return b.width }

// At returns the i-th element as a sub-slice of the underlying buffer.
// Writing through the returned slice mutates the buffer.
func (b Buffer) At(i int) []byte {
	if i < 0 || i >= b.count {
		panic("record: element index out of range")
	}
	off := i * b.width
	return b.data[off : off+b.width : off+b.width]
}

// Set overwrites the i-th element with rec, which must be exactly one
// element wide.
func (b Buffer) Set(i int, rec []byte) {
	copy(b.At(i), rec[:b.width])
}

// Swap exchanges elements i and j byte by byte.
func (b Buffer) Swap(i, j int) {
	if i == j {
		return
	}
	x, y := b.At(i), b.At(j)
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}
}

// Reverse reverses the element order in place.
func (b Buffer) Reverse() {
	for i, j := 0, b.count-1; i < j; i, j = i+1, j-1 {
		b.Swap(i, j)
	}
}

// Slice returns a sub-buffer covering elements [lo, hi).
func (b Buffer) Slice(lo, hi int) Buffer {
	if lo < 0 || hi < lo || hi > b.count {
		panic("record: slice bounds out of range")
	}
	return Buffer{
		data:  b.data[lo*b.width : hi*b.width],
		count: hi - lo,
		width: b.width,
	}
}

// Uint reads rec as a little-endian unsigned integer, zero-extended.
// len(rec) must be between 1 and 8.
func Uint(rec []byte) uint64 {
	var v uint64
	for i := len(rec) - 1; i >= 0; i-- {
		v = v<<8 | uint64(rec[i])
	}
	return v
}

// Int reads rec as a little-endian signed integer, sign-extended.
func Int(rec []byte) int64 {
	v := Uint(rec)
	if bits := uint(len(rec)) * 8; bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

// PutUint writes v into rec little-endian, truncated to len(rec) bytes.
func PutUint(rec []byte, v uint64) {
	for i := range rec {
		rec[i] = byte(v)
		v >>= 8
	}
}
