package fury

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fury-go/fury/internal/bufpool"
)

// minCapacity is the smallest backing array an owning buffer grows into
// — growing below this floor just wastes reallocations. It has no
// bearing on NewBuffer's initial allocation, which is always exactly
// the requested size.
const minCapacity = 64

// Buffer is a resizable little-endian byte store with separate reader
// and writer cursors and bounds-checked fixed-width accessors. All
// multi-byte integers and floats use little-endian byte order regardless
// of host, per the framing contract every codec built on Buffer shares.
//
// An owning Buffer (NewBuffer) grows its backing array on demand. A
// borrowed Buffer (WrapBuffer) never grows — a safe Put that would
// exceed capacity fails with ErrOutOfBounds instead.
type Buffer struct {
	data     []byte
	reader   int
	writer   int
	owns     bool
	released bool
}

// NewBuffer allocates an owning Buffer with exactly the given initial
// capacity. Negative capacities are clamped to zero. The minCapacity
// floor only applies to later growth (see grow/nextCapacity), not to
// this initial allocation — a caller asking for capacity 16 gets
// capacity 16.
func NewBuffer(initialCapacity int) *Buffer {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	data := bufpool.Get(initialCapacity)
	clear(data)
	return &Buffer{data: data, owns: true}
}

// WrapBuffer returns a borrowed Buffer over an existing byte slice. A
// borrowed buffer is never grown and is never returned to the internal
// pool — the caller retains ownership of data.
func WrapBuffer(data []byte) *Buffer {
	return &Buffer{data: data, owns: false}
}

// Capacity returns the size of the addressable region, [0, Capacity()).
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Owns reports whether this handle owns (and may grow) its backing
// region, as opposed to borrowing someone else's.
func (b *Buffer) Owns() bool {
	return b.owns
}

// ReaderIndex returns the current read cursor.
func (b *Buffer) ReaderIndex() int {
	return b.reader
}

// WriterIndex returns the current write cursor.
func (b *Buffer) WriterIndex() int {
	return b.writer
}

// SetReaderIndex moves the read cursor, enforcing 0 <= reader <= writer.
func (b *Buffer) SetReaderIndex(index int) error {
	if index < 0 || index > b.writer {
		return wrapError(OutOfBounds, "set reader index", fmt.Errorf("index %d outside [0, %d]", index, b.writer))
	}
	b.reader = index
	return nil
}

// SetWriterIndex moves the write cursor, enforcing reader <= writer <= capacity.
func (b *Buffer) SetWriterIndex(index int) error {
	if index < b.reader || index > b.Capacity() {
		return wrapError(OutOfBounds, "set writer index", fmt.Errorf("index %d outside [%d, %d]", index, b.reader, b.Capacity()))
	}
	b.writer = index
	return nil
}

// Release returns an owning Buffer's backing array to the internal pool
// and leaves the Buffer with zero capacity: a subsequent safe Put, which
// would otherwise grow it, fails with ErrProgrammerError instead of
// silently reallocating, and a subsequent safe Get fails with
// ErrOutOfBounds. Borrowed buffers are a no-op — the
// caller retains ownership and must release it themselves if needed.
func (b *Buffer) Release() {
	if !b.owns || b.released {
		return
	}
	if b.data != nil {
		bufpool.Put(b.data)
	}
	b.data = nil
	b.reader, b.writer = 0, 0
	b.released = true
}

// String returns a string view of the buffer's full backing storage,
// [0, Capacity()).
func (b *Buffer) String() string {
	return string(b.data)
}

// grow ensures the backing array is at least minCap bytes, reallocating
// (via the pool) and zeroing the newly exposed tail when the current
// array is too small. Borrowed buffers never grow. A released buffer
// never grows either — it stays unusable rather than being silently
// resurrected by a later access.
func (b *Buffer) grow(minCap int) error {
	if b.released {
		return wrapError(ProgrammerError, "grow released buffer", fmt.Errorf("buffer was released"))
	}
	if !b.owns {
		return wrapError(OutOfBounds, "grow borrowed buffer", fmt.Errorf("requested capacity %d exceeds %d", minCap, b.Capacity()))
	}
	if minCap <= b.Capacity() {
		return nil
	}
	newCap, err := nextCapacity(minCap)
	if err != nil {
		return err
	}
	newData := bufpool.Get(newCap)
	oldLen := copy(newData, b.data)
	clear(newData[oldLen:])
	if b.data != nil {
		bufpool.Put(b.data)
	}
	b.data = newData
	return nil
}

// nextCapacity rounds min up to the next power of two, floored at
// minCapacity — the common amortized-growth idiom (overshoot rather than
// reallocate every byte).
func nextCapacity(min int) (int, error) {
	cap := minCapacity
	for cap < min {
		if err := checkDoublingOverflow(cap); err != nil {
			return 0, err
		}
		cap *= 2
	}
	return cap, nil
}

// boundsCheck validates a fixed-width access at offset..offset+width
// against the buffer, growing it first when the buffer owns its region.
func (b *Buffer) boundsCheck(offset, width int, grow bool) error {
	if offset < 0 {
		return wrapError(OutOfBounds, "access", fmt.Errorf("negative offset %d", offset))
	}
	end := offset + width
	if end <= b.Capacity() {
		return nil
	}
	if !grow {
		return wrapError(OutOfBounds, "access", fmt.Errorf("range [%d, %d) exceeds capacity %d", offset, end, b.Capacity()))
	}
	return b.grow(end)
}

func (b *Buffer) putWidth(offset, width int, v uint64) error {
	if err := b.boundsCheck(offset, width, true); err != nil {
		return err
	}
	dst := b.data[offset : offset+width]
	switch width {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(dst, v)
	}
	return nil
}

func (b *Buffer) getWidth(offset, width int) (uint64, error) {
	if err := b.boundsCheck(offset, width, false); err != nil {
		return 0, err
	}
	src := b.data[offset : offset+width]
	switch width {
	case 1:
		return uint64(src[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(src)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(src)), nil
	case 8:
		return binary.LittleEndian.Uint64(src), nil
	}
	return 0, nil
}

// PutU8 writes an unsigned byte at offset, growing an owning buffer if
// needed.
func (b *Buffer) PutU8(offset int, v uint8) error { return b.putWidth(offset, 1, uint64(v)) }

// GetU8 reads an unsigned byte at offset.
func (b *Buffer) GetU8(offset int) (uint8, error) {
	v, err := b.getWidth(offset, 1)
	return uint8(v), err
}

// PutI8 writes a signed byte at offset.
func (b *Buffer) PutI8(offset int, v int8) error { return b.putWidth(offset, 1, uint64(uint8(v))) }

// GetI8 reads a signed byte at offset.
func (b *Buffer) GetI8(offset int) (int8, error) {
	v, err := b.getWidth(offset, 1)
	return int8(uint8(v)), err
}

// PutU16 writes a little-endian uint16 at offset.
func (b *Buffer) PutU16(offset int, v uint16) error { return b.putWidth(offset, 2, uint64(v)) }

// GetU16 reads a little-endian uint16 at offset.
func (b *Buffer) GetU16(offset int) (uint16, error) {
	v, err := b.getWidth(offset, 2)
	return uint16(v), err
}

// PutI16 writes a little-endian int16 at offset.
func (b *Buffer) PutI16(offset int, v int16) error { return b.putWidth(offset, 2, uint64(uint16(v))) }

// GetI16 reads a little-endian int16 at offset.
func (b *Buffer) GetI16(offset int) (int16, error) {
	v, err := b.getWidth(offset, 2)
	return int16(uint16(v)), err
}

// PutU32 writes a little-endian uint32 at offset.
func (b *Buffer) PutU32(offset int, v uint32) error { return b.putWidth(offset, 4, uint64(v)) }

// GetU32 reads a little-endian uint32 at offset.
func (b *Buffer) GetU32(offset int) (uint32, error) {
	v, err := b.getWidth(offset, 4)
	return uint32(v), err
}

// PutI32 writes a little-endian int32 at offset.
func (b *Buffer) PutI32(offset int, v int32) error { return b.putWidth(offset, 4, uint64(uint32(v))) }

// GetI32 reads a little-endian int32 at offset.
func (b *Buffer) GetI32(offset int) (int32, error) {
	v, err := b.getWidth(offset, 4)
	return int32(uint32(v)), err
}

// PutU64 writes a little-endian uint64 at offset.
func (b *Buffer) PutU64(offset int, v uint64) error { return b.putWidth(offset, 8, v) }

// GetU64 reads a little-endian uint64 at offset.
func (b *Buffer) GetU64(offset int) (uint64, error) {
	return b.getWidth(offset, 8)
}

// PutI64 writes a little-endian int64 at offset.
func (b *Buffer) PutI64(offset int, v int64) error { return b.putWidth(offset, 8, uint64(v)) }

// GetI64 reads a little-endian int64 at offset.
func (b *Buffer) GetI64(offset int) (int64, error) {
	v, err := b.getWidth(offset, 8)
	return int64(v), err
}

// PutF32 writes a little-endian IEEE-754 float32 at offset, sharing the
// bit layout of PutU32 — storing a float and reading it back is
// bit-exact, including NaN payloads.
func (b *Buffer) PutF32(offset int, v float32) error {
	return b.putWidth(offset, 4, uint64(math.Float32bits(v)))
}

// GetF32 reads a little-endian IEEE-754 float32 at offset.
func (b *Buffer) GetF32(offset int) (float32, error) {
	v, err := b.getWidth(offset, 4)
	return math.Float32frombits(uint32(v)), err
}

// PutF64 writes a little-endian IEEE-754 float64 at offset.
func (b *Buffer) PutF64(offset int, v float64) error {
	return b.putWidth(offset, 8, math.Float64bits(v))
}

// GetF64 reads a little-endian IEEE-754 float64 at offset.
func (b *Buffer) GetF64(offset int) (float64, error) {
	v, err := b.getWidth(offset, 8)
	return math.Float64frombits(v), err
}
