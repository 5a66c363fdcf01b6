package fury

import (
	"encoding/binary"
	"math"
)

// The Unsafe* accessors skip the bounds check (and, for Put, the growth
// check) that the safe accessors perform. They exist for the host code
// generator's hot loops, which already know the access is in range from
// an earlier reservation and want to avoid paying for the check twice.
// Calling them out of range is a contract violation — on a Go slice this
// panics rather than silently corrupting memory, but no error is
// returned and no bounds are enforced beforehand.

// UnsafePutU8 writes an unsigned byte at offset without a bounds check.
func (b *Buffer) UnsafePutU8(offset int, v uint8) { b.data[offset] = v }

// UnsafeGetU8 reads an unsigned byte at offset without a bounds check.
func (b *Buffer) UnsafeGetU8(offset int) uint8 { return b.data[offset] }

// UnsafePutI8 writes a signed byte at offset without a bounds check.
func (b *Buffer) UnsafePutI8(offset int, v int8) { b.data[offset] = uint8(v) }

// UnsafeGetI8 reads a signed byte at offset without a bounds check.
func (b *Buffer) UnsafeGetI8(offset int) int8 { return int8(b.data[offset]) }

// UnsafePutU16 writes a little-endian uint16 at offset without a bounds check.
func (b *Buffer) UnsafePutU16(offset int, v uint16) {
	binary.LittleEndian.PutUint16(b.data[offset:offset+2], v)
}

// UnsafeGetU16 reads a little-endian uint16 at offset without a bounds check.
func (b *Buffer) UnsafeGetU16(offset int) uint16 {
	return binary.LittleEndian.Uint16(b.data[offset : offset+2])
}

// UnsafePutI16 writes a little-endian int16 at offset without a bounds check.
func (b *Buffer) UnsafePutI16(offset int, v int16) {
	binary.LittleEndian.PutUint16(b.data[offset:offset+2], uint16(v))
}

// UnsafeGetI16 reads a little-endian int16 at offset without a bounds check.
func (b *Buffer) UnsafeGetI16(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(b.data[offset : offset+2]))
}

// UnsafePutU32 writes a little-endian uint32 at offset without a bounds check.
func (b *Buffer) UnsafePutU32(offset int, v uint32) {
	binary.LittleEndian.PutUint32(b.data[offset:offset+4], v)
}

// UnsafeGetU32 reads a little-endian uint32 at offset without a bounds check.
func (b *Buffer) UnsafeGetU32(offset int) uint32 {
	return binary.LittleEndian.Uint32(b.data[offset : offset+4])
}

// UnsafePutI32 writes a little-endian int32 at offset without a bounds check.
func (b *Buffer) UnsafePutI32(offset int, v int32) {
	binary.LittleEndian.PutUint32(b.data[offset:offset+4], uint32(v))
}

// UnsafeGetI32 reads a little-endian int32 at offset without a bounds check.
func (b *Buffer) UnsafeGetI32(offset int) int32 {
	return int32(binary.LittleEndian.Uint32(b.data[offset : offset+4]))
}

// UnsafePutU64 writes a little-endian uint64 at offset without a bounds check.
func (b *Buffer) UnsafePutU64(offset int, v uint64) {
	binary.LittleEndian.PutUint64(b.data[offset:offset+8], v)
}

// UnsafeGetU64 reads a little-endian uint64 at offset without a bounds check.
func (b *Buffer) UnsafeGetU64(offset int) uint64 {
	return binary.LittleEndian.Uint64(b.data[offset : offset+8])
}

// UnsafePutI64 writes a little-endian int64 at offset without a bounds check.
func (b *Buffer) UnsafePutI64(offset int, v int64) {
	binary.LittleEndian.PutUint64(b.data[offset:offset+8], uint64(v))
}

// UnsafeGetI64 reads a little-endian int64 at offset without a bounds check.
func (b *Buffer) UnsafeGetI64(offset int) int64 {
	return int64(binary.LittleEndian.Uint64(b.data[offset : offset+8]))
}

// UnsafePutF32 writes a little-endian float32 at offset without a bounds check.
func (b *Buffer) UnsafePutF32(offset int, v float32) {
	binary.LittleEndian.PutUint32(b.data[offset:offset+4], math.Float32bits(v))
}

// UnsafeGetF32 reads a little-endian float32 at offset without a bounds check.
func (b *Buffer) UnsafeGetF32(offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.data[offset : offset+4]))
}

// UnsafePutF64 writes a little-endian float64 at offset without a bounds check.
func (b *Buffer) UnsafePutF64(offset int, v float64) {
	binary.LittleEndian.PutUint64(b.data[offset:offset+8], math.Float64bits(v))
}

// UnsafeGetF64 reads a little-endian float64 at offset without a bounds check.
func (b *Buffer) UnsafeGetF64(offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b.data[offset : offset+8]))
}
