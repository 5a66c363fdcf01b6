package fury

import "fmt"

// maxVarint32Bytes is the hard cap on bytes consumed decoding a 32-bit
// varint: ceil(32/7) = 5.
const maxVarint32Bytes = 5

// PutPositiveVarint32 writes value as a canonical positive varint32 at
// offset: 7 payload bits per byte, high bit set while more bytes follow.
// It returns the number of bytes written, between 1 and 5.
//
// Each byte is written through PutU8, so an owning buffer grows exactly
// as a sequence of single-byte writes would — the codec has no bulk
// fast path distinct from the fixed-width accessors it's built on.
func (b *Buffer) PutPositiveVarint32(offset int, value uint32) (int, error) {
	if offset < 0 {
		return 0, wrapError(OutOfBounds, "put varint32", fmt.Errorf("negative offset %d", offset))
	}

	n := 0
	v := value
	for {
		payload := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			payload |= 0x80
		}
		if err := b.PutU8(offset+n, payload); err != nil {
			return n, err
		}
		n++
		if v == 0 {
			return n, nil
		}
	}
}

// GetPositiveVarint32 reads a varint32 at offset, returning the decoded
// value and the number of bytes consumed. Decoding stops at the first
// byte with a clear continuation bit, or fails with ErrVarintMalformed
// after 5 bytes (the 32-bit hard cap) or a truncated buffer.
func (b *Buffer) GetPositiveVarint32(offset int) (uint32, int, error) {
	if offset < 0 {
		return 0, 0, wrapError(OutOfBounds, "get varint32", fmt.Errorf("negative offset %d", offset))
	}

	var value uint32
	var shift uint
	for n := 0; ; n++ {
		if n >= maxVarint32Bytes {
			return 0, n, wrapError(VarintMalformed, "get varint32", fmt.Errorf("no terminating byte within %d bytes", maxVarint32Bytes))
		}

		by, err := b.GetU8(offset + n)
		if err != nil {
			return 0, n, wrapError(VarintMalformed, "get varint32", err)
		}

		if n == maxVarint32Bytes-1 && by&0x70 != 0 {
			return 0, n + 1, wrapError(VarintMalformed, "get varint32", fmt.Errorf("5th byte payload %#x overflows 32 bits", by))
		}

		value |= uint32(by&0x7f) << shift
		if by&0x80 == 0 {
			return value, n + 1, nil
		}
		shift += 7
	}
}
