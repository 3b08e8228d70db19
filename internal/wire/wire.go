// Package wire holds the big-endian scalar helpers shared by the
// header, tlv, and ie codecs, so each layer doesn't reimplement
// 24-bit/48-bit reads by hand.
package wire

import "encoding/binary"

// PutUint24 writes the low 24 bits of v into b[0:3], big-endian.
func PutUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// Uint24 reads a 24-bit big-endian unsigned integer from b[0:3].
func Uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PutUint48 writes the low 48 bits of v into b[0:6], big-endian.
func PutUint48(b []byte, v uint64) {
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

// Uint48 reads a 48-bit big-endian unsigned integer from b[0:6].
func Uint48(b []byte) uint64 {
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// BE is re-exported for call sites that only need the standard 16/32/64
// bit helpers and would otherwise import encoding/binary directly.
var BE = binary.BigEndian
