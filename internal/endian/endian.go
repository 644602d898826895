// Package endian provides the big-endian primitives the rest of the reassembler
// uses to read and write 680x0 words and longwords.
package endian

import "encoding/binary"

// Word reads a big-endian 16-bit word from b at offset off.
func Word(b []byte, off uint32) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// Long reads a big-endian 32-bit longword from b at offset off.
func Long(b []byte, off uint32) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// PutWord writes a big-endian 16-bit word into b at offset off.
func PutWord(b []byte, off uint32, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

// PutLong writes a big-endian 32-bit longword into b at offset off.
func PutLong(b []byte, off uint32, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

// IsLittleEndianHost reports whether the running process is on a little-endian host.
func IsLittleEndianHost() bool {
	var x uint16 = 1
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], x)
	return b[0] == 1
}

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words, padding an odd
// trailing byte with zero.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}
