package hasher

import "encoding/binary"

// XORFold is the reference baseline: the input is read as little-endian
// 64-bit words XORed into one accumulator. A trailing partial word is copied
// to the start of a zeroed 8-byte block first, so the missing high bytes
// read as zero.
type XORFold struct{}

func (XORFold) OutputSize() int { return 8 }

func (XORFold) Hash(input, output []byte) {
	PutUint64LE(output, XORFold64(input))
}

// XORFold64 returns the folded accumulator for input.
func XORFold64(input []byte) uint64 {
	var acc uint64
	i := 0
	for ; i+8 <= len(input); i += 8 {
		acc ^= binary.LittleEndian.Uint64(input[i:])
	}
	if i < len(input) {
		var last [8]byte
		copy(last[:], input[i:])
		acc ^= binary.LittleEndian.Uint64(last[:])
	}
	return acc
}
