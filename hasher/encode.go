package hasher

import "encoding/binary"

// PutUint64LE writes v into out[0:8], least significant byte first.
func PutUint64LE(out []byte, v uint64) {
	binary.LittleEndian.PutUint64(out, v)
}

// PutUint128LE writes the 128-bit value hi:lo into out[0:16] as one
// little-endian integer: the low word occupies out[0:8].
func PutUint128LE(out []byte, hi, lo uint64) {
	_ = out[15]
	binary.LittleEndian.PutUint64(out[0:8], lo)
	binary.LittleEndian.PutUint64(out[8:16], hi)
}
