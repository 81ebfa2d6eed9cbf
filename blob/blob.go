// Package blob produces buffers of uniformly random bytes used as benchmark
// input. The randomness is for workload shaping only and is not suitable for
// anything security related.
package blob

import (
	"encoding/binary"
	"math/rand/v2"

	"HashBench/errutil"
)

// Source yields uniformly distributed 64-bit values.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64() uint64
}

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns n bytes where every byte is drawn independently and
// uniformly from src. Eight bytes are taken from each draw; the last draw is
// truncated when n is not a multiple of 8.
func Generate(src Source, n int) []byte {
	errutil.BugOn(n < 0, "blob length must be non-negative, got %d", n)
	buf := make([]byte, n)
	Fill(src, buf)
	return buf
}

// Fill overwrites buf with random bytes from src.
func Fill(src Source, buf []byte) {
	i := 0
	for ; i+8 <= len(buf); i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], src.Uint64())
	}
	if i < len(buf) {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], src.Uint64())
		copy(buf[i:], tail[:])
	}
}
