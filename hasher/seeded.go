package hasher

import (
	"github.com/dchest/siphash"

	"HashBench/polymur"
)

// splitmix64 expands one seed into a stream of well-mixed words so a single
// Params.Seed can key hashes that need more than 64 bits.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Polymur64 wraps a PolymurHash parameter set chosen from a seed.
type Polymur64 struct {
	params *polymur.Params
}

// NewPolymur runs the PolymurHash parameter search for seed.
func NewPolymur(seed uint64) *Polymur64 {
	return &Polymur64{params: polymur.New(seed)}
}

func (*Polymur64) OutputSize() int { return 8 }

func (h *Polymur64) Hash(input, output []byte) {
	PutUint64LE(output, h.params.Hash(input))
}

// SipHash128Fingerprint is SipHash-2-4 with a 128-bit result, keyed from a
// single seed.
type SipHash128Fingerprint struct {
	k0, k1 uint64
}

func NewSipHash128(seed uint64) *SipHash128Fingerprint {
	return &SipHash128Fingerprint{k0: seed, k1: splitmix64(seed)}
}

func (*SipHash128Fingerprint) OutputSize() int { return 16 }

func (h *SipHash128Fingerprint) Hash(input, output []byte) {
	lo, hi := siphash.Hash128(h.k0, h.k1, input)
	PutUint128LE(output, hi, lo)
}
