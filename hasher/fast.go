package hasher

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	"github.com/zeebo/xxh3"
)

// Non-cryptographic unkeyed hashes. Integer results are serialized
// little-endian.

type XXH3Hash struct{}

func (XXH3Hash) OutputSize() int { return 8 }

func (XXH3Hash) Hash(input, output []byte) {
	PutUint64LE(output, xxh3.Hash(input))
}

type XXH3Hash128 struct{}

func (XXH3Hash128) OutputSize() int { return 16 }

func (XXH3Hash128) Hash(input, output []byte) {
	h := xxh3.Hash128(input)
	PutUint128LE(output, h.Hi, h.Lo)
}

// XXHash64Hash is the classic XXH64, kept next to XXH3 for comparison.
type XXHash64Hash struct{}

func (XXHash64Hash) OutputSize() int { return 8 }

func (XXHash64Hash) Hash(input, output []byte) {
	PutUint64LE(output, xxhash.Sum64(input))
}

type Farm64Hash struct{}

func (Farm64Hash) OutputSize() int { return 8 }

func (Farm64Hash) Hash(input, output []byte) {
	PutUint64LE(output, farm.Hash64(input))
}
