package hasher

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Fixed-output whole-message digests. None take parameters; each call
// compresses the entire input.

type Blake3Digest struct{}

func (Blake3Digest) OutputSize() int { return 32 }

func (Blake3Digest) Hash(input, output []byte) {
	sum := blake3.Sum256(input)
	copy(output[:32], sum[:])
}

type Blake2bDigest struct{}

func (Blake2bDigest) OutputSize() int { return blake2b.Size256 }

func (Blake2bDigest) Hash(input, output []byte) {
	sum := blake2b.Sum256(input)
	copy(output[:blake2b.Size256], sum[:])
}

type SHA3Digest struct{}

func (SHA3Digest) OutputSize() int { return 32 }

func (SHA3Digest) Hash(input, output []byte) {
	sum := sha3.Sum256(input)
	copy(output[:32], sum[:])
}

type SHA256Digest struct{}

func (SHA256Digest) OutputSize() int { return sha256.Size }

func (SHA256Digest) Hash(input, output []byte) {
	sum := sha256.Sum256(input)
	copy(output[:sha256.Size], sum[:])
}
