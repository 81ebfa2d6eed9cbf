//go:build !js && !wasip1

package hasher

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
	"github.com/zeebo/blake3"
)

const keyedSupported = true

const (
	primaryContext   = "HashBench highway component primary"
	secondaryContext = "HashBench highway component secondary"
)

// Component selects one of the two independent sub-hashes of a KeyedParams.
type Component int

const (
	Primary Component = iota
	Secondary
)

func (c Component) String() string {
	if c == Secondary {
		return "secondary"
	}
	return "primary"
}

// KeyedParams is a shared parameter set holding one HighwayHash key per
// component. Both keys come from the same seed through BLAKE3 key derivation
// under distinct contexts, which makes the components independent.
type KeyedParams struct {
	keys [2][highwayhash.Size]byte
}

func NewKeyedParams(seed uint64) *KeyedParams {
	var material [8]byte
	binary.LittleEndian.PutUint64(material[:], seed)

	p := &KeyedParams{}
	blake3.DeriveKey(primaryContext, material[:], p.keys[Primary][:])
	blake3.DeriveKey(secondaryContext, material[:], p.keys[Secondary][:])
	return p
}

func (p *KeyedParams) sum(c Component, input []byte) uint64 {
	return highwayhash.Sum64(input, p.keys[c][:])
}

// KeyedComponent hashes with one component of a shared parameter set.
type KeyedComponent struct {
	params    *KeyedParams
	component Component
}

func NewKeyedComponent(p *KeyedParams, c Component) *KeyedComponent {
	return &KeyedComponent{params: p, component: c}
}

func (*KeyedComponent) OutputSize() int { return 8 }

func (h *KeyedComponent) Hash(input, output []byte) {
	PutUint64LE(output, h.params.sum(h.component, input))
}

// KeyedFingerprint concatenates both components: the primary hash fills
// bytes 0..8 and the secondary bytes 8..16.
type KeyedFingerprint struct {
	params *KeyedParams
}

func NewKeyedFingerprint(p *KeyedParams) *KeyedFingerprint {
	return &KeyedFingerprint{params: p}
}

func (*KeyedFingerprint) OutputSize() int { return 16 }

func (h *KeyedFingerprint) Hash(input, output []byte) {
	PutUint128LE(output, h.params.sum(Secondary, input), h.params.sum(Primary, input))
}

func newKeyed(kind Kind, p Params) (Hasher, error) {
	params := NewKeyedParams(p.Seed)
	switch kind {
	case HighwayFingerprint:
		return NewKeyedFingerprint(params), nil
	case HighwayPrimary:
		return NewKeyedComponent(params, Primary), nil
	case HighwaySecondary:
		return NewKeyedComponent(params, Secondary), nil
	}
	return nil, ErrUnknownHasher
}
