// Package hasher defines the Hasher capability driven by the benchmark
// runner and the closed set of hash variants that implement it.
//
// Every variant is identified by a Kind. Kinds that depend on libraries not
// built for constrained targets (js, wasip1) remain in the enumeration but
// report themselves unavailable there; callers never need to special-case
// them beyond handling ErrUnavailable.
package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"HashBench/errutil"
)

// Hasher maps a byte sequence to a fixed-length digest.
//
// Hash must overwrite output[:OutputSize()] completely, as a pure function of
// input and the parameters fixed at construction. Implementations keep no
// state between calls and never touch bytes outside the two slices.
type Hasher interface {
	OutputSize() int
	Hash(input, output []byte)
}

var (
	ErrUnknownHasher = errors.New("unknown hasher")
	ErrUnavailable   = errors.New("hasher not available on this platform")
)

// Family groups kinds by how they are constructed.
type Family int

const (
	Baseline Family = iota
	Digest
	Fast
	Seeded
	Keyed
)

func (f Family) String() string {
	switch f {
	case Baseline:
		return "baseline"
	case Digest:
		return "digest"
	case Fast:
		return "fast"
	case Seeded:
		return "seeded"
	case Keyed:
		return "keyed"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Kind identifies one hash variant.
type Kind int

const (
	XOR Kind = iota
	Blake3
	Blake2b
	SHA3
	SHA256
	XXH3
	XXH3x128
	XXHash64
	Farm64
	Polymur
	SipHash128
	HighwayFingerprint
	HighwayPrimary
	HighwaySecondary

	numKinds
)

type kindInfo struct {
	name   string
	family Family
	size   int
}

var kinds = [numKinds]kindInfo{
	XOR:                {"xor", Baseline, 8},
	Blake3:             {"blake3", Digest, 32},
	Blake2b:            {"blake2b", Digest, 32},
	SHA3:               {"sha3", Digest, 32},
	SHA256:             {"sha256", Digest, 32},
	XXH3:               {"xxh3", Fast, 8},
	XXH3x128:           {"xxh3-128", Fast, 16},
	XXHash64:           {"xxhash64", Fast, 8},
	Farm64:             {"farm64", Fast, 8},
	Polymur:            {"polymur", Seeded, 8},
	SipHash128:         {"siphash128", Seeded, 16},
	HighwayFingerprint: {"highway-fingerprint", Keyed, 16},
	HighwayPrimary:     {"highway-primary", Keyed, 8},
	HighwaySecondary:   {"highway-secondary", Keyed, 8},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

func (k Kind) valid() bool { return k >= 0 && k < numKinds }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Family reports the construction family of k.
func (k Kind) Family() Family {
	errutil.BugOn(!k.valid(), "invalid kind %d", int(k))
	return kinds[k].family
}

// OutputSize reports the digest length in bytes produced by k.
func (k Kind) OutputSize() int {
	errutil.BugOn(!k.valid(), "invalid kind %d", int(k))
	return kinds[k].size
}

// Available reports whether k can be constructed in this build.
func (k Kind) Available() bool {
	if !k.valid() {
		return false
	}
	return k.Family() != Keyed || keyedSupported
}

// Lookup resolves a variant name.
func Lookup(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, &errutil.ConfigError{Field: "hasher", Value: name, Err: ErrUnknownHasher}
	}
	return k, nil
}

// Names returns every known variant name in lexical order, including those
// unavailable in this build.
func Names() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

// Available returns the kinds constructible in this build, in declaration
// order.
func Available() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		if k.Available() {
			out = append(out, k)
		}
	}
	return out
}

// Params carries construction-time inputs. Seeded and keyed variants derive
// all of their key material from Seed; the others ignore it.
type Params struct {
	Seed uint64
}

// New constructs the variant identified by kind. Construction may be
// expensive (key schedules, parameter search) and belongs outside any
// measured region.
func New(kind Kind, p Params) (Hasher, error) {
	switch kind {
	case XOR:
		return XORFold{}, nil
	case Blake3:
		return Blake3Digest{}, nil
	case Blake2b:
		return Blake2bDigest{}, nil
	case SHA3:
		return SHA3Digest{}, nil
	case SHA256:
		return SHA256Digest{}, nil
	case XXH3:
		return XXH3Hash{}, nil
	case XXH3x128:
		return XXH3Hash128{}, nil
	case XXHash64:
		return XXHash64Hash{}, nil
	case Farm64:
		return Farm64Hash{}, nil
	case Polymur:
		return NewPolymur(p.Seed), nil
	case SipHash128:
		return NewSipHash128(p.Seed), nil
	case HighwayFingerprint, HighwayPrimary, HighwaySecondary:
		return newKeyed(kind, p)
	}
	return nil, &errutil.ConfigError{Field: "hasher", Value: kind.String(), Err: ErrUnknownHasher}
}

// NewByName is Lookup followed by New.
func NewByName(name string, p Params) (Hasher, error) {
	kind, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(kind, p)
}
