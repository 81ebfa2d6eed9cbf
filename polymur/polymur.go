// Package polymur implements PolymurHash 2.0, a seeded 64-bit universal hash
// built on polynomial evaluation modulo the Mersenne prime 2^61-1.
//
// https://github.com/orlp/polymur-hash
package polymur

import (
	"encoding/binary"
	"math/bits"
)

const (
	p611 = (1 << 61) - 1

	arbitrary1 = 0x6a09e667f3bcc908
	arbitrary2 = 0xbb67ae8584caa73b
	arbitrary3 = 0x3c6ef372fe94f82b
	arbitrary4 = 0xa54ff53a5f1d36f1

	mask56 = 0x00ffffffffffffff
)

// Params holds the key material of one hash function from the family.
// It is immutable once built and safe for concurrent use.
type Params struct {
	k, k2, k7, s uint64
}

type u128 struct{ lo, hi uint64 }

func mul128(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{lo: lo, hi: hi}
}

func add128(a, b u128) u128 {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	return u128{lo: lo, hi: a.hi + b.hi + c}
}

func red611(x u128) uint64 {
	return (x.lo & p611) + ((x.lo >> 61) | (x.hi << 3))
}

func extrared611(x uint64) uint64 {
	return (x & p611) + (x >> 61)
}

func mulmod(a, b uint64) uint64 {
	return extrared611(red611(mul128(a, b)))
}

// mix is the mx3 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 32
	x *= 0xe9846af9b1a615d
	x ^= x >> 32
	x *= 0xe9846af9b1a615d
	x ^= x >> 28
	return x
}

// pow37[i] = 37^(2^i) mod 2^61-1
var pow37 = func() (p [64]uint64) {
	p[0] = 37
	for i := 1; i < len(p); i++ {
		p[i] = mulmod(p[i-1], p[i-1])
	}
	return p
}()

// New derives parameters from a single 64-bit seed.
func New(seed uint64) *Params {
	return NewFromSeeds(mix(seed+arbitrary3), mix(seed+arbitrary4))
}

// NewFromSeeds derives parameters from independent key and state seeds.
func NewFromSeeds(kSeed, sSeed uint64) *Params {
	p := &Params{s: sSeed ^ arbitrary1}

	for {
		// Pick an exponent coprime to 2^61-2 so 37^e stays a generator.
		kSeed += arbitrary2
		e := (kSeed >> 3) | 1
		if e%3 == 0 {
			continue
		}
		if e%5 == 0 || e%7 == 0 {
			continue
		}
		if e%11 == 0 || e%13 == 0 || e%31 == 0 {
			continue
		}
		if e%41 == 0 || e%61 == 0 || e%151 == 0 || e%331 == 0 || e%1321 == 0 {
			continue
		}

		ka, kb := uint64(1), uint64(1)
		for i := 0; e != 0; i, e = i+2, e>>2 {
			if e&1 != 0 {
				ka = mulmod(ka, pow37[i])
			}
			if e&2 != 0 {
				kb = mulmod(kb, pow37[i+1])
			}
		}
		k := mulmod(ka, kb)

		p.k = extrared611(k)
		p.k2 = mulmod(p.k, p.k)
		k3 := red611(mul128(p.k, p.k2))
		k4 := red611(mul128(p.k2, p.k2))
		p.k7 = mulmod(k3, k4)
		// The bound on k^7 keeps the long-input reduction from overflowing.
		if p.k7 < (1<<60)-(1<<56) {
			return p
		}
	}
}

// Hash returns the 64-bit digest of buf.
func (p *Params) Hash(buf []byte) uint64 {
	return p.HashTweak(buf, 0)
}

// HashTweak returns the digest of buf under an additional 64-bit tweak.
func (p *Params) HashTweak(buf []byte, tweak uint64) uint64 {
	h := p.poly611(buf, tweak)
	return mix(h) + p.s
}

func (p *Params) poly611(buf []byte, tweak uint64) uint64 {
	acc := tweak
	n := uint64(len(buf))

	if n <= 7 {
		m := load0to8(buf)
		return acc + red611(mul128(p.k+m, p.k2+n))
	}

	k3 := red611(mul128(p.k, p.k2))
	k4 := red611(mul128(p.k2, p.k2))
	if n >= 50 {
		k5 := mulmod(p.k, k4)
		k6 := mulmod(p.k2, k4)
		k3 = extrared611(k3)
		k4 = extrared611(k4)
		var h uint64
		for len(buf) >= 50 {
			var m [7]uint64
			for i := range m {
				m[i] = binary.LittleEndian.Uint64(buf[7*i:]) & mask56
			}
			t0 := mul128(p.k+m[0], k6+m[1])
			t1 := mul128(p.k2+m[2], k5+m[3])
			t2 := mul128(k3+m[4], k4+m[5])
			t3 := mul128(h+m[6], p.k7)
			h = red611(add128(add128(t0, t1), add128(t2, t3)))
			buf = buf[49:]
		}
		n = uint64(len(buf))
		k14 := red611(mul128(p.k7, p.k7))
		hk14 := red611(mul128(extrared611(h), k14))
		acc += extrared611(hk14)
	}

	if n >= 8 {
		m0 := binary.LittleEndian.Uint64(buf) & mask56
		m1 := binary.LittleEndian.Uint64(buf[(n-7)/2:]) & mask56
		m2 := binary.LittleEndian.Uint64(buf[n-8:]) >> 8
		t0 := mul128(p.k2+m0, p.k7+m1)
		t1 := mul128(p.k+m2, k3+n)
		if n <= 21 {
			return acc + red611(add128(t0, t1))
		}
		m3 := binary.LittleEndian.Uint64(buf[7:]) & mask56
		m4 := binary.LittleEndian.Uint64(buf[14:]) & mask56
		m5 := binary.LittleEndian.Uint64(buf[n-21:]) & mask56
		m6 := binary.LittleEndian.Uint64(buf[n-14:]) & mask56
		t0r := red611(t0)
		t2 := mul128(p.k2+m3, p.k7+m4)
		t3 := mul128(t0r+m5, k4+m6)
		return acc + red611(add128(add128(t1, t2), t3))
	}

	m := load0to8(buf)
	return acc + red611(mul128(p.k+m, p.k2+n))
}

// load0to8 reads up to 8 bytes as a little-endian integer without reading
// past the end of buf.
func load0to8(buf []byte) uint64 {
	n := len(buf)
	if n < 4 {
		if n == 0 {
			return 0
		}
		v := uint64(buf[0])
		v |= uint64(buf[n/2]) << (8 * (n / 2))
		v |= uint64(buf[n-1]) << (8 * (n - 1))
		return v
	}
	lo := uint64(binary.LittleEndian.Uint32(buf))
	hi := uint64(binary.LittleEndian.Uint32(buf[n-4:]))
	return lo | hi<<(8*(n-4))
}
