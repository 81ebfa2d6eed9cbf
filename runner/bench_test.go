package runner

import (
	"fmt"
	"testing"

	"HashBench/hasher"
)

var benchWindows = []int{64, 1024, 4096}

// BenchmarkRun compares sliding and static windows per hasher. Each b.N
// iteration is one hash call; the one-off buffer fill inside Run is
// amortized over b.N.
func BenchmarkRun(b *testing.B) {
	for _, k := range hasher.Available() {
		h, err := hasher.New(k, hasher.Params{Seed: 1})
		if err != nil {
			b.Fatal(err)
		}
		for _, mode := range []Mode{Sliding, Static} {
			for _, window := range benchWindows {
				b.Run(fmt.Sprintf("%s/%s/Size%d", k, mode, window), func(b *testing.B) {
					r, err := New(Config{WindowSize: window, Iterations: uint64(b.N), Mode: mode}, WithSeed(1))
					if err != nil {
						b.Fatal(err)
					}
					b.SetBytes(int64(window))
					b.ResetTimer()
					r.Run(h)
				})
			}
		}
	}
}
