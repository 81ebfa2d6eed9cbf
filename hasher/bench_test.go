package hasher

import (
	"fmt"
	"testing"
)

var benchSizes = []int{8, 64, 1024, 4096}

func BenchmarkHash(b *testing.B) {
	for _, k := range Available() {
		h, err := New(k, Params{Seed: 1})
		if err != nil {
			b.Fatal(err)
		}
		out := make([]byte, h.OutputSize())
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/Size%d", k, size), func(b *testing.B) {
				in := randomInput(size)
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					h.Hash(in, out)
				}
			})
		}
	}
}
