package cpu

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchData(indexLen, needleLen int) (index, needles []int64) {
	rng := rand.New(rand.NewPCG(42, 42))
	index = make([]int64, indexLen)
	for i := range index {
		index[i] = rng.Int64N(int64(indexLen))
	}
	needles = make([]int64, needleLen)
	for i := range needles {
		needles[i] = rng.Int64N(int64(indexLen) * 2)
	}
	return index, needles
}

// Compares the two strategies around the default threshold.
func BenchmarkStrategies(b *testing.B) {
	for _, indexLen := range []int{64, 4096} {
		for _, needleLen := range []int{4, 15, 16, 64} {
			index, needles := benchData(indexLen, needleLen)
			dst := make([]int64, needleLen)

			b.Run(fmt.Sprintf("brute/N=%d/M=%d", indexLen, needleLen), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					FindBruteForce(dst, index, needles, -1)
				}
			})
			b.Run(fmt.Sprintf("hashed/N=%d/M=%d", indexLen, needleLen), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					FindHashed(dst, index, needles, -1)
				}
			})
		}
	}
}
