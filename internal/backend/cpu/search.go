package cpu

import (
	"fmt"

	"github.com/born-ml/find/internal/tensor"
)

// DefaultBruteForceThreshold is the needle count below which FindLast scans the
// index directly instead of building a value-to-position map first.
const DefaultBruteForceThreshold = 16

// FindLast writes into dst the position of the last occurrence of each needle in
// index, or missing when the needle does not occur. dst must hold len(needles)
// elements. Strategy is picked from len(needles) alone; both strategies agree.
//
// A threshold <= 0 selects DefaultBruteForceThreshold.
func FindLast[T tensor.IndexType](dst, index, needles []T, missing T, threshold int) {
	if len(dst) != len(needles) {
		panic(fmt.Sprintf("find: output has %d elements, needles have %d", len(dst), len(needles)))
	}
	if !PositionsFit[T](len(index)) {
		panic(fmt.Sprintf("find: index of %d elements has positions that overflow its dtype", len(index)))
	}
	if threshold <= 0 {
		threshold = DefaultBruteForceThreshold
	}

	if len(needles) < threshold {
		FindBruteForce(dst, index, needles, missing)
		return
	}
	FindHashed(dst, index, needles, missing)
}

// PositionsFit reports whether every position of an n-element index is representable in T.
func PositionsFit[T tensor.IndexType](n int) bool {
	return n == 0 || int(T(n-1)) == n-1
}

// FindBruteForce resolves every needle with a reverse scan of index. O(N·M).
func FindBruteForce[T tensor.IndexType](dst, index, needles []T, missing T) {
	for i, x := range needles {
		if j := lastIndex(index, x); j >= 0 {
			dst[i] = T(j)
		} else {
			dst[i] = missing
		}
	}
}

// FindHashed maps every index value to its last position, then looks each needle up. O(N+M).
func FindHashed[T tensor.IndexType](dst, index, needles []T, missing T) {
	last := make(map[T]int, len(index))
	for j, v := range index {
		last[v] = j
	}

	for i, x := range needles {
		if j, ok := last[x]; ok {
			dst[i] = T(j)
		} else {
			dst[i] = missing
		}
	}
}

// lastIndex returns the highest position of value in slice, or -1 if absent.
// The tail is compared four elements at a time; nothing is allocated.
func lastIndex[T tensor.IndexType](slice []T, value T) int {
	i := len(slice)
	for ; i >= 4; i -= 4 {
		block := slice[i-4 : i]
		switch value {
		case block[3]:
			return i - 1
		case block[2]:
			return i - 2
		case block[1]:
			return i - 3
		case block[0]:
			return i - 4
		}
	}

	for i--; i >= 0; i-- {
		if slice[i] == value {
			return i
		}
	}
	return -1
}
