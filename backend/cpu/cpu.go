// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
//
// Find picks its strategy from the number of needles: below the brute-force
// threshold (16 by default) it scans the index in reverse with SIMD comparisons;
// otherwise it builds a value-to-last-position map first.
//
// Example:
//
//	backend := cpu.New()
//	backend.SetBruteForceThreshold(32)
package cpu

import (
	internalcpu "github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// DefaultBruteForceThreshold is the default needle count below which Find scans directly.
const DefaultBruteForceThreshold = internalcpu.DefaultBruteForceThreshold

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/find/backend/cpu"
//	    "github.com/born-ml/find/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]int32{5, 3, 5, 7}, tensor.Shape{4}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
