package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/find/internal/tensor"
)

// Find returns, for each needle, the last position at which it occurs in the
// flattened index tensor, or missing if it never occurs.
//
// The result has the shape of needles and the dtype of index. Both inputs must be
// int32 or int64 and share a dtype; for int32, missing must fit in int32.
// Violations panic, as every backend kernel does. Validate with the operator
// layer first when an error is preferred.
//
// Example:
//
//	index:   [1, 2, 3, 2, 1]
//	needles: [2, 4, 1]
//	missing: -1
//	output:  [3, -1, 4]
func (cpu *CPUBackend) Find(index, needles *tensor.RawTensor, missing int64) *tensor.RawTensor {
	if index.DType() != needles.DType() {
		panic(fmt.Sprintf("find: dtype mismatch: index %s, needles %s", index.DType(), needles.DType()))
	}

	result, err := tensor.NewRaw(needles.Shape(), needles.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("find: failed to create result tensor: %v", err))
	}

	switch index.DType() {
	case tensor.Int32:
		if missing < math.MinInt32 || missing > math.MaxInt32 {
			panic(fmt.Sprintf("find: missing value %d overflows int32", missing))
		}
		FindLast(result.AsInt32(), index.AsInt32(), needles.AsInt32(), int32(missing), cpu.threshold)
	case tensor.Int64:
		FindLast(result.AsInt64(), index.AsInt64(), needles.AsInt64(), missing, cpu.threshold)
	default:
		panic(fmt.Sprintf("find: unsupported dtype %s", index.DType()))
	}

	return result
}
