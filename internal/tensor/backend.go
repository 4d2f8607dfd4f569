package tensor

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - CPU: pure Go, SIMD-accelerated reverse scan via go-highway
//   - WebGPU: WGSL compute shader (int32 only, int64 falls back to CPU)
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Device returns the compute device type.
	Device() Device

	// Find returns, for every element of needles, the position of its last
	// occurrence in the flattened index tensor, or missing when absent.
	// The result has the shape of needles and the dtype of index.
	// Both inputs must share an int32 or int64 dtype.
	Find(index, needles *RawTensor, missing int64) *RawTensor
}
