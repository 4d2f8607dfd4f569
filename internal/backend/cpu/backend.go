// Package cpu implements the CPU backend for the Find operator.
package cpu

import (
	"github.com/born-ml/find/internal/tensor"
)

// CPUBackend implements tensor.Backend on the host CPU.
type CPUBackend struct {
	device    tensor.Device
	threshold int
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device:    tensor.CPU,
		threshold: DefaultBruteForceThreshold,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// SetBruteForceThreshold sets the needle count below which Find uses the reverse
// scan instead of the hash map. n <= 0 restores DefaultBruteForceThreshold.
func (cpu *CPUBackend) SetBruteForceThreshold(n int) {
	if n <= 0 {
		n = DefaultBruteForceThreshold
	}
	cpu.threshold = n
}

// BruteForceThreshold returns the current strategy cut-off.
func (cpu *CPUBackend) BruteForceThreshold() int {
	return cpu.threshold
}
