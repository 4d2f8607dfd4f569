//go:build !windows

package main

import (
	"fmt"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/tensor"
)

// openBackend returns the named backend and a function releasing it.
func openBackend(name string, threshold int) (tensor.Backend, func(), error) {
	switch name {
	case "cpu":
		backend := cpu.New()
		backend.SetBruteForceThreshold(threshold)
		return backend, func() {}, nil
	case "webgpu":
		return nil, nil, fmt.Errorf("webgpu backend is only built on windows")
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
}
