//go:build windows

package main

import (
	"fmt"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/backend/webgpu"
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
		backend, err := webgpu.New()
		if err != nil {
			return nil, nil, err
		}
		return backend, backend.Release, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", name)
	}
}
