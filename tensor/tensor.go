// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API used with the Find operator.
//
// The package defines the types shared by backends and operators:
//   - Tensor[T, B]: typed tensor bound to a backend
//   - RawTensor: untyped buffer with runtime dtype, for backend and operator code
//   - Backend: interface implemented by the CPU and WebGPU backends
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	index, _ := tensor.FromSlice([]int64{1, 2, 3, 2, 1}, tensor.Shape{5}, backend)
//	needles, _ := tensor.FromSlice([]int64{2, 4, 1}, tensor.Shape{3}, backend)
//	positions, err := index.Find(needles, -1) // [3, -1, 4]
package tensor

import (
	"github.com/born-ml/find/internal/tensor"
)

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// IndexType is the constraint for the element types Find accepts: int32 and int64.
type IndexType = tensor.IndexType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// A zero-sized dimension describes an empty tensor.
type Shape = tensor.Shape

// Backend is the interface implemented by compute backends.
type Backend = tensor.Backend

// Tensor is a generic type-safe tensor.
//
// T is the data type, B the backend implementation (CPU, WebGPU).
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Find setup errors, returned by Tensor.Find before the backend runs.
var (
	ErrUnsupportedType   = tensor.ErrUnsupportedType
	ErrDTypeMismatch     = tensor.ErrDTypeMismatch
	ErrMissingValueRange = tensor.ErrMissingValueRange
	ErrIndexTooLarge     = tensor.ErrIndexTooLarge
)

// FromSlice creates a tensor from a Go slice; the data is copied.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]int32{5, 3, 5, 7}, tensor.Shape{4}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// ParseDataType resolves a type name such as "int64".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}
