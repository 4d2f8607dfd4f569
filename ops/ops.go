// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops exposes the Find operator and the operator registry.
//
// Find returns, for each needle, the position of its last occurrence in an
// index tensor, or a configured missing value. The missing value is fixed when
// the operator is constructed; dtypes are checked before any computation runs.
//
// Example:
//
//	op := ops.NewFind(-1)
//	out, err := op.Run(cpu.New(), index, needles)
//	if errors.Is(err, ops.ErrUnsupportedType) {
//	    // index or needles is not int32/int64
//	}
//
// For plain slices, FindLast skips tensors entirely:
//
//	ops.FindLast([]int64{1, 2, 3, 2, 1}, []int64{2, 4, 1}, -1) // [3, -1, 4]
package ops

import (
	internalcpu "github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/operators"
	"github.com/born-ml/find/tensor"
)

// FindOp is a configured Find operator.
type FindOp = operators.FindOp

// Registry maps operator types to handlers.
type Registry = operators.Registry

// Context carries the backend operators execute on.
type Context = operators.Context

// Node is one operator invocation in a graph.
type Node = operators.Node

// Attribute is a node attribute.
type Attribute = operators.Attribute

// Operator type and attribute names.
const (
	OpFind              = operators.OpFind
	AttrMissingValue    = operators.AttrMissingValue
	DefaultMissingValue = operators.DefaultMissingValue
)

// Setup-time errors.
var (
	ErrUnsupportedType   = operators.ErrUnsupportedType
	ErrDTypeMismatch     = operators.ErrDTypeMismatch
	ErrMissingValueRange = operators.ErrMissingValueRange
	ErrIndexTooLarge     = operators.ErrIndexTooLarge
	ErrUnsupportedOp     = operators.ErrUnsupportedOp
)

// NewFind creates a Find operator with the given missing value.
func NewFind(missing int64) *FindOp {
	return operators.NewFind(missing)
}

// NewFindFromNode creates a Find operator from a node's missing_value attribute (default -1).
func NewFindFromNode(node *Node) *FindOp {
	return operators.NewFindOp(node)
}

// IntAttr builds an integer attribute.
func IntAttr(name string, v int64) Attribute {
	return operators.IntAttr(name, v)
}

// NewRegistry creates a registry with Find and the utility operators.
func NewRegistry() *Registry {
	return operators.NewRegistry()
}

// FindLast returns, for each needle, the last position of it in index, or missing.
func FindLast[T tensor.IndexType](index, needles []T, missing T) []T {
	dst := make([]T, len(needles))
	internalcpu.FindLast(dst, index, needles, missing, internalcpu.DefaultBruteForceThreshold)
	return dst
}
