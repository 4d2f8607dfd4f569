package operators

import (
	"fmt"

	"github.com/born-ml/find/internal/tensor"
)

// OpFind is the operator type of FindOp.
const OpFind = "Find"

// AttrMissingValue names the attribute holding the sentinel for absent needles.
const AttrMissingValue = "missing_value"

// DefaultMissingValue is the sentinel used when the node does not set missing_value.
const DefaultMissingValue = -1

// FindOp locates, for each needle, the last position at which it occurs in an
// index tensor. Needles that never occur map to the configured missing value.
//
// Inputs: index, needles (same dtype, int32 or int64, any shape).
// Output: tensor shaped like needles, dtype of the inputs.
type FindOp struct {
	missing int64
}

// NewFind creates a FindOp with the given sentinel.
func NewFind(missing int64) *FindOp {
	return &FindOp{missing: missing}
}

// NewFindOp creates a FindOp from a node, reading missing_value once.
func NewFindOp(node *Node) *FindOp {
	return NewFind(GetAttrInt(node, AttrMissingValue, DefaultMissingValue))
}

// MissingValue returns the sentinel written for needles that are not found.
func (op *FindOp) MissingValue() int64 {
	return op.missing
}

// Prepare validates input dtypes for a run. It fails when either dtype is outside
// {int32, int64}, when they differ, or when the sentinel does not fit the dtype.
func (op *FindOp) Prepare(index, needles tensor.DataType) error {
	return tensor.CheckFind(index, needles, op.missing)
}

// Run validates the inputs and computes the result on backend.
func (op *FindOp) Run(backend tensor.Backend, index, needles *tensor.RawTensor) (*tensor.RawTensor, error) {
	if index == nil || needles == nil {
		return nil, fmt.Errorf("find: input tensor is nil")
	}
	if err := op.Prepare(index.DType(), needles.DType()); err != nil {
		return nil, err
	}
	if err := tensor.CheckIndexLen(index.DType(), index.NumElements()); err != nil {
		return nil, err
	}
	return backend.Find(index, needles, op.missing), nil
}

func handleFind(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("find requires 2 inputs (index, needles), got %d", len(inputs))
	}

	result, err := NewFindOp(node).Run(ctx.Backend, inputs[0], inputs[1])
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{result}, nil
}
