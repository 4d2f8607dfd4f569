package operators

import (
	"fmt"

	"github.com/born-ml/find/internal/tensor"
)

// registerUtilityOps adds graph plumbing operators to the registry.
func (r *Registry) registerUtilityOps() {
	r.Register("Identity", handleIdentity)
	r.Register("Shape", handleShape)
	r.Register("Size", handleSize)
}

func handleIdentity(_ *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("identity requires 1 input, got %d", len(inputs))
	}
	return inputs, nil
}

func handleShape(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("shape requires 1 input, got %d", len(inputs))
	}

	shape := inputs[0].Shape()
	result, err := tensor.NewRaw(tensor.Shape{len(shape)}, tensor.Int64, ctx.Backend.Device())
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}

	data := result.AsInt64()
	for i, v := range shape {
		data[i] = int64(v)
	}

	return []*tensor.RawTensor{result}, nil
}

func handleSize(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("size requires 1 input, got %d", len(inputs))
	}

	result, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int64, ctx.Backend.Device())
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	result.AsInt64()[0] = int64(inputs[0].NumElements())

	return []*tensor.RawTensor{result}, nil
}
