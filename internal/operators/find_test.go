package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/tensor"
)

func int64Tensor(t *testing.T, data ...int64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsInt64(), data)
	return raw
}

func int32Tensor(t *testing.T, data ...int32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsInt32(), data)
	return raw
}

func TestNewFindOpDefaults(t *testing.T) {
	op := NewFindOp(&Node{OpType: OpFind})
	assert.Equal(t, int64(-1), op.MissingValue())
}

func TestNewFindOpReadsMissingValue(t *testing.T) {
	node := &Node{
		OpType:     OpFind,
		Attributes: []Attribute{IntAttr(AttrMissingValue, -99)},
	}
	op := NewFindOp(node)

	// Changing the node afterwards does not affect the constructed operator.
	node.Attributes[0].I = 5
	assert.Equal(t, int64(-99), op.MissingValue())
}

func TestNewFindOpIgnoresNonIntAttribute(t *testing.T) {
	node := &Node{
		OpType:     OpFind,
		Attributes: []Attribute{{Name: AttrMissingValue, Type: 0, I: -99}},
	}
	assert.Equal(t, int64(DefaultMissingValue), NewFindOp(node).MissingValue())
}

func TestFindOpRun(t *testing.T) {
	backend := cpu.New()

	t.Run("concrete scenario", func(t *testing.T) {
		out, err := NewFind(-1).Run(backend, int64Tensor(t, 1, 2, 3, 2, 1), int64Tensor(t, 2, 4, 1))
		require.NoError(t, err)
		assert.Equal(t, []int64{3, -1, 4}, out.AsInt64())
	})

	t.Run("custom sentinel", func(t *testing.T) {
		out, err := NewFind(-99).Run(backend, int32Tensor(t, 5, 3, 5, 7), int32Tensor(t, 5, 8))
		require.NoError(t, err)
		assert.Equal(t, []int32{2, -99}, out.AsInt32())
	})

	t.Run("empty index", func(t *testing.T) {
		out, err := NewFind(-1).Run(backend, int64Tensor(t), int64Tensor(t, 4, 5))
		require.NoError(t, err)
		assert.Equal(t, []int64{-1, -1}, out.AsInt64())
	})

	t.Run("empty needles", func(t *testing.T) {
		out, err := NewFind(-1).Run(backend, int64Tensor(t, 4, 5), int64Tensor(t))
		require.NoError(t, err)
		assert.Equal(t, 0, out.NumElements())
	})
}

func TestFindOpSetupErrors(t *testing.T) {
	backend := cpu.New()
	f32, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	tests := []struct {
		name    string
		op      *FindOp
		index   *tensor.RawTensor
		needles *tensor.RawTensor
		wantErr error
	}{
		{"float index", NewFind(-1), f32, f32, ErrUnsupportedType},
		{"float needles", NewFind(-1), int64Tensor(t, 1), f32, ErrUnsupportedType},
		{"mixed widths", NewFind(-1), int32Tensor(t, 1), int64Tensor(t, 1), ErrDTypeMismatch},
		{"int32 sentinel overflow", NewFind(1 << 33), int32Tensor(t, 1), int32Tensor(t, 1), ErrMissingValueRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op.Run(backend, tt.index, tt.needles)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestFindOpWideSentinelOnInt64(t *testing.T) {
	out, err := NewFind(1<<40).Run(cpu.New(), int64Tensor(t, 1), int64Tensor(t, 2))
	require.NoError(t, err)
	assert.Equal(t, []int64{1 << 40}, out.AsInt64())
}

func TestFindOpNilInput(t *testing.T) {
	_, err := NewFind(-1).Run(cpu.New(), nil, int64Tensor(t, 1))
	assert.Error(t, err)
}
