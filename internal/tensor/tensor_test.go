package tensor

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanBackend is a minimal Backend used to exercise the typed wrapper.
type scanBackend struct{}

func (scanBackend) Name() string   { return "scan" }
func (scanBackend) Device() Device { return CPU }

func (scanBackend) Find(index, needles *RawTensor, missing int64) *RawTensor {
	result, err := NewRaw(needles.Shape(), Int64, CPU)
	if err != nil {
		panic(err)
	}
	idx, ndl, out := index.AsInt64(), needles.AsInt64(), result.AsInt64()
	for i, x := range ndl {
		out[i] = missing
		for j := len(idx) - 1; j >= 0; j-- {
			if idx[j] == x {
				out[i] = int64(j)
				break
			}
		}
	}
	return result
}

func TestFromSlice(t *testing.T) {
	b := scanBackend{}

	x, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	require.NoError(t, err)
	assert.Equal(t, Int32, x.DType())
	assert.Equal(t, CPU, x.Device())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, x.Data())

	_, err = FromSlice([]int32{1, 2}, Shape{3}, b)
	assert.Error(t, err)
}

func TestFromSliceEmpty(t *testing.T) {
	x, err := FromSlice([]int64{}, Shape{0}, scanBackend{})
	require.NoError(t, err)
	assert.Equal(t, 0, x.NumElements())
	assert.Empty(t, x.Data())
}

func TestTensorFind(t *testing.T) {
	b := scanBackend{}
	index, err := FromSlice([]int64{1, 2, 3, 2, 1}, Shape{5}, b)
	require.NoError(t, err)
	needles, err := FromSlice([]int64{2, 4, 1}, Shape{3}, b)
	require.NoError(t, err)

	got, err := index.Find(needles, -1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -1, 4}, got.Data())
	assert.Equal(t, "Tensor[int64]([3], CPU)", got.String())
}

func TestTensorFindSetupErrors(t *testing.T) {
	b := scanBackend{}

	t.Run("float tensor", func(t *testing.T) {
		x, err := FromSlice([]float32{1, 2}, Shape{2}, b)
		require.NoError(t, err)
		got, err := x.Find(x, -1)
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Nil(t, got)
	})

	t.Run("int32 sentinel overflow", func(t *testing.T) {
		x, err := FromSlice([]int32{1, 2}, Shape{2}, b)
		require.NoError(t, err)
		got, err := x.Find(x, 1<<40)
		assert.ErrorIs(t, err, ErrMissingValueRange)
		assert.Nil(t, got)
	})
}

func TestCheckIndexLen(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	n := math.MaxInt32

	assert.NoError(t, CheckIndexLen(Int32, 0))
	assert.NoError(t, CheckIndexLen(Int32, n+1))
	assert.ErrorIs(t, CheckIndexLen(Int32, n+2), ErrIndexTooLarge)
	assert.NoError(t, CheckIndexLen(Int64, n+2))
}
