// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/find/backend/cpu"
	"github.com/born-ml/find/ops"
	"github.com/born-ml/find/tensor"
)

func TestFindLast(t *testing.T) {
	assert.Equal(t, []int64{3, -1, 4}, ops.FindLast([]int64{1, 2, 3, 2, 1}, []int64{2, 4, 1}, -1))
	assert.Equal(t, []int32{2}, ops.FindLast([]int32{5, 3, 5, 7}, []int32{5}, -1))
	assert.Equal(t, []int32{-99}, ops.FindLast([]int32{}, []int32{1}, -99))
	assert.Empty(t, ops.FindLast([]int64{1}, []int64{}, -1))
}

func TestRegistryRoundTrip(t *testing.T) {
	backend := cpu.New()
	index, err := tensor.NewRaw(tensor.Shape{5}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	copy(index.AsInt32(), []int32{1, 2, 3, 2, 1})
	needles, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	copy(needles.AsInt32(), []int32{2, 4, 1})

	node := &ops.Node{OpType: ops.OpFind, Attributes: []ops.Attribute{ops.IntAttr(ops.AttrMissingValue, -7)}}
	out, err := ops.NewRegistry().Execute(&ops.Context{Backend: backend}, node, []*tensor.RawTensor{index, needles})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, -7, 4}, out[0].AsInt32())
}

func TestUnsupportedType(t *testing.T) {
	x, err := tensor.NewRaw(tensor.Shape{1}, tensor.Uint8, tensor.CPU)
	require.NoError(t, err)

	_, err = ops.NewFind(-1).Run(cpu.New(), x, x)
	assert.ErrorIs(t, err, ops.ErrUnsupportedType)
}
