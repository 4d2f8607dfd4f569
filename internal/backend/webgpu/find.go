//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/tensor"
)

// Find returns, for each needle, the last position at which it occurs in the
// flattened index tensor, or missing if it never occurs.
//
// int32 inputs run on the GPU with one invocation per needle. WGSL has no 64-bit
// integers, so int64 inputs are resolved by the CPU kernel. Either way the result
// is identical to the CPU backend's.
func (b *Backend) Find(index, needles *tensor.RawTensor, missing int64) *tensor.RawTensor {
	if index.DType() != needles.DType() {
		panic(fmt.Sprintf("find: dtype mismatch: index %s, needles %s", index.DType(), needles.DType()))
	}

	result, err := tensor.NewRaw(needles.Shape(), needles.DType(), tensor.WebGPU)
	if err != nil {
		panic(fmt.Sprintf("find: failed to create result tensor: %v", err))
	}

	switch index.DType() {
	case tensor.Int32:
		if missing < math.MinInt32 || missing > math.MaxInt32 {
			panic(fmt.Sprintf("find: missing value %d overflows int32", missing))
		}
		if !cpu.PositionsFit[int32](index.NumElements()) {
			panic(fmt.Sprintf("find: %d positions do not fit int32", index.NumElements()))
		}
		dst := result.AsInt32()
		if len(dst) == 0 || index.NumElements() == 0 {
			cpu.FindLast(dst, index.AsInt32(), needles.AsInt32(), int32(missing), 0)
			return result
		}
		data, err := b.runFind(index, needles, int32(missing))
		if err != nil {
			panic(fmt.Sprintf("find: %v", err))
		}
		copy(result.Data(), data)
	case tensor.Int64:
		cpu.FindLast(result.AsInt64(), index.AsInt64(), needles.AsInt64(), missing, 0)
	default:
		panic(fmt.Sprintf("find: unsupported dtype %s", index.DType()))
	}

	return result
}

// runFind dispatches findShaderInt32 and returns the raw result bytes.
// Both inputs must be non-empty int32 tensors.
func (b *Backend) runFind(index, needles *tensor.RawTensor, missing int32) ([]byte, error) {
	shader := b.compileShader("findInt32", findShaderInt32)
	pipeline := b.getOrCreatePipeline("findInt32", shader)

	bufferIndex := b.createBuffer(index.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferIndex.Release()

	bufferNeedles := b.createBuffer(needles.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferNeedles.Release()

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	indexSize := uint64(index.ByteSize())
	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(needles.ByteSize())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	params := make([]byte, 16)
	//nolint:gosec // G115: Safe conversion, NumElements() returns non-negative int
	binary.LittleEndian.PutUint32(params[0:4], uint32(index.NumElements()))
	//nolint:gosec // G115: Safe conversion, NumElements() returns non-negative int
	binary.LittleEndian.PutUint32(params[4:8], uint32(needles.NumElements()))
	binary.LittleEndian.PutUint32(params[8:12], uint32(missing))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferIndex, 0, indexSize),
		wgpu.BufferBindingEntry(1, bufferNeedles, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	x, y := dispatchGrid(needles.NumElements())
	computePass.DispatchWorkgroups(x, y, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	return b.readBuffer(bufferResult, resultSize)
}

// dispatchGrid returns the workgroup counts covering n invocations, keeping each
// dimension within maxWorkgroupsPerDim. The grid may overshoot n; the shader
// bounds-checks its flattened id.
func dispatchGrid(n int) (x, y uint32) {
	groups := (n + workgroupSize - 1) / workgroupSize
	if groups <= maxWorkgroupsPerDim {
		//nolint:gosec // G115: Safe conversion, 0 <= groups <= maxWorkgroupsPerDim
		return uint32(groups), 1
	}
	rows := (groups + maxWorkgroupsPerDim - 1) / maxWorkgroupsPerDim
	cols := (groups + rows - 1) / rows
	//nolint:gosec // G115: Safe conversion, both bounded by maxWorkgroupsPerDim
	return uint32(cols), uint32(rows)
}
