// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/internal/errs"
	"github.com/coregrade/primaries/lut"
)

// BakePipeline holds the compiled bake compute pipeline and the gamut
// table it binds, built once and reused across every grade change (only
// the uniform buffer's contents and the output buffer's size vary per
// bake).
type BakePipeline struct {
	dev      *Device
	pipeline *wgpu.ComputePipeline
	layout   *wgpu.BindGroupLayout
	gamutBuf *wgpu.Buffer
}

// NewBakePipeline compiles the bake shader and uploads the static gamut
// table (spec §4.5: "the shader contains the gamut matrices... as WGSL
// constants" is relaxed here to a bound storage buffer so the table is
// generated once from colorspace.Spaces() rather than hand-transcribed
// twice; the determinism contract is unaffected since both still read the
// same colorspace.Descriptor values).
func NewBakePipeline(dev *Device) (*BakePipeline, error) {
	mod := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "bake.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: bakeWGSL},
	})
	defer mod.Release()

	layout := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "bake-bind-group-layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage}},
		},
	})

	pipelineLayout := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "bake-pipeline-layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	defer pipelineLayout.Release()

	pipeline := dev.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "bake-pipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     mod,
			EntryPoint: "bake_main",
		},
	})

	gamutTable := PackGamutTable()
	gamutBuf := dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "gamut-table",
		Size:             uint64(len(gamutTable)),
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	dev.Queue.WriteBuffer(gamutBuf, 0, gamutTable)

	return &BakePipeline{dev: dev, pipeline: pipeline, layout: layout, gamutBuf: gamutBuf}, nil
}

// Bake dispatches the bake shader for params over a size^3 grid and reads
// the result back into a lut.Lut3D. The shader runs only part of the
// chain lut.Bake evaluates (see bakeWGSL for the stages it covers), so the
// result matches the CPU bake only for grades that use those stages alone.
func (bp *BakePipeline) Bake(params *grading.GradingParams, size lut.Size) (*lut.Lut3D, error) {
	n := int(size)
	cellCount := n * n * n
	outSize := uint64(cellCount * 16) // vec4<f32>

	uniformBuf := bp.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "grading-uniform",
		Size:  uint64(UniformSize),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	defer uniformBuf.Release()
	bp.dev.Queue.WriteBuffer(uniformBuf, 0, PackUniform(params))

	outBuf := bp.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "lut-out",
		Size:  outSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
	})
	defer outBuf.Release()

	readbackBuf := bp.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "lut-readback",
		Size:  outSize,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	defer readbackBuf.Release()

	bindGroup := bp.dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "bake-bind-group",
		Layout: bp.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: uniformBuf, Size: uint64(UniformSize)},
			{Binding: 1, Buffer: bp.gamutBuf, Size: bp.gamutBuf.GetSize()},
			{Binding: 2, Buffer: outBuf, Size: outSize},
		},
	})
	defer bindGroup.Release()

	encoder := bp.dev.Device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(bp.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	groups := uint32((n + 7) / 8)
	pass.DispatchWorkgroups(groups, groups, groups)
	pass.End()
	encoder.CopyBufferToBuffer(outBuf, 0, readbackBuf, 0, outSize)
	cmd := encoder.Finish(nil)
	bp.dev.Queue.Submit(cmd)

	data, err := mapBufferRead(bp.dev, readbackBuf, outSize)
	if err != nil {
		return nil, errs.Resource("reading back baked lut: %v", err)
	}

	result := lut.New(size)
	packed := make([]float32, 0, cellCount*3)
	for i := 0; i < cellCount; i++ {
		off := i * 16
		r := decodeF32(data[off:])
		g := decodeF32(data[off+4:])
		b := decodeF32(data[off+8:])
		packed = append(packed, r, g, b)
	}
	copy(result.Table, packed)
	return result, nil
}

// Release frees the pipeline's GPU resources.
func (bp *BakePipeline) Release() {
	bp.gamutBuf.Release()
	bp.layout.Release()
	bp.pipeline.Release()
}
