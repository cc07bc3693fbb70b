// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/internal/errs"
	"github.com/coregrade/primaries/lut"
)

// ApplyPipeline samples a baked 3D LUT texture over an image (spec
// §4.5's apply pass). The pipeline, bind group layout and sampler are
// built once; the LUT texture is created and uploaded on every Apply call.
type ApplyPipeline struct {
	dev      *Device
	pipeline *wgpu.ComputePipeline
	layout   *wgpu.BindGroupLayout
	sampler  *wgpu.Sampler
}

// NewApplyPipeline compiles the apply shader and creates the linear
// sampler that gives the pass hardware trilinear filtering.
func NewApplyPipeline(dev *Device) (*ApplyPipeline, error) {
	mod := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "apply.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: applyWGSL},
	})
	defer mod.Release()

	layout := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "apply-bind-group-layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageCompute, Texture: wgpu.TextureBindingLayout{SampleType: wgpu.TextureSampleTypeFloat, ViewDimension: wgpu.TextureViewDimension3D}},
			{Binding: 1, Visibility: wgpu.ShaderStageCompute, Sampler: wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering}},
			{Binding: 2, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage}},
			{Binding: 3, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage}},
			{Binding: 4, Visibility: wgpu.ShaderStageCompute, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
		},
	})

	pipelineLayout := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "apply-pipeline-layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	defer pipelineLayout.Release()

	pipeline := dev.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "apply-pipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     mod,
			EntryPoint: "apply_main",
		},
	})

	sampler := dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:        "lut-sampler",
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
	})

	return &ApplyPipeline{dev: dev, pipeline: pipeline, layout: layout, sampler: sampler}, nil
}

// uploadLutTexture copies l's lattice into a 3D RGBA32Float texture for
// hardware-filtered sampling.
func (ap *ApplyPipeline) uploadLutTexture(l *lut.Lut3D) (*wgpu.Texture, *wgpu.TextureView, error) {
	n := uint32(l.Size)
	tex := ap.dev.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "lut-texture",
		Size:      wgpu.Extent3D{Width: n, Height: n, DepthOrArrayLayers: n},
		Dimension:  wgpu.TextureDimension3D,
		Format:    wgpu.TextureFormatRGBA32Float,
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		MipLevelCount: 1,
		SampleCount:   1,
	})

	rgba := make([]byte, n*n*n*16)
	for i := 0; i < int(n*n*n); i++ {
		off := i * 16
		binary.LittleEndian.PutUint32(rgba[off:], floatBitsAt(l.Table, i*3+0))
		binary.LittleEndian.PutUint32(rgba[off+4:], floatBitsAt(l.Table, i*3+1))
		binary.LittleEndian.PutUint32(rgba[off+8:], floatBitsAt(l.Table, i*3+2))
		binary.LittleEndian.PutUint32(rgba[off+12:], floatBitsOne())
	}

	ap.dev.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{Texture: tex},
		rgba,
		&wgpu.TextureDataLayout{BytesPerRow: n * 16, RowsPerImage: n},
		&wgpu.Extent3D{Width: n, Height: n, DepthOrArrayLayers: n},
	)

	view := tex.CreateView(nil)
	return tex, view, nil
}

// Apply dispatches the apply shader over src, sampling l, and reads back
// the graded pixels into dst (allocating dst if its dimensions mismatch).
func (ap *ApplyPipeline) Apply(l *lut.Lut3D, src, dst *gradeimage.Image) error {
	if src.Width != dst.Width || src.Height != dst.Height {
		dst.Width, dst.Height = src.Width, src.Height
		dst.Pixels = make([]float32, src.Width*src.Height*4)
	}

	tex, view, err := ap.uploadLutTexture(l)
	if err != nil {
		return err
	}
	defer tex.Release()
	defer view.Release()

	pixelBytes := uint64(len(src.Pixels) * 4)
	srcBuf := ap.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "apply-src", Size: pixelBytes,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	defer srcBuf.Release()
	ap.dev.Queue.WriteBuffer(srcBuf, 0, float32sToBytes(src.Pixels))

	dstBuf := ap.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "apply-dst", Size: pixelBytes,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
	})
	defer dstBuf.Release()

	readback := ap.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "apply-readback", Size: pixelBytes,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	defer readback.Release()

	dims := make([]byte, 8)
	binary.LittleEndian.PutUint32(dims[0:], uint32(src.Width))
	binary.LittleEndian.PutUint32(dims[4:], uint32(src.Height))
	dimsBuf := ap.dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "apply-dims", Size: 16,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	defer dimsBuf.Release()
	ap.dev.Queue.WriteBuffer(dimsBuf, 0, dims)

	bindGroup := ap.dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "apply-bind-group",
		Layout: ap.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: ap.sampler},
			{Binding: 2, Buffer: srcBuf, Size: pixelBytes},
			{Binding: 3, Buffer: dstBuf, Size: pixelBytes},
			{Binding: 4, Buffer: dimsBuf, Size: 16},
		},
	})
	defer bindGroup.Release()

	encoder := ap.dev.Device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(ap.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(uint32((src.Width+15)/16), uint32((src.Height+15)/16), 1)
	pass.End()
	encoder.CopyBufferToBuffer(dstBuf, 0, readback, 0, pixelBytes)
	cmd := encoder.Finish(nil)
	ap.dev.Queue.Submit(cmd)

	data, err := mapBufferRead(ap.dev, readback, pixelBytes)
	if err != nil {
		return errs.Resource("reading back applied image: %v", err)
	}
	bytesToFloat32s(data, dst.Pixels)
	return nil
}

// Release frees the pipeline's GPU resources.
func (ap *ApplyPipeline) Release() {
	ap.sampler.Release()
	ap.layout.Release()
	ap.pipeline.Release()
}

func floatBitsAt(table []float32, i int) uint32 {
	return floatBits(table[i])
}

func floatBits(v float32) uint32 {
	return mathFloat32bits(v)
}

func floatBitsOne() uint32 {
	return mathFloat32bits(1)
}
