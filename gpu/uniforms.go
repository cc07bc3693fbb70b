// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements the compute-only GPU pipeline of spec §4.5: the
// bake pass that runs part of transform.Resolved.Evaluate into a 3D LUT
// (see bakeWGSL for the stages it covers) and the apply pass that samples
// it. There is no midtone-detail pass.
// It is built on github.com/cogentcore/webgpu/wgpu, the same wgpu-native
// binding the reference corpus's graphics/compute system wraps.
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/grading"
)

// UniformSize is the byte size of the packed GradingUniform struct below,
// 16-byte aligned per spec §6. Four vec4s (64 bytes) plus twelve scalars
// packed four-per-16-byte-row in three rows (48 bytes) = 112 bytes.
const UniformSize = 4*16 + 12*4

// PackUniform serializes a GradingParams into the exact byte layout the
// bake and apply WGSL shaders bind as a uniform buffer (spec §6):
//
//	lift: vec4       gamma: vec4       gain: vec4        offset: vec4
//	temperature: f32 tint: f32         contrast: f32     pivot: f32
//	shadows: f32     highlights: f32   saturation: f32   hue_deg: f32
//	luma_mix: f32    input_space: u32  working_space: u32 output_space: u32
//
// Wheels pack as (r, g, b, master); curves are bound separately as 1D
// textures and are not part of this struct.
func PackUniform(p *grading.GradingParams) []byte {
	buf := make([]byte, UniformSize)
	o := 0
	putWheel := func(w grading.Wheel) {
		putF32(buf, o, w.R)
		putF32(buf, o+4, w.G)
		putF32(buf, o+8, w.B)
		putF32(buf, o+12, w.Master)
		o += 16
	}
	putWheel(p.Lift)
	putWheel(p.Gamma)
	putWheel(p.Gain)
	putWheel(p.Offset)

	putF32(buf, o+0, p.Temperature)
	putF32(buf, o+4, p.Tint)
	putF32(buf, o+8, p.Contrast)
	putF32(buf, o+12, p.Pivot)
	o += 16

	putF32(buf, o+0, p.Shadows)
	putF32(buf, o+4, p.Highlights)
	putF32(buf, o+8, p.Saturation)
	putF32(buf, o+12, p.HueDeg)
	o += 16

	putF32(buf, o+0, p.LumaMix)
	putU32(buf, o+4, uint32(p.ColorManagement.InputSpace))
	putU32(buf, o+8, uint32(p.ColorManagement.WorkingSpace))
	putU32(buf, o+12, uint32(p.ColorManagement.OutputSpace))

	return buf
}

func putF32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func putU32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// GamutUniform is a per-color-space block of the RGB<->XYZ matrices and
// white point, matching colorspace.Descriptor. PackGamutTable does not use
// it: the table the bake shader indexes holds the two matrices only.
type GamutUniform struct {
	RGBToXYZ [9]float32
	XYZToRGB [9]float32
	WhiteX   float32
	WhiteY   float32
	_pad     [2]float32 // pads the 20-float block to 22 floats (88 bytes)
}

// PackGamutTable serializes every registered color space's gamut matrices
// in ID order into a flat buffer the bake shader binds as a read-only
// storage buffer, indexed by ColorSpaceId. This is the one GPU resource
// that must be byte-for-byte identical to the CPU colorspace registry (spec
// §4.5's bit-for-bit concordance requirement) since both read the same
// colorspace.Descriptor values.
func PackGamutTable() []byte {
	spaces := colorspace.Spaces()
	n := int(colorspace.VLog) + 1
	buf := make([]byte, 0, n*9*4*2)
	for id := 0; id < n; id++ {
		var d colorspace.Descriptor
		for _, s := range spaces {
			if int(s.ID) == id {
				d = s
				break
			}
		}
		for _, v := range d.RGBToXYZ {
			buf = appendF32(buf, v)
		}
		for _, v := range d.XYZToRGB {
			buf = appendF32(buf, v)
		}
	}
	return buf
}

func appendF32(buf []byte, v float32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}
