// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/coregrade/primaries/engineconfig"
	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/lut"
	"github.com/spf13/cobra"
)

// gradeFlags binds the subset of grading.GradingParams a CLI invocation
// can realistically set by hand; curve-shaped operators (HueVsHue and
// friends) are only reachable through a loaded .cube or a UI transport.
type gradeFlags struct {
	inputSpace   string
	workingSpace string
	outputSpace  string

	temperature float32
	tint        float32
	contrast    float32
	pivot       float32
	shadows     float32
	highlights  float32
	saturation  float32
	hueDeg      float32
	lumaMix     float32

	gainMaster float32
	liftMaster float32
}

func addGradeFlags(cmd *cobra.Command, f *gradeFlags) {
	fl := cmd.Flags()
	fl.StringVar(&f.inputSpace, "input-space", "srgb", "input color space name")
	fl.StringVar(&f.workingSpace, "working-space", "acescg", "working color space name")
	fl.StringVar(&f.outputSpace, "output-space", "srgb", "output color space name")
	fl.Float32Var(&f.temperature, "temperature", 0, "white balance temperature offset, each unit 150 mireds")
	fl.Float32Var(&f.tint, "tint", 0, "white balance green/magenta tint offset")
	fl.Float32Var(&f.contrast, "contrast", 1, "contrast slope about the pivot")
	fl.Float32Var(&f.pivot, "pivot", 0.435, "contrast pivot, scene-linear")
	fl.Float32Var(&f.shadows, "shadows", 0, "shadow lift, -1..1")
	fl.Float32Var(&f.highlights, "highlights", 0, "highlight lift, -1..1")
	fl.Float32Var(&f.saturation, "saturation", 1, "saturation multiplier, 0 desaturates")
	fl.Float32Var(&f.hueDeg, "hue", 0, "hue rotation in degrees")
	fl.Float32Var(&f.lumaMix, "luma-mix", 0, "luma-preserving mix after saturation/hue")
	fl.Float32Var(&f.gainMaster, "gain", 1, "master gain wheel value")
	fl.Float32Var(&f.liftMaster, "lift", 0, "master lift wheel value")
}

// params resolves the bound flags into a GradingParams, starting from
// identity defaults so an unset flag never silently grades the image.
func (f *gradeFlags) params() grading.GradingParams {
	p := grading.Default()
	p.ColorManagement.InputSpace = engineconfig.ColorSpaceByName(f.inputSpace)
	p.ColorManagement.WorkingSpace = engineconfig.ColorSpaceByName(f.workingSpace)
	p.ColorManagement.OutputSpace = engineconfig.ColorSpaceByName(f.outputSpace)
	p.Temperature = f.temperature
	p.Tint = f.tint
	p.Contrast = f.contrast
	p.Pivot = f.pivot
	p.Shadows = f.shadows
	p.Highlights = f.highlights
	p.Saturation = f.saturation
	p.HueDeg = f.hueDeg
	p.LumaMix = f.lumaMix
	p.Gain.Master = f.gainMaster
	p.Lift.Master = f.liftMaster
	return p
}

func resolveLutSize(n int) lut.Size {
	s := lut.Size(n)
	if !s.Valid() {
		return lut.Size33
	}
	return s
}
