// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the Transform Chain: the single composite
// evaluator that is both the CPU reference and the required semantic of
// the GPU bake shader (spec §4.3). Its eight-step order is the contract —
// any reordering breaks CPU/GPU parity.
package transform

import (
	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/grading"
)

// Resolved is a GradingParams with its color-management routing resolved
// once (gamut matrices, chromatic adaptation, transfer function pointers)
// rather than re-resolved from the registry on every pixel. Building a
// Resolved is the one piece of per-bake setup; Evaluate itself touches
// only these precomputed values and the scalar/curve fields of params.
type Resolved struct {
	params *grading.GradingParams

	inputToWorking   colorspace.Mat3
	workingToOutput  colorspace.Mat3
	inputTransferID  colorspace.ID
	outputTransferID colorspace.ID

	baked *grading.BakedCurves
}

// Resolve precomputes the routing matrices for params. bakedCurveLength is
// the resolution curves are pre-baked to (spec §4.2 recommends >= 256); if
// 0, curves are evaluated by spline on every call instead (used for the
// single-sample §8 property tests where baking would itself introduce
// quantization into the comparison).
func Resolve(params *grading.GradingParams, bakedCurveLength int) *Resolved {
	cm := params.ColorManagement
	inDesc := colorspace.MustByID(cm.InputSpace)
	workDesc := colorspace.MustByID(cm.WorkingSpace)
	outDesc := colorspace.MustByID(cm.OutputSpace)

	inToWork := inDesc.RGBToXYZ
	if !colorspace.SameWhite(inDesc.White, workDesc.White) {
		inToWork = colorspace.ChromaticAdapt(inDesc.White, workDesc.White).MulMat3(inToWork)
	}
	inToWork = workDesc.XYZToRGB.MulMat3(inToWork)

	workToOut := workDesc.RGBToXYZ
	if !colorspace.SameWhite(workDesc.White, outDesc.White) {
		workToOut = colorspace.ChromaticAdapt(workDesc.White, outDesc.White).MulMat3(workToOut)
	}
	workToOut = outDesc.XYZToRGB.MulMat3(workToOut)

	r := &Resolved{
		params:           params,
		inputToWorking:   inToWork,
		workingToOutput:  workToOut,
		inputTransferID:  cm.InputSpace,
		outputTransferID: cm.OutputSpace,
	}
	if bakedCurveLength > 0 {
		bc := grading.BakeCurves(params, bakedCurveLength)
		r.baked = &bc
	}
	return r
}

// Evaluate runs the eight-step Transform Chain of spec §4.3 on a single
// pixel. Step order is fixed: input transform, white balance, CDL,
// contrast, shadows/highlights, saturation+hue+luma-mix, curves, output
// transform.
func (r *Resolved) Evaluate(rgb [3]float32) [3]float32 {
	p := r.params

	// 1. Input transform: linearize, then gamut-convert input->working.
	lin := [3]float32{
		colorspace.ToLinear(rgb[0], r.inputTransferID),
		colorspace.ToLinear(rgb[1], r.inputTransferID),
		colorspace.ToLinear(rgb[2], r.inputTransferID),
	}
	working := r.inputToWorking.MulVec3(lin)

	// 2. White balance.
	working = grading.ApplyWhiteBalance(working, p.Temperature, p.Tint)

	// 3. CDL.
	working = grading.ApplyCDL(working, p.Lift, p.Gamma, p.Gain, p.Offset)

	// 4. Contrast.
	working = grading.ApplyContrast(working, p.Contrast, p.Pivot)

	// 5. Shadows/highlights.
	working = grading.ApplyShadowsHighlights(working, p.Shadows, p.Highlights)

	// 6. Saturation + hue + luma mix.
	working = grading.ApplySaturationHueLumaMix(working, p.Saturation, p.HueDeg, p.LumaMix)

	// 7. Curves.
	if r.baked != nil {
		working = grading.ApplyCurvesBaked(working, r.baked)
	} else {
		working = grading.ApplyCurves(working, p)
	}

	// 8. Output transform: gamut-convert working->output, encode.
	outLin := r.workingToOutput.MulVec3(working)
	return [3]float32{
		colorspace.FromLinear(outLin[0], r.outputTransferID),
		colorspace.FromLinear(outLin[1], r.outputTransferID),
		colorspace.FromLinear(outLin[2], r.outputTransferID),
	}
}

// Evaluate is a convenience entry point that resolves params with no curve
// pre-baking (spline-exact) and evaluates a single rgb. Hot paths (LUT
// bake, per-pixel apply) should call Resolve once and reuse the Resolved.
func Evaluate(rgb [3]float32, params *grading.GradingParams) [3]float32 {
	return Resolve(params, 0).Evaluate(rgb)
}
