// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grading implements the per-pixel grading operators (CDL,
// contrast, shadows/highlights, saturation/hue, curves, white balance) and
// the GradingParams value type that is their single source of truth.
package grading

import "github.com/coregrade/primaries/colorspace"

// Wheel is a lift/gamma/gain/offset-style 4-tuple: one value per channel
// plus a master that applies to all three.
type Wheel struct {
	R, G, B, Master float32
}

// Point is a single 2D curve control point, x in [0,1].
type Point struct {
	X, Y float32
}

// Curve is an ordered sequence of control points, sorted by X. An empty
// curve is the identity: 0 for the additive hue-offset curve, 1 for the
// multiplicative saturation curves.
type Curve []Point

// ColorManagement names the three spaces the Transform Chain resolves
// through: the space the source image is encoded in, the space grading
// operators apply in, and the space the graded output is encoded in.
type ColorManagement struct {
	InputSpace   colorspace.ID
	WorkingSpace colorspace.ID
	OutputSpace  colorspace.ID
}

// GradingParams is the single source of truth for a grade: the wire
// contract between the Parameter Store and every consumer (CPU reference,
// GPU bake, CLI). It is a value type, cheap to clone, with a stable field
// layout matching spec §3 and the GPU uniform layout of spec §6.
type GradingParams struct {
	ColorManagement ColorManagement

	Lift  Wheel
	Gamma Wheel
	Gain  Wheel
	Offset Wheel

	Temperature   float32
	Tint          float32
	Contrast      float32
	Pivot         float32
	MidtoneDetail float32
	Shadows       float32
	Highlights    float32
	Saturation    float32
	HueDeg        float32
	LumaMix       float32

	HueVsHue Curve
	HueVsSat Curve
	LumVsSat Curve
	SatVsSat Curve
}

// Default returns the identity GradingParams: evaluating it on any rgb
// must return rgb unchanged within float tolerance (spec §3 invariant).
func Default() GradingParams {
	return GradingParams{
		ColorManagement: ColorManagement{
			InputSpace:   colorspace.SRGB,
			WorkingSpace: colorspace.ACEScg,
			OutputSpace:  colorspace.SRGB,
		},
		Lift:          Wheel{0, 0, 0, 0},
		Gamma:         Wheel{1, 1, 1, 1},
		Gain:          Wheel{1, 1, 1, 1},
		Offset:        Wheel{0, 0, 0, 0},
		Temperature:   0,
		Tint:          0,
		Contrast:      1,
		Pivot:         0.435,
		MidtoneDetail: 0,
		Shadows:       0,
		Highlights:    0,
		Saturation:    1,
		HueDeg:        0,
		LumaMix:       0,
	}
}

// Clone returns a deep copy of p (the curve slices are copied, not
// shared), so a command can hand ownership of the result to the Parameter
// Store without aliasing the caller's slices.
func (p GradingParams) Clone() GradingParams {
	c := p
	c.HueVsHue = append(Curve(nil), p.HueVsHue...)
	c.HueVsSat = append(Curve(nil), p.HueVsSat...)
	c.LumVsSat = append(Curve(nil), p.LumVsSat...)
	c.SatVsSat = append(Curve(nil), p.SatVsSat...)
	return c
}
