// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/grading"
	"github.com/stretchr/testify/assert"
)

func TestIdentityParamsRoundTrip(t *testing.T) {
	p := grading.Default()
	r := Resolve(&p, 0)
	rgb := [3]float32{0.2, 0.45, 0.8}
	out := r.Evaluate(rgb)
	for i := range rgb {
		assert.InDelta(t, rgb[i], out[i], 1e-4)
	}
}

func TestEvaluateConvenienceMatchesResolved(t *testing.T) {
	p := grading.Default()
	p.Gain = grading.Wheel{R: 1.2, G: 1.1, B: 0.9, Master: 1}
	rgb := [3]float32{0.3, 0.4, 0.5}
	a := Evaluate(rgb, &p)
	b := Resolve(&p, 0).Evaluate(rgb)
	assert.Equal(t, a, b)
}

func TestWorkingSpaceRoundTripThroughInputOutput(t *testing.T) {
	p := grading.Default()
	p.ColorManagement.InputSpace = colorspace.LogC3
	p.ColorManagement.OutputSpace = colorspace.LogC3
	r := Resolve(&p, 0)
	rgb := [3]float32{0.3, 0.35, 0.42}
	out := r.Evaluate(rgb)
	for i := range rgb {
		assert.InDelta(t, rgb[i], out[i], 1e-3)
	}
}

func TestBakedCurvesCloseToUnbaked(t *testing.T) {
	p := grading.Default()
	p.SatVsSat = grading.Curve{{X: 0, Y: 0.4}, {X: 1, Y: 1.2}}
	rgb := [3]float32{0.25, 0.5, 0.75}
	unbaked := Resolve(&p, 0).Evaluate(rgb)
	baked := Resolve(&p, 512).Evaluate(rgb)
	for i := range rgb {
		assert.InDelta(t, unbaked[i], baked[i], 5e-3)
	}
}

func TestGrossGradeProducesDifferentOutput(t *testing.T) {
	p := grading.Default()
	p.Contrast = 1.5
	p.Saturation = 1.3
	rgb := [3]float32{0.3, 0.5, 0.7}
	out := Resolve(&p, 0).Evaluate(rgb)
	assert.NotEqual(t, rgb, out)
}
