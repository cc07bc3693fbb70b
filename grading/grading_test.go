// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCDLIdentity(t *testing.T) {
	d := Default()
	rgb := [3]float32{0.1, 0.2, 0.3}
	out := ApplyCDL(rgb, d.Lift, d.Gamma, d.Gain, d.Offset)
	for i := range rgb {
		assert.InDelta(t, rgb[i], out[i], 1e-5)
	}
}

func TestCDLGain(t *testing.T) {
	gain := Wheel{2, 2, 2, 1}
	out := ApplyCDL([3]float32{0.1, 0.2, 0.3}, Wheel{Master: 0}, Wheel{1, 1, 1, 1}, gain, Wheel{})
	assert.InDelta(t, 0.2, out[0], 1e-5)
	assert.InDelta(t, 0.4, out[1], 1e-5)
	assert.InDelta(t, 0.6, out[2], 1e-5)
}

func TestContrastPreservesPivot(t *testing.T) {
	for _, c := range []float32{0.1, 0.5, 1, 2, 5} {
		pivot := float32(0.435)
		out := ApplyContrast([3]float32{pivot, pivot, pivot}, c, pivot)
		for i := range out {
			assert.InDelta(t, pivot, out[i], 1e-5)
		}
	}
}

func TestContrastIdentity(t *testing.T) {
	rgb := [3]float32{0.2, 0.6, 0.9}
	out := ApplyContrast(rgb, 1, 0.435)
	assert.Equal(t, rgb, out)
}

func TestSaturationZeroIsAchromatic(t *testing.T) {
	out := ApplySaturationHueLumaMix([3]float32{0.8, 0.2, 0.1}, 0, 0, 0)
	assert.InDelta(t, out[0], out[1], 1e-6)
	assert.InDelta(t, out[1], out[2], 1e-6)
}

func TestShadowsHighlightsIdentityAtZero(t *testing.T) {
	rgb := [3]float32{0.1, 0.5, 0.9}
	out := ApplyShadowsHighlights(rgb, 0, 0)
	assert.Equal(t, rgb, out)
}

func TestCurvesIdentityWhenEmpty(t *testing.T) {
	p := Default()
	rgb := [3]float32{0.3, 0.5, 0.7}
	out := ApplyCurves(rgb, &p)
	for i := range rgb {
		assert.InDelta(t, rgb[i], out[i], 1e-4)
	}
}

func TestEvalCurveEndpointClamp(t *testing.T) {
	c := Curve{{X: 0.2, Y: 0.5}, {X: 0.8, Y: 1.5}}
	assert.InDelta(t, 0.5, EvalCurve(c, 0, 1), 1e-6)
	assert.InDelta(t, 1.5, EvalCurve(c, 1, 1), 1e-6)
}

func TestWhiteBalanceIdentityAtZero(t *testing.T) {
	rgb := [3]float32{0.3, 0.5, 0.7}
	out := ApplyWhiteBalance(rgb, 0, 0)
	assert.Equal(t, rgb, out)
}

func TestBakedCurvesMatchEval(t *testing.T) {
	p := Default()
	p.SatVsSat = Curve{{X: 0, Y: 0.5}, {X: 1, Y: 1.5}}
	bc := BakeCurves(&p, 256)
	rgb := [3]float32{0.4, 0.5, 0.6}
	a := ApplyCurves(rgb, &p)
	b := ApplyCurvesBaked(rgb, &bc)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-2)
	}
}
