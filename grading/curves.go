// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

// EvalCurve evaluates curve at x in [0,1] by Catmull-Rom spline across its
// control points, clamping at the endpoints. An empty curve returns
// identity unchanged (0 for the additive hue-offset curve, 1 for the
// multiplicative saturation curves), per spec §4.2.
func EvalCurve(curve Curve, x, identity float32) float32 {
	n := len(curve)
	if n == 0 {
		return identity
	}
	if n == 1 {
		return curve[0].Y
	}
	if x <= curve[0].X {
		return curve[0].Y
	}
	if x >= curve[n-1].X {
		return curve[n-1].Y
	}

	i := 0
	for i < n-2 && curve[i+1].X < x {
		i++
	}
	p0 := curve[maxInt(i-1, 0)]
	p1 := curve[i]
	p2 := curve[i+1]
	p3 := curve[minInt(i+2, n-1)]

	span := p2.X - p1.X
	t := float32(0)
	if span > 1e-9 {
		t = (x - p1.X) / span
	}
	t2 := t * t
	t3 := t2 * t

	return 0.5 * (2*p1.Y +
		(-p0.Y+p2.Y)*t +
		(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
		(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// BakeCurve samples curve at length evenly spaced points across [0,1],
// producing a 1D lookup table. This is the representation the GPU bake
// pass binds as a 1D texture per spec §4.5 (length N >= 256).
func BakeCurve(curve Curve, length int, identity float32) []float32 {
	out := make([]float32, length)
	for i := 0; i < length; i++ {
		x := float32(i) / float32(length-1)
		out[i] = EvalCurve(curve, x, identity)
	}
	return out
}

func sampleTable(table []float32, x float32) float32 {
	n := len(table)
	if n == 0 {
		return 0
	}
	x = clamp(x, 0, 1)
	pos := x * float32(n-1)
	i0 := int(pos)
	if i0 >= n-1 {
		return table[n-1]
	}
	frac := pos - float32(i0)
	return mix(table[i0], table[i0+1], frac)
}

// ApplyCurves implements spec §4.2's curve step: convert to HSL, apply the
// hue-offset curve additively (normalized to a full turn) and the three
// saturation-multiplier curves multiplicatively, then convert back.
func ApplyCurves(rgb [3]float32, p *GradingParams) [3]float32 {
	if len(p.HueVsHue) == 0 && len(p.HueVsSat) == 0 && len(p.LumVsSat) == 0 && len(p.SatVsSat) == 0 {
		return rgb
	}
	h, s, l := RGBToHSL(rgb)
	hn := h / 360

	hueOffsetTurns := EvalCurve(p.HueVsHue, hn, 0)
	satMul := EvalCurve(p.HueVsSat, hn, 1) * EvalCurve(p.LumVsSat, l, 1) * EvalCurve(p.SatVsSat, s, 1)

	newHue := h + hueOffsetTurns*360
	for newHue < 0 {
		newHue += 360
	}
	for newHue >= 360 {
		newHue -= 360
	}
	newSat := clamp(s*satMul, 0, 1)
	return HSLToRGB(newHue, newSat, l)
}

// BakedCurves holds pre-baked 1D tables for all four curves, built once
// per bake (spec §4.2: "curves are pre-baked to 1D tables ... before GPU
// use"). ApplyCurvesBaked gives the CPU reference the same shape of
// precomputation the GPU bake pass uses, so parity testing (spec §8)
// compares like for like.
type BakedCurves struct {
	HueVsHue []float32
	HueVsSat []float32
	LumVsSat []float32
	SatVsSat []float32
}

// BakeCurves bakes all four curves of p to tables of the given length.
func BakeCurves(p *GradingParams, length int) BakedCurves {
	return BakedCurves{
		HueVsHue: BakeCurve(p.HueVsHue, length, 0),
		HueVsSat: BakeCurve(p.HueVsSat, length, 1),
		LumVsSat: BakeCurve(p.LumVsSat, length, 1),
		SatVsSat: BakeCurve(p.SatVsSat, length, 1),
	}
}

// ApplyCurvesBaked is ApplyCurves using pre-baked tables instead of
// evaluating the spline per pixel.
func ApplyCurvesBaked(rgb [3]float32, bc *BakedCurves) [3]float32 {
	h, s, l := RGBToHSL(rgb)
	hn := h / 360

	hueOffsetTurns := sampleTable(bc.HueVsHue, hn)
	satMul := sampleTable(bc.HueVsSat, hn) * sampleTable(bc.LumVsSat, l) * sampleTable(bc.SatVsSat, s)

	newHue := h + hueOffsetTurns*360
	for newHue < 0 {
		newHue += 360
	}
	for newHue >= 360 {
		newHue -= 360
	}
	newSat := clamp(s*satMul, 0, 1)
	return HSLToRGB(newHue, newSat, l)
}
