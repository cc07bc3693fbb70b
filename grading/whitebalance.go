// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/coregrade/primaries/colorspace"

// daylightChromaticity computes a CIE daylight-locus chromaticity at a
// nominal correlated color temperature, per CIE 15:2004 equations 3.2-3.4
// (grounded on the same published formula used by the reference corpus's
// chromatic-adaptation helpers, e.g. dominikh-go-color's
// MakeCIEDaylightIlluminant). tempKelvin is clamped to the formula's valid
// [4000, 25000] domain so no NaN can escape a pathological slider value.
func daylightChromaticity(tempKelvin float32) colorspace.Chromaticity {
	t := clamp(tempKelvin, 4000, 25000)
	var x float32
	if t <= 7000 {
		x = (-4.6070e9)/(t*t*t) + 2.9678e6/(t*t) + 0.09911e3/t + 0.244063
	} else {
		x = (-2.0064e9)/(t*t*t) + 1.9018e6/(t*t) + 0.24748e3/t + 0.237040
	}
	y := -3*x*x + 2.870*x - 0.275
	return colorspace.Chromaticity{X: x, Y: y}
}

// destinationWhite maps the engine's (temperature, tint) sliders to a
// destination white-point chromaticity. temperature is a signed offset
// from 6500 K on the daylight locus, each unit worth 150 mireds and
// clamped to 4000-25000 K; tint is a signed offset along y (positive raises
// y, toward green). Exactly (0, 0) returns D65 itself.
func destinationWhite(temperature, tint float32) colorspace.Chromaticity {
	if temperature == 0 && tint == 0 {
		return colorspace.WhiteD65
	}
	const refMired = 1e6 / 6500
	const miredsPerUnit = 150
	mired := refMired + temperature*miredsPerUnit
	if mired < 1e6/25000 {
		mired = 1e6 / 25000
	}
	if mired > 1e6/4000 {
		mired = 1e6 / 4000
	}
	kelvin := 1e6 / mired

	c := daylightChromaticity(kelvin)
	c.Y += tint * 0.05
	return c
}

// ApplyWhiteBalance implements spec §4.2's white-balance step: map
// temperature/tint to a destination white, then apply Bradford chromatic
// adaptation from D65 to that white. Identity when both are zero.
func ApplyWhiteBalance(rgb [3]float32, temperature, tint float32) [3]float32 {
	if temperature == 0 && tint == 0 {
		return rgb
	}
	dst := destinationWhite(temperature, tint)
	m := colorspace.ChromaticAdapt(colorspace.WhiteD65, dst)
	return m.MulVec3(rgb)
}
