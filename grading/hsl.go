// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/chewxy/math32"

// RGBToHSL converts linear RGB (any range; this engine works in
// scene-linear, so components are not confined to [0,1]) to hue (degrees,
// [0,360)), saturation, and lightness, for the curve-evaluation step of
// spec §4.2.
func RGBToHSL(rgb [3]float32) (h, s, l float32) {
	r, g, b := rgb[0], rgb[1], rgb[2]
	maxV := math32.Max(r, math32.Max(g, b))
	minV := math32.Min(r, math32.Min(g, b))
	l = (maxV + minV) / 2

	d := maxV - minV
	if d < 1e-7 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = d / (2 - maxV - minV)
	} else {
		s = d / (maxV + minV)
	}

	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HSLToRGB is the inverse of RGBToHSL.
func HSLToRGB(h, s, l float32) [3]float32 {
	if s < 1e-7 {
		return [3]float32{l, l, l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hn := h / 360
	return [3]float32{
		hueToRGB(p, q, hn+1.0/3),
		hueToRGB(p, q, hn),
		hueToRGB(p, q, hn-1.0/3),
	}
}
