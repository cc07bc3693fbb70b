// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/chewxy/math32"

var achromaticAxis = [3]float32{1 / math32.Sqrt(3), 1 / math32.Sqrt(3), 1 / math32.Sqrt(3)}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// rotateAroundAchromatic rotates v by degrees around the achromatic axis
// k=(1,1,1)/sqrt(3) using Rodrigues' rotation formula, per spec §4.2.
func rotateAroundAchromatic(v [3]float32, degrees float32) [3]float32 {
	if degrees == 0 {
		return v
	}
	theta := degrees * (math32.Pi / 180)
	cosT, sinT := math32.Cos(theta), math32.Sin(theta)
	k := achromaticAxis
	kCrossV := cross3(k, v)
	kDotV := dot3(k, v)

	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = v[i]*cosT + kCrossV[i]*sinT + k[i]*kDotV*(1-cosT)
	}
	return out
}

// ApplySaturationHueLumaMix implements spec §4.2's saturation step, hue
// rotation, and luma-mix blend, in that order:
//
//  1. out = mix((L,L,L), in, saturation)
//  2. out = rotate(out, hue) around the achromatic axis
//  3. final = mix(out, out*(L_orig/max(L_new,eps)), lumaMix)
func ApplySaturationHueLumaMix(rgb [3]float32, saturation, hueDeg, lumaMix float32) [3]float32 {
	l := luma709(rgb)
	grey := [3]float32{l, l, l}
	sat := mix3(grey, rgb, saturation)
	rotated := rotateAroundAchromatic(sat, hueDeg)

	lNew := luma709(rotated)
	rescaled := [3]float32{
		rotated[0] * (l / maxf(lNew, epsilon)),
		rotated[1] * (l / maxf(lNew, epsilon)),
		rotated[2] * (l / maxf(lNew, epsilon)),
	}
	return mix3(rotated, rescaled, lumaMix)
}

// ApplySaturation exposes the saturation-only step for callers (notably
// the §8 test property) that need it in isolation.
func ApplySaturation(rgb [3]float32, saturation float32) [3]float32 {
	l := luma709(rgb)
	grey := [3]float32{l, l, l}
	return mix3(grey, rgb, saturation)
}
