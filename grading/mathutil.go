// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/chewxy/math32"

// epsilon guards divisions and powers against zero/negative inputs per
// spec §7 (numerical edge cases must clamp, never propagate NaN).
const epsilon = 1e-4

func smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mix(a, b, t float32) float32 { return a + (b-a)*t }

func mix3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{mix(a[0], b[0], t), mix(a[1], b[1], t), mix(a[2], b[2], t)}
}

// luma709 returns Rec.709 relative luma, used by shadows/highlights and by
// saturation/hue/luma-mix per spec §4.2.
func luma709(rgb [3]float32) float32 {
	return 0.2126*rgb[0] + 0.7152*rgb[1] + 0.0722*rgb[2]
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
