// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/chewxy/math32"

// ApplyContrast implements spec §4.2's pivoted contrast:
//
//	out = pivot * pow(max(in/pivot, eps), contrast) per channel
//
// contrast == 1 is an early-exit identity, and the pivot is always
// preserved exactly: ApplyContrast({pivot,pivot,pivot}, c, pivot) ==
// {pivot,pivot,pivot} for any c.
func ApplyContrast(rgb [3]float32, contrast, pivot float32) [3]float32 {
	if contrast == 1 {
		return rgb
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = pivot * math32.Pow(maxf(rgb[i]/pivot, epsilon), contrast)
	}
	return out
}
