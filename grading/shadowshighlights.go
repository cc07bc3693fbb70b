// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

// ApplyShadowsHighlights implements spec §4.2's shadow/highlight lift,
// using a fixed smoothstep(0,0.5)/smoothstep(0.5,1) falloff (REDESIGN
// FLAG: not a soft-knee curve — see spec §9's open question, resolved in
// favor of the smoothstep shape it specifies).
func ApplyShadowsHighlights(rgb [3]float32, shadows, highlights float32) [3]float32 {
	l := luma709(rgb)
	ws := 1 - smoothstep(0, 0.5, l)
	wh := smoothstep(0.5, 1, l)
	weight := shadows*ws + highlights*wh
	return [3]float32{
		rgb[0] + rgb[0]*weight,
		rgb[1] + rgb[1]*weight,
		rgb[2] + rgb[2]*weight,
	}
}
