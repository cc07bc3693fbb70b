// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import "github.com/chewxy/math32"

// ApplyCDL implements the ASC CDL lift/gamma/gain/offset formula extended
// with an additive master lift, per spec §4.2:
//
//	out_c = pow(max(in_c*gain_c*gain_m + offset_c+offset_m, 0), 1/max(gamma_c*gamma_m, eps)) + lift_c+lift_m
func ApplyCDL(rgb [3]float32, lift, gammaW, gain, offset Wheel) [3]float32 {
	lifts := [3]float32{lift.R + lift.Master, lift.G + lift.Master, lift.B + lift.Master}
	gains := [3]float32{gain.R * gain.Master, gain.G * gain.Master, gain.B * gain.Master}
	offsets := [3]float32{offset.R + offset.Master, offset.G + offset.Master, offset.B + offset.Master}
	gammas := [3]float32{gammaW.R * gammaW.Master, gammaW.G * gammaW.Master, gammaW.B * gammaW.Master}

	var out [3]float32
	for i := 0; i < 3; i++ {
		base := maxf(rgb[i]*gains[i]+offsets[i], 0)
		exp := 1 / maxf(gammas[i], epsilon)
		out[i] = math32.Pow(base, exp) + lifts[i]
	}
	return out
}
