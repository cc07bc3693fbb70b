// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferRoundTrip(t *testing.T) {
	spaces := []ID{ACES2065_1, ACEScg, ACEScc, ACEScct, SRGB, LinearSRGB,
		Rec2020, DCIP3, LogC3, LogC4, SLog3, RedLog3G10, VLog}
	for _, sp := range spaces {
		sp := sp
		t.Run(sp.String(), func(t *testing.T) {
			for _, v := range []float32{0, 0.01, 0.1, 0.18, 0.435, 0.7, 1.0} {
				lin := ToLinear(v, sp)
				back := FromLinear(lin, sp)
				assert.InDelta(t, v, back, 1e-4, "space %s value %v", sp, v)
			}
		})
	}
}

func TestSRGBKnownPoints(t *testing.T) {
	assert.InDelta(t, float32(0), srgbToLinear(0), 1e-6)
	assert.InDelta(t, float32(1), srgbToLinear(1), 1e-6)
	assert.InDelta(t, float32(1), srgbFromLinear(1), 1e-6)
}

func TestGamutRoundTrip(t *testing.T) {
	spaces := Spaces()
	probe := [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {0.2, 0.5, 0.8}}
	for _, a := range spaces {
		for _, b := range spaces {
			for _, p := range probe {
				xyz := GamutToXYZ(p, a.ID)
				if !SameWhite(a.White, b.White) {
					xyz = ChromaticAdapt(a.White, b.White).MulVec3(xyz)
				}
				rgbB := XYZToGamut(xyz, b.ID)

				xyzBack := GamutToXYZ(rgbB, b.ID)
				if !SameWhite(a.White, b.White) {
					xyzBack = ChromaticAdapt(b.White, a.White).MulVec3(xyzBack)
				}
				rgbBack := XYZToGamut(xyzBack, a.ID)

				for i := 0; i < 3; i++ {
					assert.InDelta(t, p[i], rgbBack[i], 1e-5, "a=%s b=%s", a.Name, b.Name)
				}
			}
		}
	}
}

func TestWhitePointSelfAdaptIsIdentity(t *testing.T) {
	m := ChromaticAdapt(WhiteD65, WhiteD65)
	for i, v := range Identity3 {
		assert.InDelta(t, v, m[i], 1e-5)
	}
}
