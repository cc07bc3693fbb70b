// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"context"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/gradeimage"
)

// CIEChromaticity is a resolution x resolution grid over x,y in [0, 0.8]²,
// per spec §4.6.
type CIEChromaticity struct {
	Resolution int
	Data       []uint32 // len == Resolution*Resolution
}

const cieDomainMax = 0.8
const cieEpsilon = 1e-4

// ComputeCIE converts every unmasked pixel to CIE XYZ via the sRGB matrix
// and bins its chromaticity, skipping near-black pixels where x,y is
// numerically unstable.
func ComputeCIE(ctx context.Context, img *gradeimage.Image, mask Mask, resolution int) (*CIEChromaticity, error) {
	if resolution <= 0 {
		resolution = 256
	}
	c := &CIEChromaticity{Resolution: resolution, Data: make([]uint32, resolution*resolution)}
	srgb := colorspace.MustByID(colorspace.LinearSRGB)

	err := forEachRow(ctx, img.Height,
		func() any {
			return &CIEChromaticity{Resolution: resolution, Data: make([]uint32, resolution*resolution)}
		},
		func(partial any, y int) {
			p := partial.(*CIEChromaticity)
			for x := 0; x < img.Width; x++ {
				i := y*img.Width + x
				if mask.skip(i) {
					continue
				}
				px := img.At(x, y)
				xyz := srgb.RGBToXYZ.MulVec3([3]float32{px[0], px[1], px[2]})
				sum := xyz[0] + xyz[1] + xyz[2]
				if sum < cieEpsilon {
					continue
				}
				cx := xyz[0] / sum
				cy := xyz[1] / sum
				gx := mapUnsignedDomain(cx, resolution)
				gy := mapUnsignedDomain(cy, resolution)
				if gx < 0 || gx >= resolution || gy < 0 || gy >= resolution {
					continue
				}
				p.Data[gy*resolution+gx]++
			}
		},
		func(partial any) {
			p := partial.(*CIEChromaticity)
			for i, v := range p.Data {
				c.Data[i] += v
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func mapUnsignedDomain(v float32, resolution int) int {
	t := v / cieDomainMax
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	idx := int(t * float32(resolution))
	if idx >= resolution {
		idx = resolution - 1
	}
	return idx
}
