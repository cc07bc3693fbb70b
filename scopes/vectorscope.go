// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"context"

	"github.com/coregrade/primaries/gradeimage"
)

// Vectorscope is a resolution x resolution grid of (Cb, Cr) hit counts,
// per spec §4.6.
type Vectorscope struct {
	Resolution int
	Data       []uint32 // len == Resolution*Resolution
}

// rgbToYCbCr709 converts linear-ish display RGB to BT.709 YCbCr, Cb/Cr in
// [-0.5, 0.5].
func rgbToYCbCr709(r, g, b float32) (y, cb, cr float32) {
	y = luma709(r, g, b)
	cb = (b - y) / 1.8556
	cr = (r - y) / 1.5748
	return
}

// ComputeVectorscope builds the vectorscope grid at the given resolution.
func ComputeVectorscope(ctx context.Context, img *gradeimage.Image, mask Mask, resolution int) (*Vectorscope, error) {
	if resolution <= 0 {
		resolution = 256
	}
	v := &Vectorscope{Resolution: resolution, Data: make([]uint32, resolution*resolution)}

	err := forEachRow(ctx, img.Height,
		func() any {
			return &Vectorscope{Resolution: resolution, Data: make([]uint32, resolution*resolution)}
		},
		func(partial any, y int) {
			p := partial.(*Vectorscope)
			for x := 0; x < img.Width; x++ {
				i := y*img.Width + x
				if mask.skip(i) {
					continue
				}
				px := img.At(x, y)
				_, cb, cr := rgbToYCbCr709(px[0], px[1], px[2])
				gx := mapSigned(cb, resolution)
				gy := mapSigned(cr, resolution)
				if gx < 0 || gx >= resolution || gy < 0 || gy >= resolution {
					continue
				}
				p.Data[gy*resolution+gx]++
			}
		},
		func(partial any) {
			p := partial.(*Vectorscope)
			for i, c := range p.Data {
				v.Data[i] += c
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// mapSigned maps a value in [-0.5, 0.5] linearly into [0, resolution).
func mapSigned(v float32, resolution int) int {
	t := (v + 0.5)
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
