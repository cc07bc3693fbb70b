// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"context"

	"github.com/coregrade/primaries/gradeimage"
)

// Histogram holds 256 bins x 4 channels (R, G, B, Rec.709 luma), per spec
// §4.6.
type Histogram struct {
	Bins [4][256]uint32
	Peak uint32
}

// ComputeHistogram bins every unmasked pixel of img.
func ComputeHistogram(ctx context.Context, img *gradeimage.Image, mask Mask) (*Histogram, error) {
	result := &Histogram{}

	err := forEachRow(ctx, img.Height,
		func() any { return &Histogram{} },
		func(partial any, y int) {
			h := partial.(*Histogram)
			for x := 0; x < img.Width; x++ {
				i := y*img.Width + x
				if mask.skip(i) {
					continue
				}
				px := img.At(x, y)
				bin := func(v float32) int {
					b := int(clamp01(v) * 255)
					if b > 255 {
						b = 255
					}
					return b
				}
				h.Bins[0][bin(px[0])]++
				h.Bins[1][bin(px[1])]++
				h.Bins[2][bin(px[2])]++
				h.Bins[3][bin(luma709(px[0], px[1], px[2]))]++
			}
		},
		func(partial any) {
			h := partial.(*Histogram)
			for c := 0; c < 4; c++ {
				for b := 0; b < 256; b++ {
					result.Bins[c][b] += h.Bins[c][b]
				}
			}
		},
	)
	if err != nil {
		return nil, err
	}

	for c := 0; c < 4; c++ {
		for _, v := range result.Bins[c] {
			if v > result.Peak {
				result.Peak = v
			}
		}
	}
	return result, nil
}
