// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"context"

	"github.com/coregrade/primaries/gradeimage"
)

// Waveform holds a width x height x 3 per-channel count grid, per spec
// §4.6: for a pixel at column x, channel c's value maps to a row bin, and
// data[c][x*height+bin] is incremented.
type Waveform struct {
	Width, Height int
	Data          [3][]uint32 // each len == Width*Height
}

// ComputeWaveform builds the waveform grid at the given row resolution
// (independent of img.Height; the waveform display is typically much
// shorter than the source image).
func ComputeWaveform(ctx context.Context, img *gradeimage.Image, mask Mask, height int) (*Waveform, error) {
	if height <= 0 {
		height = 256
	}
	w := &Waveform{Width: img.Width, Height: height}
	for c := 0; c < 3; c++ {
		w.Data[c] = make([]uint32, img.Width*height)
	}

	err := forEachRow(ctx, img.Height,
		func() any {
			p := &Waveform{Width: img.Width, Height: height}
			for c := 0; c < 3; c++ {
				p.Data[c] = make([]uint32, img.Width*height)
			}
			return p
		},
		func(partial any, y int) {
			p := partial.(*Waveform)
			for x := 0; x < img.Width; x++ {
				i := y*img.Width + x
				if mask.skip(i) {
					continue
				}
				px := img.At(x, y)
				for c := 0; c < 3; c++ {
					bin := int(clamp01(px[c]) * float32(height-1))
					if bin > height-1 {
						bin = height - 1
					}
					p.Data[c][x*height+bin]++
				}
			}
		},
		func(partial any) {
			p := partial.(*Waveform)
			for c := 0; c < 3; c++ {
				for i, v := range p.Data[c] {
					w.Data[c][i] += v
				}
			}
		},
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
