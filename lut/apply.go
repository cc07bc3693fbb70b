// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"context"
	"runtime"

	"github.com/coregrade/primaries/gradeimage"
	"golang.org/x/sync/errgroup"
)

// Apply samples l at every pixel of src and writes the result into dst.
// src and dst may be the same image only if in-place sampling is safe,
// which it is here since each pixel's output depends only on its own
// input value. Alpha passes through unchanged (spec §5.2: the LUT never
// touches alpha).
func Apply(ctx context.Context, l *Lut3D, src, dst *gradeimage.Image) error {
	if src.Width != dst.Width || src.Height != dst.Height {
		dst.Width, dst.Height = src.Width, src.Height
		dst.Pixels = make([]float32, src.Width*src.Height*4)
	}

	rows := src.Height
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		y0 := w * chunk
		y1 := y0 + chunk
		if y1 > rows {
			y1 = rows
		}
		if y0 >= y1 {
			continue
		}
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				for x := 0; x < src.Width; x++ {
					px := src.At(x, y)
					out := l.Sample([3]float32{px[0], px[1], px[2]})
					dst.Set(x, y, [4]float32{out[0], out[1], out[2], px[3]})
				}
			}
			return nil
		})
	}
	return g.Wait()
}
