// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"context"
	"runtime"

	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/transform"
	"golang.org/x/sync/errgroup"
)

// Bake evaluates the Transform Chain at every lattice point of a fresh
// Lut3D of the given size, per spec §5.1. Curves are pre-baked to a 1D
// table once (bakedCurveSamples) rather than spline-evaluated per lattice
// point, matching the GPU pass's use of a curve texture. The R-axis planes
// are independent so the work is split across GOMAXPROCS workers with
// errgroup, each owning a contiguous range of r-planes.
func Bake(ctx context.Context, params *grading.GradingParams, size Size, bakedCurveSamples int) (*Lut3D, error) {
	l := New(size)
	n := int(size)
	resolved := transform.Resolve(params, bakedCurveSamples)
	max := float32(n - 1)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		r0 := w * chunk
		r1 := r0 + chunk
		if r1 > n {
			r1 = n
		}
		if r0 >= r1 {
			continue
		}
		g.Go(func() error {
			for r := r0; r < r1; r++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				rv := float32(r) / max
				for gi := 0; gi < n; gi++ {
					gv := float32(gi) / max
					for b := 0; b < n; b++ {
						bv := float32(b) / max
						out := resolved.Evaluate([3]float32{rv, gv, bv})
						l.Set(r, gi, b, out)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return l, nil
}
