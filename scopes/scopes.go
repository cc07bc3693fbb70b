// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scopes implements the Scope Engine of spec §4.6: histogram,
// waveform, vectorscope, and CIE chromaticity passes, computed on the CPU
// with the same semantics the GPU mirror must reproduce. Each pass accepts
// an optional mask buffer to skip pixels the UI has excluded.
package scopes

import (
	"context"
	"runtime"

	"github.com/coregrade/primaries/gradeimage"
	"golang.org/x/sync/errgroup"
)

// Mask is a per-pixel u32 0/1 buffer; a nil Mask means every pixel
// participates.
type Mask []uint32

func (m Mask) skip(i int) bool {
	return m != nil && m[i] == 0
}

func luma709(r, g, b float32) float32 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// forEachRow splits [0,height) across GOMAXPROCS workers and runs fn on
// each row index, accumulating into per-worker partials merged by merge
// after all workers finish. This is the shared parallelization shape for
// every CPU scope pass (histogram, waveform, vectorscope, CIE): row-
// parallel compute with a final reduction, mirroring the Transform
// Chain's own bake/apply parallelization in package lut.
func forEachRow(ctx context.Context, height int, makePartial func() any, fn func(partial any, y int), merge func(partial any)) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]any, workers)
	g, ctx := errgroup.WithContext(ctx)
	chunk := (height + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		y0 := w * chunk
		y1 := y0 + chunk
		if y1 > height {
			y1 = height
		}
		if y0 >= y1 {
			continue
		}
		partials[w] = makePartial()
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				fn(partials[w], y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range partials {
		if p != nil {
			merge(p)
		}
	}
	return nil
}

// Data bundles the output of one full scope dispatch (spec §6's
// ScopeData outbound notification).
type Data struct {
	Histogram   *Histogram
	Waveform    *Waveform
	Vectorscope *Vectorscope
	CIE         *CIEChromaticity
}

// ComputeAll runs every enabled scope over img and returns the combined
// result. enabled controls which passes run (spec §4.7: dispatch is
// decoupled per-scope via ToggleScope); a nil/true entry means "run it".
func ComputeAll(ctx context.Context, img *gradeimage.Image, mask Mask, enabled map[string]bool, waveformHeight, vectorscopeRes, cieRes int) (*Data, error) {
	want := func(name string) bool {
		if enabled == nil {
			return true
		}
		v, ok := enabled[name]
		return !ok || v
	}

	data := &Data{}
	if want("histogram") {
		h, err := ComputeHistogram(ctx, img, mask)
		if err != nil {
			return nil, err
		}
		data.Histogram = h
	}
	if want("waveform") {
		w, err := ComputeWaveform(ctx, img, mask, waveformHeight)
		if err != nil {
			return nil, err
		}
		data.Waveform = w
	}
	if want("vectorscope") {
		v, err := ComputeVectorscope(ctx, img, mask, vectorscopeRes)
		if err != nil {
			return nil, err
		}
		data.Vectorscope = v
	}
	if want("cie") {
		c, err := ComputeCIE(ctx, img, mask, cieRes)
		if err != nil {
			return nil, err
		}
		data.CIE = c
	}
	return data, nil
}
