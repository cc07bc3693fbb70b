// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// heatColor maps a normalized intensity in [0,1] to an HSV color whose hue
// sweeps from 240 (blue) to 0 (red) while value rises from 0.15 to 1, for
// rendering scope grids as PNGs
// outside the UI transport (diagnostics, CLI scope-dump).
func heatColor(t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := colorful.Hsv(240-240*t, 1, math.Min(1, 0.15+0.85*t))
	return c
}

// ColorizeGrid renders a flat row-major uint32 count grid as a heat-mapped
// image, normalizing against the grid's own peak count.
func ColorizeGrid(data []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var peak uint32
	for _, v := range data {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			t := float64(v) / float64(peak)
			img.Set(x, y, heatColor(t))
		}
	}
	return img
}

// ColorizeHistogram renders one channel of a Histogram as a simple bar
// chart image of the given height, for CLI diagnostics.
func ColorizeHistogram(h *Histogram, channel, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, height))
	if h.Peak == 0 {
		return img
	}
	for x := 0; x < 256; x++ {
		v := h.Bins[channel][x]
		barHeight := int(float64(v) / float64(h.Peak) * float64(height))
		for y := 0; y < barHeight; y++ {
			img.Set(x, height-1-y, heatColor(float64(v)/float64(h.Peak)))
		}
	}
	return img
}
