// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scopes

import (
	"context"
	"testing"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, r, g, b float32) *gradeimage.Image {
	img := gradeimage.New(w, h, gradeimage.BitDepthFloat)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, [4]float32{r, g, b, 1})
		}
	}
	return img
}

func TestHistogramBinsSolidImage(t *testing.T) {
	img := solidImage(8, 8, 0.5, 0.5, 0.5)
	h, err := ComputeHistogram(context.Background(), img, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(64), h.Bins[0][127])
	assert.Equal(t, uint32(64), h.Peak)
}

func TestHistogramRespectsMask(t *testing.T) {
	img := solidImage(4, 4, 1, 1, 1)
	mask := make(Mask, 16)
	for i := 0; i < 8; i++ {
		mask[i] = 1
	}
	h, err := ComputeHistogram(context.Background(), img, mask)
	require.NoError(t, err)
	assert.Equal(t, uint32(8), h.Bins[0][255])
}

func TestWaveformShape(t *testing.T) {
	img := solidImage(10, 5, 0.25, 0.5, 0.75)
	w, err := ComputeWaveform(context.Background(), img, nil, 64)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Width)
	assert.Equal(t, 64, w.Height)
	total := 0
	for _, v := range w.Data[0] {
		total += int(v)
	}
	assert.Equal(t, 50, total)
}

func TestVectorscopeAchromaticMapsNearCenter(t *testing.T) {
	img := solidImage(4, 4, 0.5, 0.5, 0.5)
	v, err := ComputeVectorscope(context.Background(), img, nil, 100)
	require.NoError(t, err)
	center := 50
	var total uint32
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			total += v.Data[(center+dy)*100+(center+dx)]
		}
	}
	assert.Equal(t, uint32(16), total)
}

func TestCIESkipsNearBlack(t *testing.T) {
	img := solidImage(2, 2, 0, 0, 0)
	c, err := ComputeCIE(context.Background(), img, nil, 64)
	require.NoError(t, err)
	var total uint32
	for _, v := range c.Data {
		total += v
	}
	assert.Equal(t, uint32(0), total)
}

func TestComputeAllRespectsEnabledMap(t *testing.T) {
	img := solidImage(4, 4, 0.3, 0.3, 0.3)
	data, err := ComputeAll(context.Background(), img, nil, map[string]bool{"waveform": false}, 32, 32, 32)
	require.NoError(t, err)
	assert.NotNil(t, data.Histogram)
	assert.Nil(t, data.Waveform)
	assert.NotNil(t, data.Vectorscope)
	assert.NotNil(t, data.CIE)
}

func TestColorizeHistogramProducesImage(t *testing.T) {
	h, err := ComputeHistogram(context.Background(), solidImage(4, 4, 0.5, 0.5, 0.5), nil)
	require.NoError(t, err)
	img := ColorizeHistogram(h, 0, 32)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}
