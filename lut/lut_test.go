// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bytes"
	"context"
	"testing"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleAtLatticePointsIsExact(t *testing.T) {
	l := New(Size17)
	n := int(Size17)
	for r := 0; r < n; r++ {
		for g := 0; g < n; g++ {
			for b := 0; b < n; b++ {
				l.Set(r, g, b, [3]float32{float32(r), float32(g), float32(b)})
			}
		}
	}
	max := float32(n - 1)
	for r := 0; r < n; r++ {
		rgb := [3]float32{float32(r) / max, 0.5, 0.25}
		got := l.Sample(rgb)
		assert.InDelta(t, float32(r), got[0], 1e-4)
	}
}

func TestBakeIdentityParamsIsNearIdentity(t *testing.T) {
	p := grading.Default()
	l, err := Bake(context.Background(), &p, Size17, 0)
	require.NoError(t, err)

	n := int(Size17)
	max := float32(n - 1)
	for _, idx := range [][3]int{{0, 0, 0}, {n / 2, n / 2, n / 2}, {n - 1, n - 1, n - 1}} {
		expect := [3]float32{float32(idx[0]) / max, float32(idx[1]) / max, float32(idx[2]) / max}
		got := l.At(idx[0], idx[1], idx[2])
		for i := range expect {
			assert.InDelta(t, expect[i], got[i], 1e-3)
		}
	}
}

func TestApplySamplesEveryPixel(t *testing.T) {
	p := grading.Default()
	p.Gain = grading.Wheel{R: 1, G: 1, B: 1, Master: 2}
	l, err := Bake(context.Background(), &p, Size17, 0)
	require.NoError(t, err)

	src := gradeimage.New(4, 2, gradeimage.BitDepthFloat)
	for i := range src.Pixels {
		src.Pixels[i] = 0.25
	}
	dst := gradeimage.New(1, 1, gradeimage.BitDepthUnknown)
	require.NoError(t, Apply(context.Background(), l, src, dst))
	assert.Equal(t, src.Width, dst.Width)
	assert.Equal(t, src.Height, dst.Height)

	px := dst.At(0, 0)
	// sRGB in and out: srgb(2*linear(0.25)) ~= 0.352.
	assert.InDelta(t, 0.352, px[0], 0.02)
}

func TestCubeRoundTrip(t *testing.T) {
	p := grading.Default()
	p.Saturation = 1.2
	l, err := Bake(context.Background(), &p, Size17, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCube(&buf, l, "test"))

	read, err := ReadCube(&buf)
	require.NoError(t, err)
	require.Equal(t, l.Size, read.Size)
	for i := range l.Table {
		assert.InDelta(t, l.Table[i], read.Table[i], 1e-5)
	}
}

func TestReadCubeRejectsMismatchedSampleCount(t *testing.T) {
	bad := "LUT_3D_SIZE 17\n0 0 0\n1 1 1\n"
	_, err := ReadCube(bytes.NewBufferString(bad))
	require.Error(t, err)
}

func TestReadCubeRejects1DShaperLut(t *testing.T) {
	bad := "LUT_1D_SIZE 256\n"
	_, err := ReadCube(bytes.NewBufferString(bad))
	require.Error(t, err)
}
