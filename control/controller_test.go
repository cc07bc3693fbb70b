// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"context"
	"testing"
	"time"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/paramstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *gradeimage.Image {
	img := gradeimage.New(4, 4, gradeimage.BitDepthFloat)
	for i := range img.Pixels {
		img.Pixels[i] = 0.4
	}
	return img
}

func TestTickBakesAndAppliesOnFirstSource(t *testing.T) {
	store := paramstore.New(paramstore.Collaborators{
		LoadImage: func(path string) (*gradeimage.Image, error) { return testImage(), nil },
	})
	c := New(store)

	store.Submit(paramstore.Command{Kind: paramstore.LoadImage, LoadImagePath: "x"})
	require.NoError(t, c.Tick(context.Background(), time.Unix(0, 0)))
	assert.NotNil(t, c.GradedFrame())
	assert.NotNil(t, c.ScopeData())
}

func TestTickIsNoOpWithNothingDirty(t *testing.T) {
	store := paramstore.New(paramstore.Collaborators{})
	c := New(store)
	require.NoError(t, c.Tick(context.Background(), time.Unix(0, 0)))
	assert.Nil(t, c.GradedFrame())
	assert.Nil(t, c.CurrentLut())
}

func TestTickRecomputesScopesOnTickInterval(t *testing.T) {
	store := paramstore.New(paramstore.Collaborators{
		LoadImage: func(path string) (*gradeimage.Image, error) { return testImage(), nil },
	})
	c := New(store)
	store.Submit(paramstore.Command{Kind: paramstore.LoadImage, LoadImagePath: "x"})
	require.NoError(t, c.Tick(context.Background(), time.Unix(0, 0)))
	first := c.ScopeData()

	require.NoError(t, c.Tick(context.Background(), time.Unix(0, 0).Add(ScopeTickRate+time.Millisecond)))
	second := c.ScopeData()
	assert.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestGrossGradeAffectsGradedFrame(t *testing.T) {
	store := paramstore.New(paramstore.Collaborators{
		LoadImage: func(path string) (*gradeimage.Image, error) { return testImage(), nil },
	})
	c := New(store)
	store.Submit(paramstore.Command{Kind: paramstore.LoadImage, LoadImagePath: "x"})
	require.NoError(t, c.Tick(context.Background(), time.Unix(0, 0)))
	baseline := c.GradedFrame().At(0, 0)

	p := grading.Default()
	p.Gain = grading.Wheel{R: 1, G: 1, B: 1, Master: 2}
	store.Submit(paramstore.Command{Kind: paramstore.SetParams, SetParamsPayload: p})
	require.NoError(t, c.Tick(context.Background(), time.Unix(1, 0)))
	graded := c.GradedFrame().At(0, 0)

	assert.NotEqual(t, baseline[0], graded[0])
}
