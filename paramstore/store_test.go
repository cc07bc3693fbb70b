// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramstore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func TestSetParamsMarksDirtyAndPublishes(t *testing.T) {
	s := New(Collaborators{})
	p := grading.Default()
	p.Contrast = 1.4
	s.Submit(Command{Kind: SetParams, SetParamsPayload: p})

	mutated := s.Drain(context.Background())
	assert.True(t, mutated)
	assert.True(t, s.ParamsDirty)
	assert.Equal(t, float32(1.4), s.Params().Contrast)

	n := <-s.Notifications()
	assert.Equal(t, ParamsUpdated, n.Kind)
}

func TestResetGradeRestoresDefault(t *testing.T) {
	s := New(Collaborators{})
	p := grading.Default()
	p.Saturation = 2
	s.Submit(Command{Kind: SetParams, SetParamsPayload: p})
	s.Drain(context.Background())
	<-s.Notifications()

	s.Submit(Command{Kind: ResetGrade})
	s.Drain(context.Background())
	<-s.Notifications()
	assert.Equal(t, float32(1), s.Params().Saturation)
}

func TestAutoBalanceWithoutSourceReportsError(t *testing.T) {
	s := New(Collaborators{})
	s.Submit(Command{Kind: AutoBalance})
	mutated := s.Drain(context.Background())
	assert.False(t, mutated)
	n := <-s.Notifications()
	assert.Equal(t, Error, n.Kind)
}

func TestLoadImageUsesCollaborator(t *testing.T) {
	img := gradeimage.New(2, 2, gradeimage.BitDepth8)
	s := New(Collaborators{
		LoadImage: func(path string) (*gradeimage.Image, error) { return img, nil },
	})
	s.Submit(Command{Kind: LoadImage, LoadImagePath: "shot.exr"})
	mutated := s.Drain(context.Background())
	assert.True(t, mutated)
	assert.True(t, s.SourceDirty)
	n := <-s.Notifications()
	assert.Equal(t, ImageLoaded, n.Kind)
	assert.Equal(t, 2, n.ImageWidth)
}

func TestExportLutUsesCollaborator(t *testing.T) {
	var buf strings.Builder
	s := New(Collaborators{
		CreateLut: func(path string) (io.WriteCloser, error) { return nopCloser{&buf}, nil },
	})
	s.Submit(Command{Kind: ExportLut, ExportLutPath: "grade.cube"})
	s.Drain(context.Background())
	assert.Contains(t, buf.String(), "LUT_3D_SIZE 33")
}

func TestToggleScopeDoesNotMarkDirty(t *testing.T) {
	s := New(Collaborators{})
	s.Submit(Command{Kind: ToggleScope, ToggleScopeKind: "waveform", ToggleScopeOn: false})
	mutated := s.Drain(context.Background())
	assert.False(t, mutated)
	assert.False(t, s.ScopeEnabled("waveform"))
	assert.True(t, s.ScopeEnabled("histogram"))
}

func TestCommandQueueDropsWhenFull(t *testing.T) {
	s := New(Collaborators{})
	for i := 0; i < 64; i++ {
		s.Submit(Command{Kind: RequestState})
	}
	s.Submit(Command{Kind: RequestState})
	n := <-s.Notifications()
	require.Equal(t, Error, n.Kind)
}
