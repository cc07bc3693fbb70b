// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"testing"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUniformSize(t *testing.T) {
	p := grading.Default()
	buf := PackUniform(&p)
	assert.Len(t, buf, UniformSize)
}

func TestPackUniformRoundTripsColorSpaceCodes(t *testing.T) {
	p := grading.Default()
	p.ColorManagement.InputSpace = colorspace.LogC3
	p.ColorManagement.WorkingSpace = colorspace.ACEScg
	p.ColorManagement.OutputSpace = colorspace.SRGB
	buf := PackUniform(&p)

	inputSpace := binary.LittleEndian.Uint32(buf[100:])
	workingSpace := binary.LittleEndian.Uint32(buf[104:])
	outputSpace := binary.LittleEndian.Uint32(buf[108:])
	assert.Equal(t, uint32(colorspace.LogC3), inputSpace)
	assert.Equal(t, uint32(colorspace.ACEScg), workingSpace)
	assert.Equal(t, uint32(colorspace.SRGB), outputSpace)
}

func TestPackGamutTableSizeMatchesSpaceCount(t *testing.T) {
	table := PackGamutTable()
	n := int(colorspace.VLog) + 1
	assert.Len(t, table, n*9*4*2)
}

func TestOpenDeviceSucceedsWithAdapter(t *testing.T) {
	t.Skip("requires a real or software GPU adapter; exercised in CI with llvmpipe/swiftshader")
	dev, err := OpenDevice()
	require.NoError(t, err)
	defer dev.Release()
}
