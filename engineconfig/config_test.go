// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engineconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregrade/primaries/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOverridesDefaults(t *testing.T) {
	src := `
preview_lut_size = 65
log_pretty = false
log_level = "debug"
`
	cfg, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 65, cfg.PreviewLutSize)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "srgb", cfg.DefaultInputSpace)
}

func TestWriteReadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.PreviewLutSize = 17
	var buf bytes.Buffer
	require.NoError(t, Write(cfg, &buf))

	read, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 17, read.PreviewLutSize)
}

func TestColorSpaceByNameResolvesKnownName(t *testing.T) {
	assert.Equal(t, colorspace.LogC3, ColorSpaceByName("logc3"))
}

func TestColorSpaceByNameFallsBackOnUnknown(t *testing.T) {
	assert.Equal(t, colorspace.SRGB, ColorSpaceByName("not-a-space"))
}
