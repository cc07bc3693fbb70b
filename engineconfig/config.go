// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engineconfig loads the engine's own startup configuration
// (default color management, LUT bake size, log format) from TOML, the
// same encoding the reference corpus's config loaders use.
package engineconfig

import (
	"io"
	"os"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/internal/errs"
	"github.com/pelletier/go-toml/v2"
)

// Config is the engine's startup configuration (spec §6's external
// interfaces are runtime commands; this is the process-level
// configuration that is out of scope for the core per spec §1's
// non-goals, but every demo entry point still needs one).
type Config struct {
	// DefaultInputSpace, DefaultWorkingSpace, DefaultOutputSpace name
	// color spaces by short name (colorspace.ID.String()). The Parameter
	// Store does not read them; a fresh store starts from grading.Default().
	DefaultInputSpace   string `toml:"default_input_space"`
	DefaultWorkingSpace string `toml:"default_working_space"`
	DefaultOutputSpace  string `toml:"default_output_space"`

	// PreviewLutSize is a preview lattice resolution (17, 33, or 65). The
	// Frame Controller does not read it; it always bakes control.BakeSize.
	PreviewLutSize int `toml:"preview_lut_size"`
	// ExportLutSize is an export lattice resolution. The Parameter Store
	// does not read it for ExportLut commands.
	ExportLutSize int `toml:"export_lut_size"`

	// LogPretty selects the text handler (true, for a terminal) over the
	// JSON handler (false, for log aggregation).
	LogPretty bool `toml:"log_pretty"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration a fresh install ships with.
func Default() Config {
	return Config{
		DefaultInputSpace:   "srgb",
		DefaultWorkingSpace: "acescg",
		DefaultOutputSpace:  "srgb",
		PreviewLutSize:      33,
		ExportLutSize:       33,
		LogPretty:           true,
		LogLevel:            "info",
	}
}

// Read decodes a Config from r.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errs.Parse("decoding engine config: %v", err)
	}
	return cfg, nil
}

// Open decodes a Config from the file at path.
func Open(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errs.Resource("opening engine config %q: %v", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes cfg to w.
func Write(cfg Config, w io.Writer) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return errs.Parse("encoding engine config: %v", err)
	}
	return nil
}

// ColorSpaceByName resolves one of the config's space name fields to a
// colorspace.ID, falling back to sRGB on an unknown name (logged, not
// fatal: a typo'd config should degrade, not crash the engine).
func ColorSpaceByName(name string) colorspace.ID {
	for _, d := range colorspace.Spaces() {
		if d.Name == name {
			return d.ID
		}
	}
	errs.Log(errs.Parse("unknown color space name %q in engine config, falling back to srgb", name))
	return colorspace.SRGB
}
