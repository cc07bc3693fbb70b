// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grlog configures the process-wide [log/slog] logger used by the
// rest of the engine. It is deliberately thin: the engine never defines its
// own logging interface, it only decides how slog is configured.
package grlog

import (
	"io"
	"log/slog"
	"os"
)

// Level controls the minimum level logged; it defaults to Info.
var Level = new(slog.LevelVar)

// Init installs the process-wide slog handler. Pretty selects a
// human-readable text handler (suited to an interactive terminal); when
// false a JSON handler is installed (suited to log aggregation). Init is
// idempotent and safe to call multiple times; the last call wins.
func Init(w io.Writer, pretty bool) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: Level}
	var h slog.Handler
	if pretty {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func init() {
	Init(os.Stderr, true)
}
