// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace implements the color-management math of the grading
// core: gamut matrices, transfer functions, and Bradford chromatic
// adaptation, all routed through CIE XYZ (D65 hub) per the fixed registry
// of color spaces the GPU bake shader and the CPU reference both switch on.
package colorspace

// ID is a tagged, fixed small-integer color-space code. The integer values
// are part of the GPU contract: the bake shader switches on them, so they
// must never be renumbered.
type ID uint32

const (
	ACES2065_1 ID = 0 // AP0 primaries, linear
	ACEScg     ID = 1 // AP1 primaries, linear
	ACEScc     ID = 2 // AP1 primaries, ACEScc log transfer
	ACEScct    ID = 3 // AP1 primaries, ACEScct log transfer (toe near black)
	SRGB       ID = 4 // Rec.709 primaries, sRGB transfer
	LinearSRGB ID = 5 // Rec.709 primaries, linear
	Rec2020    ID = 6 // Rec.2020 primaries, linear
	DCIP3      ID = 7 // DCI-P3 primaries, linear
	LogC3      ID = 8 // ARRI Wide Gamut, LogC3 (EI 800)
	LogC4      ID = 9 // ARRI Wide Gamut 4, LogC4
	SLog3      ID = 10 // Sony S-Gamut3, S-Log3
	RedLog3G10 ID = 11 // RED Wide Gamut RGB, Log3G10
	VLog       ID = 12 // Panasonic V-Gamut, V-Log

	// Custom is a reserved slot for a caller-registered space; it is never
	// produced by the built-in registry but is reserved so GPU uniform
	// packing has a stable "out of range" sentinel distinct from the codes
	// above.
	Custom ID = 13
)

// Valid reports whether id names one of the thirteen built-in spaces.
func (id ID) Valid() bool { return id <= VLog }

// String returns the short name used in CLI output and error messages.
func (id ID) String() string {
	if n, ok := idNames[id]; ok {
		return n
	}
	return "unknown"
}

var idNames = map[ID]string{
	ACES2065_1: "aces2065-1",
	ACEScg:     "acescg",
	ACEScc:     "acescc",
	ACEScct:    "acescct",
	SRGB:       "srgb",
	LinearSRGB: "linear-srgb",
	Rec2020:    "rec2020",
	DCIP3:      "dci-p3",
	LogC3:      "logc3",
	LogC4:      "logc4",
	SLog3:      "slog3",
	RedLog3G10: "redlog3g10",
	VLog:       "vlog",
	Custom:     "custom",
}
