// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// Descriptor is the resolved, queryable description of a registered color
// space: its gamut matrices (precomputed once, never per-pixel) and white
// point.
type Descriptor struct {
	ID         ID
	Name       string
	White      Chromaticity
	RGBToXYZ   Mat3
	XYZToRGB   Mat3
	HasTransfer bool
}

var registry = buildRegistry()

func buildRegistry() map[ID]Descriptor {
	mk := func(id ID, p primaries, w Chromaticity) Descriptor {
		fwd := rgbToXYZ(p, w)
		return Descriptor{
			ID:          id,
			Name:        id.String(),
			White:       w,
			RGBToXYZ:    fwd,
			XYZToRGB:    fwd.Inverse(),
			HasTransfer: true,
		}
	}
	r := map[ID]Descriptor{
		ACES2065_1: mk(ACES2065_1, primariesAP0, WhiteD60),
		ACEScg:     mk(ACEScg, primariesAP1, WhiteD60),
		ACEScc:     mk(ACEScc, primariesAP1, WhiteD60),
		ACEScct:    mk(ACEScct, primariesAP1, WhiteD60),
		SRGB:       mk(SRGB, primariesRec709, WhiteD65),
		LinearSRGB: mk(LinearSRGB, primariesRec709, WhiteD65),
		Rec2020:    mk(Rec2020, primariesRec2020, WhiteD65),
		DCIP3:      mk(DCIP3, primariesDCIP3, WhiteD65),
		LogC3:      mk(LogC3, primariesAlexaWG, WhiteD65),
		LogC4:      mk(LogC4, primariesAlexaWG4, WhiteD65),
		SLog3:      mk(SLog3, primariesSGamut3, WhiteD65),
		RedLog3G10: mk(RedLog3G10, primariesRedWG, WhiteD65),
		VLog:       mk(VLog, primariesVGamut, WhiteD65),
	}
	return r
}

// ByID returns the descriptor for id and whether it was found.
func ByID(id ID) (Descriptor, bool) {
	d, ok := registry[id]
	return d, ok
}

// MustByID returns the descriptor for id, panicking if id is not
// registered. Reserved for call sites that have already validated id at
// the deserialization boundary (see internal/errs.InvalidCommand).
func MustByID(id ID) Descriptor {
	d, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("colorspace: unregistered id %d", id))
	}
	return d
}

// Spaces returns every registered descriptor, ordered by ID, for
// introspection (CLI listing, GPU uniform packer validation).
func Spaces() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for id := ID(0); id <= VLog; id++ {
		if d, ok := registry[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// GamutToXYZ converts rgb expressed in the given working space to CIE XYZ
// (under that space's own white point; no adaptation is applied here).
func GamutToXYZ(rgb [3]float32, space ID) [3]float32 {
	d := MustByID(space)
	return d.RGBToXYZ.MulVec3(rgb)
}

// XYZToGamut converts an XYZ tristimulus value (under space's own white
// point) to rgb in the given space.
func XYZToGamut(xyz [3]float32, space ID) [3]float32 {
	d := MustByID(space)
	return d.XYZToRGB.MulVec3(xyz)
}

// ConvertGamut converts rgb from src to dst through the CIE XYZ D65 hub,
// applying Bradford chromatic adaptation when the two spaces' white points
// differ (notably AP0/AP1, whose native white is D60).
func ConvertGamut(rgb [3]float32, src, dst ID) [3]float32 {
	sd := MustByID(src)
	dd := MustByID(dst)
	xyz := sd.RGBToXYZ.MulVec3(rgb)
	if !SameWhite(sd.White, dd.White) {
		xyz = ChromaticAdapt(sd.White, dd.White).MulVec3(xyz)
	}
	return dd.XYZToRGB.MulVec3(xyz)
}
