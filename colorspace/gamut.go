// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "github.com/chewxy/math32"

// Chromaticity is a CIE 1931 (x,y) chromaticity coordinate.
type Chromaticity struct{ X, Y float32 }

// XYZ returns the tristimulus value of this chromaticity normalized to
// Y=1, matching the construction used throughout the reference corpus
// (e.g. dominikh-go-color's Chromaticity.XYZ and the Illuminant helpers in
// soypat/colorspace).
func (c Chromaticity) XYZ() [3]float32 {
	return [3]float32{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

// Standard white points.
var (
	WhiteD65 = Chromaticity{0.3127, 0.3290}
	WhiteD60 = Chromaticity{0.32168, 0.33767}
)

// primaries holds the (x,y) chromaticities of a gamut's three primaries.
type primaries struct {
	rx, ry float32
	gx, gy float32
	bx, by float32
}

// rgbToXYZ builds the forward RGB->XYZ matrix for a set of primaries and a
// white point, by the standard construction: solve for per-primary scale
// factors such that the weighted sum of primaries reproduces the white
// point's tristimulus value, then scale the primary-chromaticity matrix by
// those factors. This guarantees the forward matrix and its inverse
// round-trip the white point and primaries to machine precision, which is
// what spec §4.1 requires (round-trip error <= 1e-5).
func rgbToXYZ(p primaries, w Chromaticity) Mat3 {
	// Columns are XYZ of each primary at unit chromaticity (Y=1 per primary
	// before scaling).
	xr, yr := p.rx, p.ry
	xg, yg := p.gx, p.gy
	xb, yb := p.bx, p.by

	unscaled := Mat3{
		xr / yr, xg / yg, xb / yb,
		1, 1, 1,
		(1 - xr - yr) / yr, (1 - xg - yg) / yg, (1 - xb - yb) / yb,
	}
	wXYZ := w.XYZ()
	s := unscaled.Inverse().MulVec3(wXYZ)

	return Mat3{
		unscaled[0] * s[0], unscaled[1] * s[1], unscaled[2] * s[2],
		unscaled[3] * s[0], unscaled[4] * s[1], unscaled[5] * s[2],
		unscaled[6] * s[0], unscaled[7] * s[1], unscaled[8] * s[2],
	}
}

// Gamut primary chromaticities for the thirteen registry entries.
var (
	primariesAP0       = primaries{0.7347, 0.2653, 0.0000, 1.0000, 0.0001, -0.0770}
	primariesAP1       = primaries{0.7130, 0.2930, 0.1650, 0.8300, 0.1280, 0.0440}
	primariesRec709    = primaries{0.6400, 0.3300, 0.3000, 0.6000, 0.1500, 0.0600}
	primariesRec2020   = primaries{0.7080, 0.2920, 0.1700, 0.7970, 0.1310, 0.0460}
	primariesDCIP3     = primaries{0.6800, 0.3200, 0.2650, 0.6900, 0.1500, 0.0600}
	primariesAlexaWG   = primaries{0.6840, 0.3130, 0.2210, 0.8480, 0.0861, -0.1020}
	primariesAlexaWG4  = primaries{0.7347, 0.2653, 0.1424, 0.8576, 0.0991, -0.0308}
	primariesSGamut3   = primaries{0.7300, 0.2800, 0.1400, 0.8550, 0.1000, -0.0500}
	primariesRedWG     = primaries{0.7803, 0.3043, 0.1217, 1.0462, 0.0955, -0.0630}
	primariesVGamut    = primaries{0.7300, 0.2800, 0.1650, 0.8400, 0.1000, -0.0300}
)

// bradfordToCone and bradfordFromCone convert between CIE XYZ and the LMS
// cone-response space used for chromatic adaptation, per the Bradford CAT
// (grounded on the Bradford matrix used throughout the corpus, e.g.
// dominikh-go-color's CAT.ToCone/FromCone).
var (
	bradfordToCone = Mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordFromCone = bradfordToCone.Inverse()
)

// ChromaticAdapt returns the 3x3 matrix that adapts an XYZ tristimulus
// value computed under src white to its equivalent under dst white, via
// the Bradford cone-response transform. When src == dst the identity
// matrix is returned (callers should still apply it; the cost of a no-op
// multiply is cheap compared to a branch in the hot bake loop).
func ChromaticAdapt(src, dst Chromaticity) Mat3 {
	srcXYZ := src.XYZ()
	dstXYZ := dst.XYZ()
	srcCone := bradfordToCone.MulVec3(srcXYZ)
	dstCone := bradfordToCone.MulVec3(dstXYZ)

	scale := Mat3{
		dstCone[0] / srcCone[0], 0, 0,
		0, dstCone[1] / srcCone[1], 0,
		0, 0, dstCone[2] / srcCone[2],
	}
	return bradfordFromCone.MulMat3(scale).MulMat3(bradfordToCone)
}

// SameWhite reports whether two chromaticities are close enough that no
// adaptation is needed, within the tolerance the spec requires for
// identity-transform exactness (1e-5 per channel on round trips).
func SameWhite(a, b Chromaticity) bool {
	return math32.Abs(a.X-b.X) < 1e-6 && math32.Abs(a.Y-b.Y) < 1e-6
}
