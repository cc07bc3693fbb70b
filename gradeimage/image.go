// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradeimage defines the scene-linear image buffer the engine
// operates on internally (spec §3's GradingImage). Decoding from PNG/JPEG/
// EXR into this representation is an external collaborator's job per spec
// §1; this package only owns the in-memory contract.
package gradeimage

// BitDepth is UI-display metadata describing the precision of the source
// material before it was converted to the engine's internal f32 linear
// representation. It never affects grading math.
type BitDepth int

const (
	BitDepthUnknown BitDepth = iota
	BitDepth8
	BitDepth10
	BitDepth12
	BitDepth16
	BitDepthFloat
)

// Image is a width*height grid of 4-channel (RGBA) linear-light f32
// pixels, row-major, alpha un-premultiplied. The engine always operates in
// f32 linear internally regardless of the bit depth the source was
// encoded at.
type Image struct {
	Width, Height int
	Pixels        []float32 // len == Width*Height*4
	SourceDepth   BitDepth
}

// New allocates a zeroed image of the given size (alpha 0, not 1 — callers
// that want an opaque canvas should fill alpha explicitly).
func New(width, height int, depth BitDepth) *Image {
	return &Image{
		Width:       width,
		Height:      height,
		Pixels:      make([]float32, width*height*4),
		SourceDepth: depth,
	}
}

// At returns the RGBA quadruple at (x,y).
func (img *Image) At(x, y int) [4]float32 {
	i := (y*img.Width + x) * 4
	p := img.Pixels
	return [4]float32{p[i], p[i+1], p[i+2], p[i+3]}
}

// Set writes the RGBA quadruple at (x,y).
func (img *Image) Set(x, y int, rgba [4]float32) {
	i := (y*img.Width + x) * 4
	p := img.Pixels
	p[i], p[i+1], p[i+2], p[i+3] = rgba[0], rgba[1], rgba[2], rgba[3]
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	c := &Image{Width: img.Width, Height: img.Height, SourceDepth: img.SourceDepth}
	c.Pixels = append([]float32(nil), img.Pixels...)
	return c
}
