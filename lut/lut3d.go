// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lut implements the 3D-LUT bake and apply pipeline of spec §5:
// baking the Transform Chain into a dense cubic lattice once per grade
// change, then sampling it with trilinear interpolation on every frame.
// The same lattice and sampling rule are what the GPU pipeline (package
// gpu) must reproduce for CPU/GPU parity.
package lut

// Size is a supported lattice resolution. The engine only ever builds
// power-of-two-plus-one cubes so the GPU texture sampler's normalized
// coordinates land exactly on lattice points at the corners.
type Size int

const (
	Size17 Size = 17
	Size33 Size = 33
	Size65 Size = 65
)

// Valid reports whether s is one of the supported lattice resolutions.
func (s Size) Valid() bool {
	switch s {
	case Size17, Size33, Size65:
		return true
	}
	return false
}

// Lut3D is a dense N x N x N lattice of RGB triples, stored in a flat
// flat buffer indexed table[((b*N+g)*N+r)*3 : +3] (red varies fastest),
// matching the ordering the GPU bake shader writes into its storage buffer.
type Lut3D struct {
	Size  Size
	Table []float32 // len == Size^3 * 3
}

// New allocates a zeroed lattice of the given size.
func New(size Size) *Lut3D {
	n := int(size)
	return &Lut3D{Size: size, Table: make([]float32, n*n*n*3)}
}

func (l *Lut3D) index(r, g, b int) int {
	n := int(l.Size)
	return ((b*n+g)*n + r) * 3
}

// At returns the lattice sample at integer coordinates (r,g,b).
func (l *Lut3D) At(r, g, b int) [3]float32 {
	i := l.index(r, g, b)
	return [3]float32{l.Table[i], l.Table[i+1], l.Table[i+2]}
}

// Set writes the lattice sample at integer coordinates (r,g,b).
func (l *Lut3D) Set(r, g, b int, v [3]float32) {
	i := l.index(r, g, b)
	l.Table[i], l.Table[i+1], l.Table[i+2] = v[0], v[1], v[2]
}

// Sample performs trilinear interpolation of rgb (each component expected
// in [0,1], clamped otherwise) against the lattice. This is the CPU
// reference sampling rule; the GPU apply pass must match it bit-for-bit
// modulo hardware texture-filter rounding (spec §5.3).
func (l *Lut3D) Sample(rgb [3]float32) [3]float32 {
	n := int(l.Size)
	max := float32(n - 1)

	coord := [3]float32{
		clamp01(rgb[0]) * max,
		clamp01(rgb[1]) * max,
		clamp01(rgb[2]) * max,
	}

	r0 := int(coord[0])
	g0 := int(coord[1])
	b0 := int(coord[2])
	r1, g1, b1 := minInt(r0+1, n-1), minInt(g0+1, n-1), minInt(b0+1, n-1)

	fr := coord[0] - float32(r0)
	fg := coord[1] - float32(g0)
	fb := coord[2] - float32(b0)

	c000 := l.At(r0, g0, b0)
	c100 := l.At(r1, g0, b0)
	c010 := l.At(r0, g1, b0)
	c110 := l.At(r1, g1, b0)
	c001 := l.At(r0, g0, b1)
	c101 := l.At(r1, g0, b1)
	c011 := l.At(r0, g1, b1)
	c111 := l.At(r1, g1, b1)

	c00 := lerp3(c000, c100, fr)
	c10 := lerp3(c010, c110, fr)
	c01 := lerp3(c001, c101, fr)
	c11 := lerp3(c011, c111, fr)

	c0 := lerp3(c00, c10, fg)
	c1 := lerp3(c01, c11, fg)

	return lerp3(c0, c1, fb)
}

func lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
