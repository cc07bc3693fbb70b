// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "github.com/chewxy/math32"

// Mat3 is a row-major 3x3 matrix used for gamut<->XYZ conversions and
// Bradford chromatic adaptation. It is a value type, cheap to copy.
type Mat3 [9]float32

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// MulVec3 returns m*v.
func (m Mat3) MulVec3(v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// MulMat3 returns m*n (matrix product, m applied after n).
func (m Mat3) MulMat3(n Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[row*3+k] * n[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

// Inverse returns the matrix inverse of m via the cofactor/adjugate
// method, which is exact enough in f32 for the 3x3 gamut matrices this
// package deals with (determinants are bounded well away from zero for any
// physically realizable set of primaries).
func (m Mat3) Inverse() Mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	det := a*A + b*B + c*C
	if math32.Abs(det) < 1e-20 {
		return Identity3
	}
	invDet := 1 / det
	return Mat3{
		A * invDet, D * invDet, G * invDet,
		B * invDet, E * invDet, H * invDet,
		C * invDet, F * invDet, I * invDet,
	}
}
