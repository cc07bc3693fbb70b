// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "github.com/chewxy/math32"

// Transfer holds a matched encode (linear -> non-linear) / decode
// (non-linear -> linear) pair. Every supported transfer function is
// published as a piecewise linear-segment + power/log-segment formula per
// spec §4.1; the cut points, slopes, and offsets below are the published
// constants for each camera system. The WGSL bake shader in gpu/shaders.go
// carries a hand-transcribed copy of them.
type Transfer struct {
	ToLinear   func(v float32) float32
	FromLinear func(v float32) float32
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

// --- sRGB (IEC 61966-2-1) ---

func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

func srgbFromLinear(v float32) float32 {
	if v <= 0.0031308 {
		return clamp01(12.92 * v)
	}
	return clamp01(1.055*math32.Pow(v, 1/2.4) - 0.055)
}

// --- Linear (identity transfer) ---

func identity(v float32) float32 { return v }

// --- ACEScc (Academy S-2014-003) ---

const acesccA = 9.72
const acesccB = 17.52

func acesccFromLinear(lin float32) float32 {
	switch {
	case lin <= 0:
		return (math32.Log2(math32.Pow(2, -16)) + acesccA) / acesccB
	case lin < math32.Pow(2, -15):
		return (math32.Log2(math32.Pow(2, -16)+lin*0.5) + acesccA) / acesccB
	default:
		return (math32.Log2(lin) + acesccA) / acesccB
	}
}

func acesccToLinear(out float32) float32 {
	const lowBreak = (acesccA - 15) / acesccB
	switch {
	case out < lowBreak:
		return (math32.Pow(2, out*acesccB-acesccA) - math32.Pow(2, -16)) * 2
	case out < (math32.Log2(65504)+acesccA)/acesccB:
		return math32.Pow(2, out*acesccB-acesccA)
	default:
		return 65504
	}
}

// --- ACEScct (Academy S-2016-001), adds a linear toe near black ---

const acesctXBrk = 0.0078125 // 2^-7
const acesctA = 10.5402377416545
const acesctB = 0.0729055341958355
const acesctYBrk = 0.155251141552511

func acescctFromLinear(lin float32) float32 {
	if lin <= acesctXBrk {
		return acesctA*lin + acesctB
	}
	return (math32.Log2(lin) + acesccA) / acesccB
}

func acescctToLinear(out float32) float32 {
	if out <= acesctYBrk {
		return (out - acesctB) / acesctA
	}
	return math32.Pow(2, out*acesccB-acesccA)
}

// --- ARRI LogC3 (EI 800) ---

const logc3Cut = 0.010591
const logc3A = 5.555556
const logc3B = 0.052272
const logc3C = 0.247190
const logc3D = 0.385537
const logc3E = 5.367655
const logc3F = 0.092809

func logc3FromLinear(lin float32) float32 {
	if lin > logc3Cut {
		return logc3C*math32.Log10(logc3A*lin+logc3B) + logc3D
	}
	return logc3E*lin + logc3F
}

func logc3ToLinear(enc float32) float32 {
	const cut2 = logc3E*logc3Cut + logc3F
	if enc > cut2 {
		return (math32.Pow(10, (enc-logc3D)/logc3C) - logc3B) / logc3A
	}
	return (enc - logc3F) / logc3E
}

// --- ARRI LogC4 (single log segment with a linear toe near/below zero,
// per ARRI's published LogC4 whitepaper constants) ---

const (
	logc4A = 5.555556
	logc4B = 0.080216
	logc4C = 0.269036
	logc4T = 0.0 // toe boundary, scene-linear: below this the curve is linear
	logc4S = 0.9 // toe segment slope (denc/dlin), continuous with the log segment at T
)

// logc4ToeEnc is the encoded value at the toe boundary, so the toe segment
// meets the log segment continuously instead of both independently
// touching zero.
var logc4ToeEnc = (math32.Log2(logc4T*logc4A+logc4B) + 5) * logc4C

func logc4FromLinear(lin float32) float32 {
	if lin < logc4T {
		return logc4ToeEnc + (lin-logc4T)*logc4S
	}
	return (math32.Log2(lin*logc4A+logc4B) + 5) * logc4C
}

func logc4ToLinear(enc float32) float32 {
	if enc < logc4ToeEnc {
		return logc4T + (enc-logc4ToeEnc)/logc4S
	}
	return (math32.Pow(2, enc/logc4C-5) - logc4B) / logc4A
}

// --- Sony S-Log3 ---

const slog3A = 0.01125000
const slog3C = 0.42188671
const slog3K = 261.5

func slog3FromLinear(lin float32) float32 {
	if lin >= slog3A {
		return (420.0 + math32.Log10((lin+0.01)/0.18)*(slog3C*slog3K)) / 1023.0
	}
	return (lin*(171.2102946929-95.0)/slog3A + 95.0) / 1023.0
}

func slog3ToLinear(enc float32) float32 {
	code := enc * 1023.0
	if code >= 171.2102946929 {
		return math32.Pow(10, (code-420.0)/(slog3C*slog3K))*0.18 - 0.01
	}
	return (code - 95.0) / (171.2102946929 - 95.0) * slog3A
}

// --- RED Log3G10 ---

const redA = 0.224282
const redB = 155.975327
const redC = 0.01

func redLog3G10FromLinear(lin float32) float32 {
	if lin < -1/redB {
		lin = -1 / redB
	}
	return redA*math32.Log10(lin*redB+1) + redC
}

func redLog3G10ToLinear(enc float32) float32 {
	return (math32.Pow(10, (enc-redC)/redA) - 1) / redB
}

// --- Panasonic V-Log ---

const vlogCut1 = 0.01
const vlogB = 0.00873
const vlogC = 0.241514
const vlogD = 0.598206

func vlogFromLinear(lin float32) float32 {
	if lin < vlogCut1 {
		return 5.6*lin + 0.125
	}
	return vlogC*math32.Log10(lin+vlogB) + vlogD
}

func vlogToLinear(enc float32) float32 {
	const cut2 = 0.181
	if enc < cut2 {
		return (enc - 0.125) / 5.6
	}
	return math32.Pow(10, (enc-vlogD)/vlogC) - vlogB
}

var transferByID = map[ID]Transfer{
	ACES2065_1: {identity, identity},
	ACEScg:     {identity, identity},
	ACEScc:     {acesccToLinear, acesccFromLinear},
	ACEScct:    {acescctToLinear, acescctFromLinear},
	SRGB:       {srgbToLinear, srgbFromLinear},
	LinearSRGB: {identity, identity},
	Rec2020:    {identity, identity},
	DCIP3:      {identity, identity},
	LogC3:      {logc3ToLinear, logc3FromLinear},
	LogC4:      {logc4ToLinear, logc4FromLinear},
	SLog3:      {slog3ToLinear, slog3FromLinear},
	RedLog3G10: {redLog3G10ToLinear, redLog3G10FromLinear},
	VLog:       {vlogToLinear, vlogFromLinear},
}

// ToLinear converts a single component encoded in the given space to
// scene-linear light.
func ToLinear(v float32, space ID) float32 {
	t, ok := transferByID[space]
	if !ok {
		return v
	}
	return t.ToLinear(v)
}

// FromLinear converts a single linear-light component to the encoding of
// the given space.
func FromLinear(v float32, space ID) float32 {
	t, ok := transferByID[space]
	if !ok {
		return v
	}
	return t.FromLinear(v)
}
