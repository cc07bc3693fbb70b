// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"github.com/chewxy/math32"
	"github.com/coregrade/primaries/gradeimage"
)

// AutoBalance estimates (temperature, tint) by the gray-world assumption:
// average the image's linear RGB, then solve for the white-balance
// parameters that would map that average to achromatic (R==G==B), per
// spec §4.2. It is a separate entry point, not part of the per-pixel
// chain.
func AutoBalance(img *gradeimage.Image) (temperature, tint float32) {
	var sum [3]float32
	n := img.Width * img.Height
	if n == 0 {
		return 0, 0
	}
	for i := 0; i < n; i++ {
		sum[0] += img.Pixels[i*4+0]
		sum[1] += img.Pixels[i*4+1]
		sum[2] += img.Pixels[i*4+2]
	}
	avg := [3]float32{sum[0] / float32(n), sum[1] / float32(n), sum[2] / float32(n)}

	return solveTemperatureTint(avg)
}

// solveTemperatureTint searches the (temperature, tint) space for the pair
// whose ApplyWhiteBalance maps avg closest to achromatic, with a
// gradient-free pattern search that starts at (0, 0) with step 0.5 and
// halves the step whenever no neighbour improves, for 24 iterations. The
// search replaces a closed-form inverse of destinationWhite (the daylight
// locus is not trivially invertible in closed form) with a direct
// optimization against the same forward function grading uses, so
// AutoBalance and ApplyWhiteBalance can never disagree about what
// "neutral" means.
func solveTemperatureTint(avg [3]float32) (float32, float32) {
	best := struct{ t, tint, err float32 }{0, 0, chromaError(avg, 0, 0)}

	step := float32(0.5)
	for iter := 0; iter < 24; iter++ {
		improved := false
		for _, dt := range [...]float32{-step, 0, step} {
			for _, dtint := range [...]float32{-step, 0, step} {
				if dt == 0 && dtint == 0 {
					continue
				}
				t := best.t + dt
				tint := best.tint + dtint
				e := chromaError(avg, t, tint)
				if e < best.err {
					best.t, best.tint, best.err = t, tint, e
					improved = true
				}
			}
		}
		if !improved {
			step *= 0.5
		}
		if step < 1e-4 {
			break
		}
	}
	return best.t, best.tint
}

func chromaError(avg [3]float32, temperature, tint float32) float32 {
	balanced := ApplyWhiteBalance(avg, temperature, tint)
	l := luma709(balanced)
	if l < 1e-6 {
		return 1e6
	}
	dr := balanced[0]/l - 1
	dg := balanced[1]/l - 1
	db := balanced[2]/l - 1
	return math32.Abs(dr) + math32.Abs(dg) + math32.Abs(db)
}

// MatchShot performs per-channel histogram matching from src to tgt and
// returns a GradingParams whose CDL gain/offset approximate the matched
// distribution, per spec §4.2. Matching uses the normalized cumulative sum
// of each channel's 256-bin histogram (the same accumulation the Scope
// Engine's histogram pass performs) and fits a per-channel affine
// gain/offset by least squares between source code values and their
// matched target code values.
func MatchShot(src, tgt *gradeimage.Image) GradingParams {
	p := Default()
	for c := 0; c < 3; c++ {
		srcHist := channelHistogram(src, c)
		tgtHist := channelHistogram(tgt, c)
		srcCDF := cumulative(srcHist)
		tgtCDF := cumulative(tgtHist)

		matched := make([]float32, 256)
		for i := range matched {
			matched[i] = matchBin(srcCDF[i], tgtCDF)
		}
		gain, offset := fitAffine(matched)
		setChannelGainOffset(&p, c, gain, offset)
	}
	return p
}

func channelHistogram(img *gradeimage.Image, channel int) [256]uint32 {
	var h [256]uint32
	n := img.Width * img.Height
	for i := 0; i < n; i++ {
		v := clamp(img.Pixels[i*4+channel], 0, 1)
		bin := int(v * 255)
		if bin > 255 {
			bin = 255
		}
		h[bin]++
	}
	return h
}

func cumulative(h [256]uint32) [256]float32 {
	var out [256]float32
	var total uint32
	for _, c := range h {
		total += c
	}
	if total == 0 {
		for i := range out {
			out[i] = float32(i) / 255
		}
		return out
	}
	var running uint32
	for i, c := range h {
		running += c
		out[i] = float32(running) / float32(total)
	}
	return out
}

// matchBin finds the target bin index whose CDF value is closest to
// srcCDFValue, returning its code value in [0,1].
func matchBin(srcCDFValue float32, tgtCDF [256]float32) float32 {
	bestIdx := 0
	bestDiff := math32.Abs(tgtCDF[0] - srcCDFValue)
	for i := 1; i < 256; i++ {
		d := math32.Abs(tgtCDF[i] - srcCDFValue)
		if d < bestDiff {
			bestDiff = d
			bestIdx = i
		}
	}
	return float32(bestIdx) / 255
}

// fitAffine does a least-squares fit of matched[i] ~= gain*i/255 + offset.
func fitAffine(matched []float32) (gain, offset float32) {
	n := float32(len(matched))
	var sumX, sumY, sumXY, sumXX float32
	for i, y := range matched {
		x := float32(i) / 255
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if math32.Abs(denom) < 1e-9 {
		return 1, 0
	}
	gain = (n*sumXY - sumX*sumY) / denom
	offset = (sumY - gain*sumX) / n
	return gain, offset
}

func setChannelGainOffset(p *GradingParams, channel int, gain, offset float32) {
	switch channel {
	case 0:
		p.Gain.R, p.Offset.R = gain, offset
	case 1:
		p.Gain.G, p.Offset.G = gain, offset
	case 2:
		p.Gain.B, p.Offset.B = gain, offset
	}
}
