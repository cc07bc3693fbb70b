// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/coregrade/primaries/colorspace"
	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/paramstore"
)

// loadPNG is the external collaborator that decodes a PNG file into the
// engine's scene-linear image contract (spec §1: image format decoding is
// an external collaborator's job, not the engine's). Source samples are
// assumed sRGB-encoded 8-bit, the common case for a CLI round trip.
func loadPNG(path string) (*gradeimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	img := gradeimage.New(w, h, gradeimage.BitDepth8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			img.Set(x, y, [4]float32{
				colorspace.ToLinear(float32(r)/65535, colorspace.SRGB),
				colorspace.ToLinear(float32(g)/65535, colorspace.SRGB),
				colorspace.ToLinear(float32(bl)/65535, colorspace.SRGB),
				float32(a) / 65535,
			})
		}
	}
	return img, nil
}

// savePNG encodes a graded frame back to sRGB-encoded 8-bit PNG, the
// inverse of loadPNG.
func savePNG(path string, img *gradeimage.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba := img.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(clamp01(colorspace.FromLinear(rgba[0], colorspace.SRGB)) * 255)
			out.Pix[i+1] = uint8(clamp01(colorspace.FromLinear(rgba[1], colorspace.SRGB)) * 255)
			out.Pix[i+2] = uint8(clamp01(colorspace.FromLinear(rgba[2], colorspace.SRGB)) * 255)
			out.Pix[i+3] = uint8(clamp01(rgba[3]) * 255)
		}
	}
	return png.Encode(f, out)
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

// collaborators wires real file I/O into the Parameter Store (the engine
// itself never touches os.Open/os.Create directly, per spec §1's
// external-collaborator boundary).
func collaborators() paramstore.Collaborators {
	return paramstore.Collaborators{
		LoadImage: loadPNG,
		OpenLut: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		CreateLut: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}
}
