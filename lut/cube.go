// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coregrade/primaries/internal/errs"
)

// WriteCube writes l in Adobe's .cube text format (spec §5.4): a
// LUT_3D_SIZE header followed by Size^3 "r g b" lines with red varying
// fastest, then green, then blue, matching the index convention Lut3D
// itself uses. Samples are written with six decimals, so a round trip
// through ReadCube reproduces the lattice to within that rounding.
func WriteCube(w io.Writer, l *Lut3D, title string) error {
	bw := bufio.NewWriter(w)
	if title != "" {
		fmt.Fprintf(bw, "TITLE \"%s\"\n", title)
	}
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", int(l.Size))
	fmt.Fprintln(bw, "DOMAIN_MIN 0.0 0.0 0.0")
	fmt.Fprintln(bw, "DOMAIN_MAX 1.0 1.0 1.0")

	n := int(l.Size)
	for b := 0; b < n; b++ {
		for g := 0; g < n; g++ {
			for r := 0; r < n; r++ {
				v := l.At(r, g, b)
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n", v[0], v[1], v[2])
			}
		}
	}
	return bw.Flush()
}

// ReadCube parses an Adobe .cube file, returning the lattice it encodes.
// Only LUT_3D_SIZE cubes are supported (spec explicitly excludes 1D
// shaper LUTs, see Non-goals); DOMAIN_MIN/MAX lines are accepted and
// ignored without checking their values, and the lattice is always read as
// covering [0,1].
func ReadCube(r io.Reader) (*Lut3D, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var size int
	var values []float32
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "TITLE"):
			continue
		case strings.HasPrefix(upper, "DOMAIN_MIN"), strings.HasPrefix(upper, "DOMAIN_MAX"):
			continue
		case strings.HasPrefix(upper, "LUT_1D_SIZE"):
			return nil, errs.Parse("1D shaper cubes are not supported")
		case strings.HasPrefix(upper, "LUT_3D_SIZE"):
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, errs.Parse("malformed LUT_3D_SIZE line %q", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, errs.Parse("bad LUT_3D_SIZE %q: %v", fields[1], err)
			}
			size = n
		default:
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, errs.Parse("expected 3 floats, got %q", line)
			}
			for _, f := range fields {
				v, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return nil, errs.Parse("bad sample %q: %v", f, err)
				}
				values = append(values, float32(v))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Parse("scanning cube file: %v", err)
	}
	if size == 0 {
		return nil, errs.Parse("missing LUT_3D_SIZE")
	}
	if !Size(size).Valid() {
		return nil, errs.Parse("unsupported lattice size %d", size)
	}
	want := size * size * size * 3
	if len(values) != want {
		return nil, errs.Parse("expected %d sample values, got %d", want, len(values))
	}

	l := New(Size(size))
	copy(l.Table, values)
	return l, nil
}
