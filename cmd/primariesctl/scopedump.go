// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/lut"
	"github.com/coregrade/primaries/scopes"
	"github.com/spf13/cobra"
)

var scopeDumpLutPath string
var scopeDumpOutDir string

func init() {
	rootCmd.AddCommand(scopeDumpCmd)
	scopeDumpCmd.Flags().StringVar(&scopeDumpLutPath, "lut", "", "apply this .cube file before computing scopes")
	scopeDumpCmd.Flags().StringVar(&scopeDumpOutDir, "out-dir", ".", "directory to write scope PNGs into")
}

var scopeDumpCmd = &cobra.Command{
	Use:   "scope-dump source.png",
	Short: "Compute histogram, waveform, vectorscope, and CIE scopes and dump them as PNGs",
	Long:  `scope-dump runs the full Scope Engine over a source image (optionally graded through --lut first) and writes one heat-mapped PNG per scope for visual inspection outside the UI transport.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("scope-dump: expected 1 argument (source.png), got %d", len(args))
		}
		src, err := loadPNG(args[0])
		if err != nil {
			return err
		}

		frame := src
		if scopeDumpLutPath != "" {
			f, err := os.Open(scopeDumpLutPath)
			if err != nil {
				return err
			}
			l, err := lut.ReadCube(f)
			f.Close()
			if err != nil {
				return err
			}
			dst := gradeimage.New(src.Width, src.Height, src.SourceDepth)
			if err := lut.Apply(cmd.Context(), l, src, dst); err != nil {
				return err
			}
			frame = dst
		}

		data, err := scopes.ComputeAll(cmd.Context(), frame, nil, nil, 256, 256, 256)
		if err != nil {
			return err
		}

		if err := writePNG(scopeDumpOutDir, "histogram.png", scopes.ColorizeHistogram(data.Histogram, 0, 256)); err != nil {
			return err
		}
		if err := writePNG(scopeDumpOutDir, "waveform.png", scopes.ColorizeGrid(data.Waveform.Data[0], data.Waveform.Width, data.Waveform.Height)); err != nil {
			return err
		}
		if err := writePNG(scopeDumpOutDir, "vectorscope.png", scopes.ColorizeGrid(data.Vectorscope.Data, data.Vectorscope.Resolution, data.Vectorscope.Resolution)); err != nil {
			return err
		}
		if err := writePNG(scopeDumpOutDir, "cie.png", scopes.ColorizeGrid(data.CIE.Data, data.CIE.Resolution, data.CIE.Resolution)); err != nil {
			return err
		}
		return nil
	},
}

func writePNG(dir, name string, img image.Image) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
