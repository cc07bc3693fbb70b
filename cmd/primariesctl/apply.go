// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/lut"
	"github.com/spf13/cobra"
)

var applyFlags gradeFlags
var applyLutPath string
var applyBakeSize int

func init() {
	rootCmd.AddCommand(applyCmd)
	addGradeFlags(applyCmd, &applyFlags)
	applyCmd.Flags().StringVar(&applyLutPath, "lut", "", "apply an existing .cube file instead of baking one from the grade flags")
	applyCmd.Flags().IntVar(&applyBakeSize, "size", 33, "LUT lattice size to bake when --lut is not given")
}

var applyCmd = &cobra.Command{
	Use:   "apply input.png output.png",
	Short: "Apply a grade to an image",
	Long:  `apply samples a 3D LUT (loaded from --lut, or baked from the grade flags) against every pixel of a source PNG and writes the graded result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("apply: expected 2 arguments (input.png, output.png), got %d", len(args))
		}

		src, err := loadPNG(args[0])
		if err != nil {
			return err
		}

		var l *lut.Lut3D
		if applyLutPath != "" {
			f, err := os.Open(applyLutPath)
			if err != nil {
				return err
			}
			defer f.Close()
			l, err = lut.ReadCube(f)
			if err != nil {
				return err
			}
		} else {
			params := applyFlags.params()
			l, err = lut.Bake(cmd.Context(), &params, resolveLutSize(applyBakeSize), 256)
			if err != nil {
				return err
			}
		}

		dst := gradeimage.New(src.Width, src.Height, src.SourceDepth)
		if err := lut.Apply(cmd.Context(), l, src, dst); err != nil {
			return err
		}
		return savePNG(args[1], dst)
	},
}
