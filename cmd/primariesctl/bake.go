// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/coregrade/primaries/lut"
	"github.com/spf13/cobra"
)

var bakeFlags gradeFlags
var bakeSize int
var bakeCurveSamples int

func init() {
	rootCmd.AddCommand(bakeCmd)
	addGradeFlags(bakeCmd, &bakeFlags)
	bakeCmd.Flags().IntVar(&bakeSize, "size", 33, "LUT lattice size, one of 17, 33, 65")
	bakeCmd.Flags().IntVar(&bakeCurveSamples, "curve-samples", 256, "1D table length to pre-bake curves to before baking the lattice")
}

var bakeCmd = &cobra.Command{
	Use:   "bake output.cube",
	Short: "Bake the grade described by flags into a .cube file",
	Long:  `bake resolves the Transform Chain for the grade described by flags, samples it across a dense 3D lattice, and writes the result as an Adobe .cube file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("bake: expected 1 argument (output .cube path), got %d", len(args))
		}
		params := bakeFlags.params()
		size := resolveLutSize(bakeSize)

		l, err := lut.Bake(cmd.Context(), &params, size, bakeCurveSamples)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return lut.WriteCube(f, l, args[0])
	},
}
