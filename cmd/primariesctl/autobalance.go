// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/coregrade/primaries/grading"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(autoBalanceCmd)
}

var autoBalanceCmd = &cobra.Command{
	Use:   "auto-balance source.png",
	Short: "Solve a white-balance temperature and tint from a source image",
	Long:  `auto-balance runs the same gray-world solve the Parameter Store's AutoBalance command does, and prints the resulting temperature/tint pair for use with --temperature/--tint on bake or apply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("auto-balance: expected 1 argument (source.png), got %d", len(args))
		}
		src, err := loadPNG(args[0])
		if err != nil {
			return err
		}
		temp, tint := grading.AutoBalance(src)
		fmt.Printf("--temperature %g --tint %g\n", temp, tint)
		return nil
	},
}
