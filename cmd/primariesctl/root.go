// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command primariesctl is a headless driver for the grading engine: it
// bakes and applies grades, round-trips .cube files, runs auto-balance,
// and dumps scope diagnostics as PNGs, all from the command line rather
// than a UI transport.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "primariesctl",
	Short: "primariesctl drives the color grading engine from the command line",
	Long:  `primariesctl bakes and applies 3D-LUT grades, exports and imports .cube files, auto-balances white balance from a source image, and dumps scope diagnostics, all against the same engine a UI transport would drive through the Parameter Store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := loadEngineConfig()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML engine config file (defaults ship if omitted)")
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
