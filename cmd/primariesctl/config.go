// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/coregrade/primaries/engineconfig"
	"github.com/coregrade/primaries/internal/grlog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showConfigCmd)
}

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the effective engine configuration",
	Long:  `show-config loads --config if given, otherwise the shipped defaults, applies it as the process-wide logger configuration, and prints the resolved TOML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEngineConfig()
		if err != nil {
			return err
		}
		return engineconfig.Write(cfg, os.Stdout)
	},
}

// loadEngineConfig resolves --config into a Config, defaulting when no
// path was given, and installs it as the process-wide slog handler
// (spec's ambient logging concern, outside the graded-pixel path proper).
func loadEngineConfig() (engineconfig.Config, error) {
	cfg := engineconfig.Default()
	if configPath != "" {
		c, err := engineconfig.Open(configPath)
		if err != nil {
			return engineconfig.Config{}, err
		}
		cfg = c
	}
	installLogger(cfg)
	return cfg, nil
}

func installLogger(cfg engineconfig.Config) {
	switch cfg.LogLevel {
	case "debug":
		grlog.Level.Set(slog.LevelDebug)
	case "warn":
		grlog.Level.Set(slog.LevelWarn)
	case "error":
		grlog.Level.Set(slog.LevelError)
	default:
		grlog.Level.Set(slog.LevelInfo)
	}
	grlog.Init(os.Stderr, cfg.LogPretty)
}
