// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/coregrade/primaries/control"
	"github.com/coregrade/primaries/paramstore"
	"github.com/spf13/cobra"
)

var sessionFlags gradeFlags
var sessionOutPath string

func init() {
	rootCmd.AddCommand(sessionCmd)
	addGradeFlags(sessionCmd, &sessionFlags)
	sessionCmd.Flags().StringVar(&sessionOutPath, "out", "graded.png", "path to write the graded frame to")
}

var sessionCmd = &cobra.Command{
	Use:   "session source.png",
	Short: "Drive a full Parameter Store + Frame Controller session over one image",
	Long: `session exercises the same path a UI transport would: it submits a
LoadImage and a SetParams command to a Parameter Store, ticks the Frame
Controller twice (the second tick past the scope interval), and writes the graded frame
and any error notifications it observed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("session: expected 1 argument (source.png), got %d", len(args))
		}

		store := paramstore.New(collaborators())
		ctl := control.New(store)

		store.Submit(paramstore.Command{Kind: paramstore.LoadImage, LoadImagePath: args[0]})
		store.Submit(paramstore.Command{Kind: paramstore.SetParams, SetParamsPayload: sessionFlags.params()})

		now := time.Unix(0, 0)
		if err := ctl.Tick(cmd.Context(), now); err != nil {
			return err
		}
		// A second tick past the scope interval settles the scope data a
		// UI transport would display alongside the graded frame.
		if err := ctl.Tick(cmd.Context(), now.Add(control.ScopeTickRate+time.Millisecond)); err != nil {
			return err
		}

		drainNotifications(store)

		frame := ctl.GradedFrame()
		if frame == nil {
			return fmt.Errorf("session: no graded frame was produced")
		}
		return savePNG(sessionOutPath, frame)
	},
}

func drainNotifications(store *paramstore.Store) {
	for {
		select {
		case n := <-store.Notifications():
			if n.Kind == paramstore.Error {
				fmt.Printf("warning: %s\n", n.Message)
			}
		default:
			return
		}
	}
}
