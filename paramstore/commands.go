// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paramstore implements the Parameter Store of spec §6: the sole
// owner of mutable grading state, mutated only through a command queue
// drained by the Frame Controller, and the source of the outbound
// notification stream the UI transport subscribes to.
package paramstore

import (
	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/lut"
)

// Command is the tagged union of every mutation the UI transport can send
// (spec §6's command surface table). Exactly one of the typed payload
// fields is meaningful per Kind.
type Command struct {
	Kind CommandKind

	SetParamsPayload grading.GradingParams
	LoadImagePath    string
	LoadLutPath      string
	LoadLutSlot      int
	ExportLutPath    string
	ExportLutSize    lut.Size
	ToggleScopeKind  string
	ToggleScopeOn    bool
}

// CommandKind names one of the eight commands of spec §6.
type CommandKind int

const (
	RequestState CommandKind = iota
	SetParams
	AutoBalance
	ResetGrade
	LoadImage
	LoadLut
	ExportLut
	ToggleScope
)

func (k CommandKind) String() string {
	switch k {
	case RequestState:
		return "RequestState"
	case SetParams:
		return "SetParams"
	case AutoBalance:
		return "AutoBalance"
	case ResetGrade:
		return "ResetGrade"
	case LoadImage:
		return "LoadImage"
	case LoadLut:
		return "LoadLut"
	case ExportLut:
		return "ExportLut"
	case ToggleScope:
		return "ToggleScope"
	default:
		return "Unknown"
	}
}

// Notification is the tagged union of outbound messages (spec §6):
// Initialize, ParamsUpdated, ScopeData, ImageLoaded, Error.
type Notification struct {
	Kind NotificationKind

	Params  grading.GradingParams
	Message string

	ImagePath   string
	ImageWidth  int
	ImageHeight int
	ImageDepth  int
}

// NotificationKind names one of the four outbound notifications the store
// emits. Scope results are not a notification: the control package
// exposes them through Controller.ScopeData.
type NotificationKind int

const (
	Initialize NotificationKind = iota
	ParamsUpdated
	ImageLoaded
	Error
)
