// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paramstore

import (
	"context"
	"io"
	"sync"

	"github.com/coregrade/primaries/gradeimage"
	"github.com/coregrade/primaries/grading"
	"github.com/coregrade/primaries/internal/errs"
	"github.com/coregrade/primaries/lut"
)

// Collaborators are the external-world hooks the Parameter Store calls
// out to (spec §1's "Out of scope: external collaborators" — image
// decoding and file I/O live here, not in the engine). A nil collaborator
// makes its command a no-op Error notification.
type Collaborators struct {
	// LoadImage decodes path into an engine-native image. Image format
	// decoding (PNG/JPEG/EXR) is an external collaborator's job.
	LoadImage func(path string) (*gradeimage.Image, error)
	// OpenLut opens path for reading a .cube file.
	OpenLut func(path string) (io.ReadCloser, error)
	// CreateLut opens path for writing a .cube file.
	CreateLut func(path string) (io.WriteCloser, error)
}

// Store is the Parameter Store of spec §6: the sole mutable-state owner,
// touched only from the control loop that calls Drain.
type Store struct {
	mu sync.Mutex

	params   grading.GradingParams
	source   *gradeimage.Image
	postLuts map[int]*lut.Lut3D
	scopeOn  map[string]bool

	collab Collaborators

	commands      chan Command
	notifications chan Notification

	// ParamsDirty and SourceDirty mirror the Frame Controller's booleans
	// (spec §4.7); Drain sets them, the controller clears them after
	// acting.
	ParamsDirty bool
	SourceDirty bool
}

// New constructs a Store with identity params and a buffered command
// queue, matching the "lock-free/guarded queue" arrival model of spec §5.
func New(collab Collaborators) *Store {
	p := grading.Default()
	return &Store{
		params:        p,
		postLuts:      make(map[int]*lut.Lut3D),
		scopeOn:       map[string]bool{"histogram": true, "waveform": true, "vectorscope": true, "cie": true},
		collab:        collab,
		commands:      make(chan Command, 64),
		notifications: make(chan Notification, 64),
	}
}

// Submit enqueues a command from the UI transport. Never blocks the
// control loop: if the queue is full the command is dropped and an Error
// notification is published (a saturated queue means the UI is producing
// commands faster than the control loop drains them, a transport-level
// problem the engine cannot itself fix).
func (s *Store) Submit(cmd Command) {
	select {
	case s.commands <- cmd:
	default:
		s.publish(Notification{Kind: Error, Message: "command queue full, dropped " + cmd.Kind.String()})
	}
}

// Notifications returns the outbound notification channel the UI
// transport subscribes to.
func (s *Store) Notifications() <-chan Notification {
	return s.notifications
}

func (s *Store) publish(n Notification) {
	select {
	case s.notifications <- n:
	default:
	}
}

// Params returns a copy of the current params, safe to call from outside
// the control loop (e.g. for bake/apply, which read but never mutate).
func (s *Store) Params() grading.GradingParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Clone()
}

// Source returns the current source image, or nil if none has been
// loaded yet.
func (s *Store) Source() *gradeimage.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// ScopeEnabled reports whether the given scope kind is currently toggled
// on.
func (s *Store) ScopeEnabled(kind string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.scopeOn[kind]
	return !ok || v
}

// Drain applies every currently queued command in arrival order (spec §5:
// "the Parameter Store serializes command application in arrival order;
// no command is applied twice") and returns whether any mutation occurred.
// It never blocks: it drains exactly what is already queued, not what
// arrives while draining.
func (s *Store) Drain(ctx context.Context) bool {
	n := len(s.commands)
	mutated := false
	for i := 0; i < n; i++ {
		select {
		case cmd := <-s.commands:
			if s.apply(ctx, cmd) {
				mutated = true
			}
		default:
			return mutated
		}
	}
	return mutated
}

func (s *Store) apply(ctx context.Context, cmd Command) bool {
	switch cmd.Kind {
	case RequestState:
		s.publish(Notification{Kind: Initialize, Params: s.Params()})
		return false

	case SetParams:
		s.mu.Lock()
		s.params = cmd.SetParamsPayload.Clone()
		s.mu.Unlock()
		s.ParamsDirty = true
		s.publish(Notification{Kind: ParamsUpdated, Params: s.Params()})
		return true

	case AutoBalance:
		src := s.Source()
		if src == nil {
			s.publish(Notification{Kind: Error, Message: "auto-balance requested with no source image loaded"})
			return false
		}
		temp, tint := grading.AutoBalance(src)
		s.mu.Lock()
		s.params.Temperature = temp
		s.params.Tint = tint
		s.mu.Unlock()
		s.ParamsDirty = true
		s.publish(Notification{Kind: ParamsUpdated, Params: s.Params()})
		return true

	case ResetGrade:
		s.mu.Lock()
		s.params = grading.Default()
		s.mu.Unlock()
		s.ParamsDirty = true
		s.publish(Notification{Kind: ParamsUpdated, Params: s.Params()})
		return true

	case LoadImage:
		return s.applyLoadImage(cmd)

	case LoadLut:
		return s.applyLoadLut(cmd)

	case ExportLut:
		return s.applyExportLut(ctx, cmd)

	case ToggleScope:
		s.mu.Lock()
		s.scopeOn[cmd.ToggleScopeKind] = cmd.ToggleScopeOn
		s.mu.Unlock()
		return false
	}
	return false
}

func (s *Store) applyLoadImage(cmd Command) bool {
	if s.collab.LoadImage == nil {
		s.publish(Notification{Kind: Error, Message: "no image loader configured"})
		return false
	}
	img, err := s.collab.LoadImage(cmd.LoadImagePath)
	if err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	s.mu.Lock()
	s.source = img
	s.mu.Unlock()
	s.SourceDirty = true
	s.publish(Notification{
		Kind: ImageLoaded, ImagePath: cmd.LoadImagePath,
		ImageWidth: img.Width, ImageHeight: img.Height, ImageDepth: int(img.SourceDepth),
	})
	return true
}

func (s *Store) applyLoadLut(cmd Command) bool {
	if s.collab.OpenLut == nil {
		s.publish(Notification{Kind: Error, Message: "no lut source configured"})
		return false
	}
	r, err := s.collab.OpenLut(cmd.LoadLutPath)
	if err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	defer r.Close()

	l, err := lut.ReadCube(r)
	if err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	s.mu.Lock()
	s.postLuts[cmd.LoadLutSlot] = l
	s.mu.Unlock()
	s.ParamsDirty = true
	return true
}

func (s *Store) applyExportLut(ctx context.Context, cmd Command) bool {
	if s.collab.CreateLut == nil {
		s.publish(Notification{Kind: Error, Message: "no lut sink configured"})
		return false
	}
	params := s.Params()
	size := cmd.ExportLutSize
	if !size.Valid() {
		size = lut.Size33
	}
	l, err := lut.Bake(ctx, &params, size, 256)
	if err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	w, err := s.collab.CreateLut(cmd.ExportLutPath)
	if err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	defer w.Close()
	if err := lut.WriteCube(w, l, cmd.ExportLutPath); err != nil {
		s.publish(Notification{Kind: Error, Message: errs.Log(err).Error()})
		return false
	}
	return false
}

// PostLut returns the post-chain LUT loaded into slot, if any.
func (s *Store) PostLut(slot int) (*lut.Lut3D, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.postLuts[slot]
	return l, ok
}
