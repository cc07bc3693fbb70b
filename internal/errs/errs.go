// Copyright (c) 2026, The Primaries Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides error-handling helpers shared across the engine,
// extending the standard library errors package with sentinel classes for
// the error kinds the engine must distinguish (parse, resource,
// invalid-command) plus logging wrappers for the common
// log-and-return-unchanged shape used at error boundaries.
package errs

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// Sentinel error classes. Callers match with errors.Is, never by string
// comparison.
var (
	// ErrParse marks malformed input (.cube syntax, unsupported directive,
	// unparseable float).
	ErrParse = errors.New("parse error")
	// ErrResource marks a GPU allocation, shader compile, or adapter-lost
	// failure.
	ErrResource = errors.New("resource error")
	// ErrInvalidCommand marks a command rejected at the deserialization
	// boundary (out-of-range enum, unknown color space).
	ErrInvalidCommand = errors.New("invalid command")
)

// Parse formats a message from format and args and wraps ErrParse with it.
func Parse(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)
}

// Resource formats a message from format and args and wraps ErrResource
// with it.
func Resource(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrResource}, args...)...)
}

// InvalidCommand formats a message from format and args and wraps
// ErrInvalidCommand with it.
func InvalidCommand(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidCommand}, args...)...)
}

// Log logs the given error, if non-nil, and returns it unchanged. The
// intended usage is:
//
//	return errs.Log(doThing())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs err if non-nil and returns v regardless. The intended usage is:
//
//	v := errs.Log1(doThing())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must1 panics if err is non-nil, otherwise returns v. Reserved for
// programmer-error invariants (e.g. a hard-coded WGSL constant table that
// fails to parse), never for recoverable, caller-triggerable failures.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns file:line information about the caller of the
// function that called CallerInfo, for inclusion in log lines.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
