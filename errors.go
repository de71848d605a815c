// Copyright 2026 FSView Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fsview

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies a recorded filesystem failure. Replaying a failure from
// the cache means returning an error carrying the same Kind as the first
// observation, not the original error instance.
type Kind uint8

const (
	KindUnknown Kind = iota

	// KindNotFound - the path does not exist.
	KindNotFound
	// KindPermission - the OS denied the operation.
	KindPermission
	// KindNotDir - a path component is not a directory.
	KindNotDir
	// KindIsDir - a regular-file operation hit a directory.
	KindIsDir
	// KindDecode - content could not be decoded.
	KindDecode
	// KindIO - any other OS-level failure.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindNotDir:
		return "not a directory"
	case KindIsDir:
		return "is a directory"
	case KindDecode:
		return "decode error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown"
	}
}

// Error is a failure recorded by the cache: the operation that failed,
// the queried path, the failure kind and the underlying message.
type Error struct {
	Op   string // "stat", "listdir", "read" or "decode"
	Path string
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Msg)
}

// Is maps failure kinds onto the standard filesystem sentinels so that
// errors.Is(err, fs.ErrNotExist) works on cached errors.
func (e *Error) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.Kind == KindNotFound
	case fs.ErrPermission:
		return e.Kind == KindPermission
	}
	return false
}

// KindOf returns the failure kind carried by err, or KindUnknown when err
// did not come from a cache operation.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// classify converts an underlying filesystem error into its recorded
// form. Errors that already carry a kind pass through unchanged so a
// SourceReader can report decode failures directly.
func classify(op, path string, err error) *Error {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged
	}

	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	case errors.Is(err, syscall.ENOTDIR):
		kind = KindNotDir
	case errors.Is(err, syscall.EISDIR):
		kind = KindIsDir
	}

	msg := err.Error()
	var perr *fs.PathError
	if errors.As(err, &perr) {
		msg = perr.Err.Error()
	}

	return &Error{Op: op, Path: path, Kind: kind, Msg: msg}
}
