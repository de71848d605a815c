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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindNotFound, "not found"},
		{KindPermission, "permission denied"},
		{KindNotDir, "not a directory"},
		{KindIsDir, "is a directory"},
		{KindDecode, "decode error"},
		{KindIO, "I/O error"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestErrorFormat(t *testing.T) {
	t.Parallel()

	err := &Error{Op: "stat", Path: "/src/a.py", Kind: KindNotFound, Msg: "no such file or directory"}
	assert.Equal(t, "stat /src/a.py: no such file or directory", err.Error())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "path_error_enoent",
			err:      &fs.PathError{Op: "stat", Path: "/p", Err: syscall.ENOENT},
			wantKind: KindNotFound,
			wantMsg:  "no such file or directory",
		},
		{
			name:     "path_error_eacces",
			err:      &fs.PathError{Op: "open", Path: "/p", Err: syscall.EACCES},
			wantKind: KindPermission,
			wantMsg:  "permission denied",
		},
		{
			name:     "path_error_enotdir",
			err:      &fs.PathError{Op: "stat", Path: "/p", Err: syscall.ENOTDIR},
			wantKind: KindNotDir,
			wantMsg:  "not a directory",
		},
		{
			name:     "path_error_eisdir",
			err:      &fs.PathError{Op: "read", Path: "/p", Err: syscall.EISDIR},
			wantKind: KindIsDir,
			wantMsg:  "is a directory",
		},
		{
			name:     "bare_sentinel",
			err:      fs.ErrNotExist,
			wantKind: KindNotFound,
			wantMsg:  "file does not exist",
		},
		{
			name:     "wrapped_sentinel",
			err:      fmt.Errorf("opening source: %w", fs.ErrPermission),
			wantKind: KindPermission,
			wantMsg:  "opening source: permission denied",
		},
		{
			name:     "unrecognized",
			err:      errors.New("connection timed out"),
			wantKind: KindIO,
			wantMsg:  "connection timed out",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classify("stat", "/p", tt.err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Msg)
			assert.Equal(t, "stat", got.Op)
			assert.Equal(t, "/p", got.Path)
		})
	}
}

func TestClassifyPassesTaggedErrorsThrough(t *testing.T) {
	t.Parallel()

	orig := &Error{Op: "decode", Path: "/src/bad.py", Kind: KindDecode, Msg: "source is not valid UTF-8"}

	got := classify("read", "/src/bad.py", orig)
	assert.Same(t, orig, got, "an already tagged error must not be rewrapped")

	got = classify("read", "/src/bad.py", fmt.Errorf("reading source: %w", orig))
	assert.Same(t, orig, got)
}

func TestErrorMatchesStandardSentinels(t *testing.T) {
	t.Parallel()

	notFound := &Error{Op: "stat", Path: "/p", Kind: KindNotFound, Msg: "gone"}
	assert.ErrorIs(t, notFound, fs.ErrNotExist)
	assert.NotErrorIs(t, notFound, fs.ErrPermission)

	denied := &Error{Op: "stat", Path: "/p", Kind: KindPermission, Msg: "denied"}
	assert.ErrorIs(t, denied, fs.ErrPermission)
	assert.NotErrorIs(t, denied, fs.ErrNotExist)

	broken := &Error{Op: "read", Path: "/p", Kind: KindIO, Msg: "offline"}
	assert.NotErrorIs(t, broken, fs.ErrNotExist)
	assert.NotErrorIs(t, broken, fs.ErrPermission)

	wrapped := fmt.Errorf("loading module: %w", notFound)
	assert.ErrorIs(t, wrapped, fs.ErrNotExist)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	err := &Error{Op: "stat", Path: "/p", Kind: KindNotDir, Msg: "not a directory"}
	require.Equal(t, KindNotDir, KindOf(err))
	assert.Equal(t, KindNotDir, KindOf(fmt.Errorf("resolving import: %w", err)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("unrelated")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}
