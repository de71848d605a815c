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

// Package integration exercises fsview sessions against the real
// filesystem.
//
// Design principles:
//
//  1. Isolation: each test works in its own temporary tree.
//  2. Determinism: tests observe explicit flush boundaries, never sleeps.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"fsview/session"
)

// writeTree creates every file in files under root, creating parent
// directories as needed. Keys are slash-separated paths relative to root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// newSession starts a session over the real filesystem and registers its
// shutdown with the test.
func newSession(t *testing.T, cfg *session.Config) *session.Session {
	t.Helper()
	s, err := session.New(cfg)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
