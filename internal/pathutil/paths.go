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

// Package pathutil provides path helpers shared by the fsview caches.
//
// None of these helpers touch the filesystem, and none of them normalize
// the paths they are given: cache keys are the caller's exact spelling.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Split divides a path into its parent directory and final component.
// Trailing separators are stripped from the parent unless the parent is
// only separators, so Split("a/b/c") returns ("a/b", "c") and
// Split("/c") returns ("/", "c"). A path ending in a separator has an
// empty final component: Split("a/b/") returns ("a/b", "").
func Split(path string) (head, tail string) {
	head, tail = filepath.Split(path)
	if head != "" && head != string(filepath.Separator) {
		trimmed := strings.TrimRight(head, string(filepath.Separator))
		if trimmed != "" {
			head = trimmed
		}
	}
	return head, tail
}
