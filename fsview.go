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

// Package fsview caches filesystem observations for one analysis pass.
//
// Design principles:
//  1. First observation wins - every query for a path is answered from the
//     first recorded outcome, including failures, until Flush
//  2. One pass, one cache - a cache instance belongs to a single analysis
//     pass; there is no internal locking and no sharing between passes
//
// The cache never writes, never walks trees and never retries: a recorded
// failure is final until the owning pass calls Flush. Paths are opaque
// keys; callers must query the same spelling consistently because no
// normalization is applied.
package fsview

import "os"

// FS is the filesystem slice the caches read through. Any go-billy
// filesystem satisfies it, as do the plain os wrappers with matching
// signatures.
type FS interface {
	Stat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
}

// SourceReader loads one source file and returns the decoded text along
// with a stable fingerprint of that text. Implementations own the
// decoding policy; the cache only records what they return.
type SourceReader interface {
	ReadSource(path string) (text string, fingerprint string, err error)
}

// Stats holds cache counters. A query answered from a recorded outcome
// counts as a hit whether the outcome was a success or a failure; only
// misses reach the underlying filesystem. Counters accumulate across
// Flush calls.
type Stats struct {
	StatHits      uint64
	StatMisses    uint64
	ListDirHits   uint64
	ListDirMisses uint64
	ReadHits      uint64
	ReadMisses    uint64
	BytesRead     uint64
	Flushes       uint64
}
