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

// Package session manages the lifecycle around an fsview cache: one
// session per analyzer run, one pass between EndPass calls. The session
// assembles the default filesystem and source-reader stack, optionally
// holds an exclusive workspace lock, applies exclude patterns and logs
// pass statistics. It adds no caching semantics of its own.
package session

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"fsview"
	"fsview/source"
)

// Session owns the filesystem cache for one analyzer run.
type Session struct {
	id      string
	cfg     Config
	cache   *fsview.ContentCache
	lock    *flock.Flock
	exclude *excludeMatcher
	entry   *log.Entry
	started time.Time
	closed  bool
}

type options struct {
	fs        billy.Filesystem
	reader    fsview.SourceReader
	logOutput io.Writer
}

// Option overrides part of the default session stack.
type Option func(*options)

// WithFilesystem sets the filesystem the session reads. Defaults to the
// host filesystem.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithSourceReader overrides the default source reader.
func WithSourceReader(r fsview.SourceReader) Option {
	return func(o *options) { o.reader = r }
}

// WithLogOutput directs session logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// New assembles a session around cfg. A nil cfg means defaults. When
// cfg.LockFile is set, the lock must be free or New fails; the lock is
// held until Close.
func New(cfg *Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.ApplyDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = osfs.New("/")
	}
	if o.reader == nil {
		major, minor := cfg.Version()
		o.reader = source.NewReader(o.fs, source.WithLanguageVersion(major, minor))
	}

	s := &Session{
		id:      uuid.New().String(),
		cfg:     *cfg,
		cache:   fsview.NewContentCache(o.fs, o.reader),
		exclude: newExcludeMatcher(cfg.Excludes),
		started: time.Now(),
	}
	s.entry = newLogger(cfg.LogLevel, o.logOutput).WithField("session", s.id)

	if cfg.LockFile != "" {
		s.lock = flock.New(cfg.LockFile)
		locked, err := s.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire workspace lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("another analysis session holds the workspace lock")
		}
		s.entry.Debugf("acquired workspace lock at %s", cfg.LockFile)
	}

	s.entry.Debug("session started")
	return s, nil
}

// newLogger builds the session logger for the configured level
// (case insensitive). Unknown levels and "off" discard all output.
func newLogger(level string, out io.Writer) *log.Logger {
	logger := log.New()
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(level) {
	case "trace":
		logger.SetLevel(log.TraceLevel)
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	default:
		out = io.Discard
	}
	logger.SetOutput(out)
	return logger
}

// ID returns the unique identifier of this session, used to correlate
// log lines.
func (s *Session) ID() string {
	return s.id
}

// Cache returns the filesystem cache backing the current pass.
func (s *Session) Cache() *fsview.ContentCache {
	return s.cache
}

// Excluded reports whether path matches the configured exclude patterns.
func (s *Session) Excluded(path string) bool {
	return s.exclude.matches(path)
}

// EndPass discards all cached filesystem observations so the next pass
// observes current filesystem state. Counters are logged before the
// flush.
func (s *Session) EndPass() {
	stats := s.cache.Stats()
	s.entry.WithFields(log.Fields{
		"stat_hits":   stats.StatHits,
		"stat_misses": stats.StatMisses,
		"files_read":  stats.ReadMisses,
		"bytes_read":  humanize.Bytes(stats.BytesRead),
	}).Info("pass finished")
	s.cache.Flush()
}

// Close flushes the cache, releases the workspace lock and ends the
// session. Safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.cache.Flush()
	s.entry.Debugf("session closed after %s", time.Since(s.started).Round(time.Millisecond))

	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			return fmt.Errorf("failed to release workspace lock: %w", err)
		}
	}
	return nil
}
