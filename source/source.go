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

// Package source reads and fingerprints source files for the fsview
// content cache. It is the default SourceReader: UTF-8 text with an
// optional BOM, fingerprinted with blake3. There is no encoding
// detection; sources that fail the decoding policy report a decode error.
package source

import (
	"bytes"
	"encoding/hex"
	"io"
	"unicode/utf8"

	billy "github.com/go-git/go-billy/v5"
	"github.com/zeebo/blake3"

	"fsview"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Reader loads source files through a billy filesystem and enforces the
// decoding policy for the configured language version.
type Reader struct {
	fs        billy.Basic
	asciiOnly bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithLanguageVersion sets the language version the sources target.
// Major versions before 3 restrict sources to ASCII, the default source
// encoding of legacy interpreters. Later versions accept UTF-8.
func WithLanguageVersion(major, minor int) Option {
	return func(r *Reader) {
		r.asciiOnly = major < 3
	}
}

// NewReader creates a Reader over fsys.
func NewReader(fsys billy.Basic, opts ...Option) *Reader {
	r := &Reader{fs: fsys}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadSource reads the file at path, applies the decoding policy and
// returns the text together with the lowercase hex blake3 fingerprint of
// the decoded bytes. Open and read failures are returned untouched;
// decoding failures carry fsview.KindDecode.
func (r *Reader) ReadSource(path string) (string, string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if err := r.checkEncoding(path, data); err != nil {
		return "", "", err
	}

	sum := blake3.Sum256(data)
	return string(data), hex.EncodeToString(sum[:]), nil
}

func (r *Reader) checkEncoding(path string, data []byte) error {
	if r.asciiOnly {
		for _, b := range data {
			if b >= utf8.RuneSelf {
				return &fsview.Error{Op: "decode", Path: path, Kind: fsview.KindDecode, Msg: "source is not valid ASCII"}
			}
		}
		return nil
	}
	if !utf8.Valid(data) {
		return &fsview.Error{Op: "decode", Path: path, Kind: fsview.KindDecode, Msg: "source is not valid UTF-8"}
	}
	return nil
}

var _ fsview.SourceReader = (*Reader)(nil)
