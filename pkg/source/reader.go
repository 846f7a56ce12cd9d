// Copyright 2015 Google Inc.
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

// Package source implements the byte-at-a-time view over a source file
// that the lexer scans. It holds a one-byte pushback buffer and a 1-based
// line counter, the same contract as the original reader's
// proximo_char/devolver_char pair.
package source

import (
	"bufio"
	"io"
)

// Reader streams bytes from an underlying io.Reader with one byte of
// pushback and line tracking.
type Reader struct {
	r    *bufio.Reader
	line int

	hasPending bool
	pending    byte
}

// NewReader returns a Reader over r, with the line counter starting at 1.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r), line: 1}
}

// Line returns the current 1-based line number: the line of the byte that
// would be returned by the next call to NextByte.
func (s *Reader) Line() int { return s.line }

// NextByte returns the next byte of input, or io.EOF when exhausted.
func (s *Reader) NextByte() (byte, error) {
	if s.hasPending {
		s.hasPending = false
		b := s.pending
		if b == '\n' {
			s.line++
		}
		return b, nil
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		s.line++
	}
	return b, nil
}

// PushBack returns b to the stream so the next call to NextByte returns it
// again. Only one byte of pushback is supported, matching the original's
// single-slot ungetc buffer. Pushing back a newline decrements the line
// counter, undoing the increment NextByte performed when it consumed it.
func (s *Reader) PushBack(b byte) {
	if b == '\n' {
		s.line--
	}
	s.pending = b
	s.hasPending = true
}
