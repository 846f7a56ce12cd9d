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

package source

import (
	"io"
	"strings"
	"testing"
)

func TestNextByteReadsInOrder(t *testing.T) {
	r := NewReader(strings.NewReader("ab"))
	for _, want := range []byte{'a', 'b'} {
		got, err := r.NextByte()
		if err != nil {
			t.Fatalf("NextByte() error: %v", err)
		}
		if got != want {
			t.Errorf("NextByte() = %q, want %q", got, want)
		}
	}
	if _, err := r.NextByte(); err != io.EOF {
		t.Errorf("NextByte() at end = %v, want io.EOF", err)
	}
}

func TestPushBackReplaysByte(t *testing.T) {
	r := NewReader(strings.NewReader("xy"))
	b, _ := r.NextByte()
	r.PushBack(b)
	got, err := r.NextByte()
	if err != nil || got != b {
		t.Fatalf("NextByte() after PushBack = (%q, %v), want (%q, nil)", got, err, b)
	}
	next, _ := r.NextByte()
	if next != 'y' {
		t.Errorf("NextByte() after replay = %q, want 'y'", next)
	}
}

func TestLineTracking(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb\nc"))
	if r.Line() != 1 {
		t.Fatalf("initial Line() = %d, want 1", r.Line())
	}
	r.NextByte() // 'a'
	if r.Line() != 1 {
		t.Errorf("Line() after 'a' = %d, want 1", r.Line())
	}
	r.NextByte() // '\n'
	if r.Line() != 2 {
		t.Errorf("Line() after newline = %d, want 2", r.Line())
	}
	r.NextByte() // 'b'
	nl, _ := r.NextByte() // '\n'
	r.PushBack(nl)
	if r.Line() != 2 {
		t.Errorf("Line() after pushing back newline = %d, want 2", r.Line())
	}
	r.NextByte()
	if r.Line() != 3 {
		t.Errorf("Line() after re-consuming newline = %d, want 3", r.Line())
	}
}
