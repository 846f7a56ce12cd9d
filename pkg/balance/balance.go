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

// Package balance implements the delimiter-balancing stack the parser
// threads alongside the grammar to verify that "(", "{", and "[" are
// properly nested and closed.
package balance

import "fmt"

// Item is one open delimiter waiting for its match.
type Item struct {
	Delimiter byte // '(', '{', or '['
	Line      int  // line the delimiter was opened on
}

// closes maps a closing delimiter to the opening delimiter it must match.
var closes = map[byte]byte{
	')': '(',
	'}': '{',
	']': '[',
}

// Stack is a LIFO of open delimiters. The zero value is ready to use,
// replacing the original's fixed 100-entry array with a slice that grows
// as needed.
type Stack struct {
	items []Item
}

// Push records that delimiter opened on line.
func (s *Stack) Push(delimiter byte, line int) {
	s.items = append(s.items, Item{Delimiter: delimiter, Line: line})
}

// Pop verifies that closing matches the delimiter on top of the stack and,
// if so, pops it. It reports an error describing the mismatch or the
// missing opener otherwise.
func (s *Stack) Pop(closing byte, line int) error {
	want, known := closes[closing]
	if len(s.items) == 0 {
		return fmt.Errorf("delimitador '%c' sem abertura correspondente na linha %d", closing, line)
	}
	top := s.items[len(s.items)-1]
	if !known || top.Delimiter != want {
		return fmt.Errorf("delimitador '%c' na linha %d não corresponde ao '%c' aberto na linha %d",
			closing, line, top.Delimiter, top.Line)
	}
	s.items = s.items[:len(s.items)-1]
	return nil
}

// Empty reports whether every opened delimiter has been closed.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Top returns the most recently opened, still-unclosed delimiter. It
// panics if the stack is empty; callers must check Empty first.
func (s *Stack) Top() Item { return s.items[len(s.items)-1] }

// Len returns the number of delimiters currently open.
func (s *Stack) Len() int { return len(s.items) }
