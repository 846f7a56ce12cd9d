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

package semant

// FunctionEntry records one declared function: where it was declared and
// whether any call site has referenced it.
type FunctionEntry struct {
	Name     string
	DeclLine int
	Called   bool
}

// FunctionTable is the insertion-ordered collection of declared functions,
// mirroring symtab.Table's map-plus-index shape.
type FunctionTable struct {
	byName map[string]*FunctionEntry
	order  []string
}

func newFunctionTable() *FunctionTable {
	return &FunctionTable{byName: map[string]*FunctionEntry{}}
}

// declare adds name to the table. The parser calls it once per
// functionDecl production, so a function declared twice reaches it twice;
// the second call is ignored without a warning and the first entry, with
// its DeclLine, is kept.
func (t *FunctionTable) declare(name string, line int) {
	if _, exists := t.byName[name]; exists {
		return
	}
	e := &FunctionEntry{Name: name, DeclLine: line}
	t.byName[name] = e
	t.order = append(t.order, name)
}

func (t *FunctionTable) find(name string) (*FunctionEntry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

func (t *FunctionTable) markCalled(name string) {
	if e, ok := t.byName[name]; ok {
		e.Called = true
	}
}

// Entries returns every declared function in declaration order.
func (t *FunctionTable) Entries() []*FunctionEntry {
	out := make([]*FunctionEntry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}

// Len returns the number of declared functions.
func (t *FunctionTable) Len() int { return len(t.order) }
