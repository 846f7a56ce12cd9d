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

// Package symtab implements the flat, insertion-ordered symbol table of
// declared variables. Per the redesign note, the original's intrusive
// linked list is replaced with a name-to-entry map plus an insertion-order
// index, keeping the same lookup/iteration guarantees without pointer
// chasing.
package symtab

// DataType is one of the three data types the language supports.
type DataType int

const (
	Integer DataType = iota
	Text
	Decimal
)

// String renders d the way it appears in the symbol-table report.
func (d DataType) String() string {
	switch d {
	case Integer:
		return "inteiro"
	case Text:
		return "texto"
	case Decimal:
		return "decimal"
	default:
		return "desconhecido"
	}
}

// SizeLimiter bounds the size of a Text or Decimal declaration. For Text,
// Size1 is the maximum character length and Size2 is unused. For Decimal,
// Size1 is the digit count before the decimal point and Size2 the digit
// count after.
type SizeLimiter struct {
	Size1 int
	Size2 int
}

// Entry is one declared variable.
type Entry struct {
	Name       string
	Type       DataType
	Value      string // recorded only through SetValue; the parser does not set it from an initializer
	Scope      string // the enclosing function's name, or "global"
	Limiter    SizeLimiter
	HasLimiter bool
}

// Table is the flat, program-global symbol table.
type Table struct {
	byName map[string]*Entry
	order  []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{byName: map[string]*Entry{}}
}

// Insert adds a new entry unless name is already declared, in which case
// it reports ok=false and leaves the table unchanged — duplicate
// declarations are the caller's (the parser's) responsibility to warn
// about, not the table's.
func (t *Table) Insert(name string, typ DataType, scope string, limiter SizeLimiter, hasLimiter bool) (ok bool) {
	if _, exists := t.byName[name]; exists {
		return false
	}
	t.byName[name] = &Entry{
		Name:       name,
		Type:       typ,
		Scope:      scope,
		Limiter:    limiter,
		HasLimiter: hasLimiter,
	}
	t.order = append(t.order, name)
	return true
}

// Find looks up name, returning the entry and ok=true if declared.
func (t *Table) Find(name string) (*Entry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// SetValue records the textual initializer value for an already-declared
// variable. It is a no-op if name is not declared.
func (t *Table) SetValue(name, value string) {
	if e, ok := t.byName[name]; ok {
		e.Value = value
	}
}

// Entries returns every declared entry in insertion order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}

// Len returns the number of declared variables.
func (t *Table) Len() int { return len(t.order) }
