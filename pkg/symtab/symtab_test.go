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

package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInsertRejectsDuplicateNames(t *testing.T) {
	tab := New()
	if ok := tab.Insert("!total", Integer, "global", SizeLimiter{}, false); !ok {
		t.Fatal("first Insert(\"!total\") = false, want true")
	}
	if ok := tab.Insert("!total", Text, "principal", SizeLimiter{}, false); ok {
		t.Fatal("duplicate Insert(\"!total\") = true, want false")
	}
	e, ok := tab.Find("!total")
	if !ok || e.Type != Integer {
		t.Errorf("Find(\"!total\") = (%+v, %v), want the original Integer entry unchanged", e, ok)
	}
}

func TestEntriesPreservesInsertionOrder(t *testing.T) {
	tab := New()
	tab.Insert("!c", Integer, "global", SizeLimiter{}, false)
	tab.Insert("!a", Text, "global", SizeLimiter{Size1: 20}, true)
	tab.Insert("!b", Decimal, "soma", SizeLimiter{Size1: 5, Size2: 2}, true)

	want := []*Entry{
		{Name: "!c", Type: Integer, Scope: "global"},
		{Name: "!a", Type: Text, Scope: "global", Limiter: SizeLimiter{Size1: 20}, HasLimiter: true},
		{Name: "!b", Type: Decimal, Scope: "soma", Limiter: SizeLimiter{Size1: 5, Size2: 2}, HasLimiter: true},
	}
	got := tab.Entries()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if tab.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tab.Len())
	}
}

func TestSetValue(t *testing.T) {
	tab := New()
	tab.Insert("!total", Integer, "global", SizeLimiter{}, false)
	tab.SetValue("!total", "10")
	tab.SetValue("!inexistente", "99") // no-op, name never declared

	e, _ := tab.Find("!total")
	if e.Value != "10" {
		t.Errorf("Value = %q, want \"10\"", e.Value)
	}
	if _, ok := tab.Find("!inexistente"); ok {
		t.Error("Find(\"!inexistente\") = true, want false")
	}
}

func TestDataTypeString(t *testing.T) {
	for typ, want := range map[DataType]string{Integer: "inteiro", Text: "texto", Decimal: "decimal"} {
		if got := typ.String(); got != want {
			t.Errorf("DataType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
