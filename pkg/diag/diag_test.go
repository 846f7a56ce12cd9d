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

package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestSinkRecordsInArrivalOrder(t *testing.T) {
	var buf bytes.Buffer
	s := &Sink{Out: &buf}
	s.Lexical(1, "caractere inválido '%c'", '$')
	s.Syntax(2, "esperado ';'")
	s.SemanticAlert(3, "variável %q não declarada", "!x")

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	if all[0].Kind != Lexical || all[1].Kind != Syntax || all[2].Kind != Semantic {
		t.Errorf("All() kinds = %v, %v, %v", all[0].Kind, all[1].Kind, all[2].Kind)
	}
	if !strings.Contains(buf.String(), "ERRO LÉXICO") || !strings.Contains(buf.String(), "ALERTA SEMÂNTICO") {
		t.Errorf("Out did not receive expected labels: %q", buf.String())
	}
}

func TestHasSyntaxErrorCoversBothFatalKinds(t *testing.T) {
	s := &Sink{}
	if s.HasSyntaxError() {
		t.Fatal("fresh Sink reports a syntax error")
	}
	s.Lexical(1, "erro")
	if !s.HasSyntaxError() || !s.HasLexicalError() {
		t.Error("after Lexical: want HasSyntaxError and HasLexicalError both true")
	}

	s2 := &Sink{}
	s2.Syntax(1, "erro")
	if !s2.HasSyntaxError() || s2.HasLexicalError() {
		t.Error("after Syntax only: want HasSyntaxError true, HasLexicalError false")
	}
}

func TestHasSemanticAlert(t *testing.T) {
	s := &Sink{}
	if s.HasSemanticAlert() {
		t.Fatal("fresh Sink reports a semantic alert")
	}
	s.SemanticAlert(1, "aviso")
	if !s.HasSemanticAlert() {
		t.Error("after SemanticAlert: want HasSemanticAlert true")
	}
}

func TestNewSinkDefaultsToStderr(t *testing.T) {
	s := NewSink()
	if s.Out == nil {
		t.Error("NewSink().Out = nil, want os.Stderr")
	}
}
