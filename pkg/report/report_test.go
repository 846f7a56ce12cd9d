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

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pcomp/langfront/internal/memledger"
	"github.com/pcomp/langfront/pkg/semant"
	"github.com/pcomp/langfront/pkg/symtab"
	"github.com/pcomp/langfront/pkg/token"
)

func TestLexicalTable(t *testing.T) {
	var buf bytes.Buffer
	LexicalTable(&buf, []token.Token{
		{Kind: token.PRINCIPAL, Lexeme: "principal", Line: 1},
		{Kind: token.EOF, Lexeme: "EOF", Line: 2},
	})
	out := buf.String()
	if !strings.Contains(out, "principal") || !strings.Contains(out, "EOF") {
		t.Errorf("LexicalTable output missing expected rows: %q", out)
	}
}

func TestSyntacticVerdict(t *testing.T) {
	var accepted, rejected bytes.Buffer
	SyntacticVerdict(&accepted, true)
	SyntacticVerdict(&rejected, false)

	if !strings.Contains(accepted.String(), "SUCESSO") {
		t.Errorf("accepted verdict = %q, want mention of SUCESSO", accepted.String())
	}
	if !strings.Contains(rejected.String(), "FALHOU") {
		t.Errorf("rejected verdict = %q, want mention of FALHOU", rejected.String())
	}
}

func TestSymbolTable(t *testing.T) {
	symbols := symtab.New()
	symbols.Insert("!nome", symtab.Text, "global", symtab.SizeLimiter{Size1: 10}, true)
	symbols.Insert("!total", symtab.Integer, "principal", symtab.SizeLimiter{}, false)

	var buf bytes.Buffer
	SymbolTable(&buf, symbols)
	out := buf.String()
	if !strings.Contains(out, "!nome") || !strings.Contains(out, "[10]") {
		t.Errorf("SymbolTable output missing limiter rendering: %q", out)
	}
	if !strings.Contains(out, "Total de variáveis: 2") {
		t.Errorf("SymbolTable output missing total line: %q", out)
	}
}

func TestSemanticSummary(t *testing.T) {
	functions := semant.New(nil, symtab.New()).Functions()
	var buf bytes.Buffer
	SemanticSummary(&buf, true, functions)
	if !strings.Contains(buf.String(), "Alertas semânticos") {
		t.Errorf("SemanticSummary output = %q, want alert mention", buf.String())
	}
}

func TestMemoryFootprint(t *testing.T) {
	var buf bytes.Buffer
	MemoryFootprint(&buf, memledger.Summary{TotalCapacity: 2048 * 1024, Peak: 512, Remaining: 128})
	out := buf.String()
	if !strings.Contains(out, "2048 KB") || !strings.Contains(out, "512 bytes") {
		t.Errorf("MemoryFootprint output = %q, missing expected figures", out)
	}
}

func TestJSON(t *testing.T) {
	symbols := symtab.New()
	symbols.Insert("!x", symtab.Integer, "global", symtab.SizeLimiter{}, false)
	functions := semant.New(nil, symbols).Functions()

	var buf bytes.Buffer
	tokens := []token.Token{{Kind: token.PRINCIPAL, Lexeme: "principal", Line: 1}}
	if err := JSON(&buf, true, tokens, symbols, functions, false); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal output: %v\noutput: %s", err, buf.String())
	}
	if !doc.Accepted || len(doc.Symbols) != 1 || doc.Symbols[0].Name != "!x" {
		t.Errorf("decoded document = %+v, want accepted with one symbol !x", doc)
	}
}
