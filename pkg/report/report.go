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

// Package report formats the tabular trace the driver prints: the
// lexical table, the syntactic verdict, the symbol-table dump, the
// semantic summary, and the memory footprint. None of this lives in
// pkg/parser or pkg/semant themselves — those packages only ever write
// through a *diag.Sink — so a rejected parse still gets a lexical table
// and a clear verdict line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pcomp/langfront/internal/memledger"
	"github.com/pcomp/langfront/pkg/semant"
	"github.com/pcomp/langfront/pkg/symtab"
	"github.com/pcomp/langfront/pkg/token"
)

// newTabwriter returns a tabwriter configured the way every table in this
// package is rendered: minwidth 0, tabwidth 0, one space of padding,
// columns aligned with spaces (no separator character). There is no source-tree equivalent of
// pkg/indent's column alignment in the pack (only its test file was
// retrieved, not its implementation), so this uses the standard
// library's own column-alignment writer instead of reinventing one.
func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
}

// LexicalTable writes one row per token in tokens: LINE | KIND | LEXEME.
func LexicalTable(w io.Writer, tokens []token.Token) {
	tw := newTabwriter(w)
	fmt.Fprintln(tw, "LINHA\t TOKEN\t LEXEMA")
	for _, t := range tokens {
		fmt.Fprintf(tw, "%d\t %s\t %s\n", t.Line, t.Kind, t.Lexeme)
	}
	tw.Flush()
}

// SyntacticVerdict writes the single accept/reject line.
func SyntacticVerdict(w io.Writer, accepted bool) {
	if accepted {
		fmt.Fprintln(w, "✓ ANÁLISE SINTÁTICA CONCLUÍDA COM SUCESSO! Programa sintaticamente correto.")
		return
	}
	fmt.Fprintln(w, "✗ ANÁLISE SINTÁTICA FALHOU! Erros sintáticos encontrados no programa.")
}

// SymbolTable writes the declared-variables report: NAME | TYPE | SCOPE |
// LIMITER | VALUE.
func SymbolTable(w io.Writer, symbols *symtab.Table) {
	fmt.Fprintln(w, "\n------------- TABELA DE SÍMBOLOS -------------")
	tw := newTabwriter(w)
	fmt.Fprintln(tw, "NOME\t TIPO\t ESCOPO\t LIMITADOR\t VALOR")
	for _, e := range symbols.Entries() {
		limiter := "N/A"
		if e.HasLimiter {
			switch e.Type {
			case symtab.Text:
				limiter = fmt.Sprintf("[%d]", e.Limiter.Size1)
			case symtab.Decimal:
				limiter = fmt.Sprintf("[%d.%d]", e.Limiter.Size1, e.Limiter.Size2)
			}
		}
		value := e.Value
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(tw, "%s\t %s\t %s\t %s\t %s\n", e.Name, e.Type, e.Scope, limiter, value)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total de variáveis: %d\n", symbols.Len())
}

// SemanticSummary writes the closing semantic report line: whether any
// warnings were raised, and the total function count.
func SemanticSummary(w io.Writer, hasAlert bool, functions *semant.FunctionTable) {
	fmt.Fprintln(w, "\n------------- RELATÓRIO SEMÂNTICO -------------")
	if hasAlert {
		fmt.Fprintln(w, "⚠ Alertas semânticos foram emitidos durante a análise.")
	} else {
		fmt.Fprintln(w, "✓ Análise semântica concluída sem alertas.")
	}
	fmt.Fprintf(w, "Total de funções declaradas: %d\n", functions.Len())
}

// MemoryFootprint writes the allocation summary the driver collected
// through internal/memledger.
func MemoryFootprint(w io.Writer, s memledger.Summary) {
	fmt.Fprintln(w, "\n------------- RELATÓRIO DE MEMÓRIA -------------")
	fmt.Fprintf(w, "Memória Total Disponível: %d KB\n", s.TotalCapacity/1024)
	fmt.Fprintf(w, "Pico de Memória Utilizada: %d bytes\n", s.Peak)
	fmt.Fprintf(w, "Memória Restante ao Final: %d bytes\n", s.Remaining)
}

// jsonSymbol and jsonDocument mirror the table report's fields for the
// "--format json" alternate dump. No library in the pack offers a JSON
// encoder (the teacher's tree/proto/types formatters all target YANG's
// own marshalers, and go-cmp/godebug are test-only comparison tools), so
// this is one of the few places the standard library is used directly.
type jsonSymbol struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Scope   string `json:"scope"`
	Limiter string `json:"limiter,omitempty"`
	Value   string `json:"value,omitempty"`
}

type jsonDocument struct {
	Accepted         bool         `json:"accepted"`
	Tokens           []string     `json:"tokens"`
	Symbols          []jsonSymbol `json:"symbols"`
	FunctionsTotal   int          `json:"functionsTotal"`
	HasSemanticAlert bool         `json:"hasSemanticAlert"`
}

// JSON writes the verdict, the token list, the symbol table, the function
// count, and the semantic-alert flag, machine-readable. Unlike the table
// report it lists the symbols even for a rejected program, and it does not
// include the memory footprint.
func JSON(w io.Writer, accepted bool, tokens []token.Token, symbols *symtab.Table, functions *semant.FunctionTable, hasAlert bool) error {
	doc := jsonDocument{
		Accepted:         accepted,
		HasSemanticAlert: hasAlert,
		FunctionsTotal:   functions.Len(),
	}
	for _, t := range tokens {
		doc.Tokens = append(doc.Tokens, t.String())
	}
	for _, e := range symbols.Entries() {
		js := jsonSymbol{Name: e.Name, Type: e.Type.String(), Scope: e.Scope, Value: e.Value}
		if e.HasLimiter {
			switch e.Type {
			case symtab.Text:
				js.Limiter = fmt.Sprintf("[%d]", e.Limiter.Size1)
			case symtab.Decimal:
				js.Limiter = fmt.Sprintf("[%d.%d]", e.Limiter.Size1, e.Limiter.Size2)
			}
		}
		doc.Symbols = append(doc.Symbols, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
