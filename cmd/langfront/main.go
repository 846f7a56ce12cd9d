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

// Program langfront runs the lexical, syntactic, and semantic analysis
// passes over a source file and prints the resulting trace.
//
// Usage: langfront [--tokens-only] [--format FORMAT] [--debug] [FILE]
//
// FILE defaults to codigo_fonte.txt in the current directory. FORMAT is
// "table" (the default, human readable) or "json" (machine readable).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/pcomp/langfront/internal/memledger"
	"github.com/pcomp/langfront/pkg/diag"
	"github.com/pcomp/langfront/pkg/lexer"
	"github.com/pcomp/langfront/pkg/parser"
	"github.com/pcomp/langfront/pkg/report"
	"github.com/pcomp/langfront/pkg/source"
	"github.com/pcomp/langfront/pkg/token"
)

const defaultSourcePath = "codigo_fonte.txt"

// stop lets tests substitute os.Exit.
var stop = os.Exit

func main() {
	var tokensOnly bool
	var format string
	var debug bool
	var help bool

	getopt.BoolVarLong(&tokensOnly, "tokens-only", 0, "stop after the lexical pass")
	getopt.StringVarLong(&format, "format", 0, "output format: table (default) or json", "FORMAT")
	getopt.BoolVarLong(&debug, "debug", 0, "dump the final symbol and function tables to stderr")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(func(o getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
		return
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
		return
	}

	if format == "" {
		format = "table"
	}
	if format != "table" && format != "json" {
		fmt.Fprintf(os.Stderr, "%s: formato inválido. Escolhas: table, json\n", format)
		stop(1)
		return
	}

	path := defaultSourcePath
	if args := getopt.Args(); len(args) > 0 {
		path = args[0]
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao abrir o arquivo '%s': %v\n", path, err)
		stop(1)
		return
	}

	ledger := memledger.New(memledger.DefaultCapacity)
	ledger.OnAlert(func(percent float64) {
		fmt.Printf("ALERTA: Uso de memória atingiu %.2f%% da capacidade total.\n", percent)
	})

	// Two independent readers over the same buffered content: one drives
	// the standalone lexical trace, the other drives the parser. This
	// replaces the original's single file handle plus rewind with two
	// cheap in-memory views, since io.Reader has no portable rewind.
	sink := diag.NewSink()
	tokens := scanAll(content, ledger)

	if format == "table" {
		fmt.Println("=== ANÁLISE LÉXICO-SINTÁTICA ===")
		report.LexicalTable(os.Stdout, tokens)
	}

	if tokensOnly {
		if format == "json" {
			emitTokensOnlyJSON(tokens)
		}
		if tokens[len(tokens)-1].IsError() {
			stop(1)
			return
		}
		stop(0)
		return
	}

	lex := lexer.New(source.NewReader(bytes.NewReader(content)), sink)
	p := parser.New(lex, sink)
	p.SetLedger(ledger)
	result := p.Parse()

	if format == "table" {
		report.SyntacticVerdict(os.Stdout, result.Accepted)
		if result.Accepted {
			report.SymbolTable(os.Stdout, result.Symbols)
		}
		report.SemanticSummary(os.Stdout, sink.HasSemanticAlert(), result.Functions)
		report.MemoryFootprint(os.Stdout, ledger.Report())
	} else {
		if err := report.JSON(os.Stdout, result.Accepted, tokens, result.Symbols, result.Functions, sink.HasSemanticAlert()); err != nil {
			fmt.Fprintf(os.Stderr, "erro ao gerar saída json: %v\n", err)
		}
	}

	if debug {
		fmt.Fprintln(os.Stderr, "--- estruturas finais ---")
		fmt.Fprintln(os.Stderr, pretty.Sprint(result.Symbols.Entries()))
		fmt.Fprintln(os.Stderr, pretty.Sprint(result.Functions.Entries()))
	}

	if !result.Accepted {
		stop(1)
		return
	}
	stop(0)
}

// scanAll runs a standalone lexical pass for the trace, charging each
// produced token's lexeme against ledger, and reporting lexical errors to
// a private sink so the standalone pass can't affect the parser's own
// diagnostics. Charged allocations are never released: the tokens they
// account for live on in the returned slice for the rest of the run.
func scanAll(content []byte, ledger *memledger.Ledger) []token.Token {
	sink := diag.NewSink()
	sink.Out = ioutil.Discard
	lex := lexer.New(source.NewReader(bytes.NewReader(content)), sink)

	var tokens []token.Token
	for {
		t := lex.NextToken()
		_, _ = ledger.Allocate(len(t.Lexeme))
		tokens = append(tokens, t)
		if t.IsEOF() || t.IsError() {
			break
		}
	}
	return tokens
}

func emitTokensOnlyJSON(tokens []token.Token) {
	type row struct {
		Line   int    `json:"line"`
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
	}
	rows := make([]row, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, row{Line: t.Line, Kind: t.Kind.String(), Lexeme: t.Lexeme})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(rows)
}
