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

package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pcomp/langfront/pkg/diag"
	"github.com/pcomp/langfront/pkg/source"
	"github.com/pcomp/langfront/pkg/token"
)

// tok builds a token.Token for comparison, ignoring Line (set to 0) unless
// the test cares about it.
func tok(k token.Kind, lexeme string) token.Token {
	return token.Token{Kind: k, Lexeme: lexeme}
}

func scanAll(t *testing.T, in string) ([]token.Token, *diag.Sink) {
	t.Helper()
	var out bytes.Buffer
	sink := &diag.Sink{Out: &out}
	l := New(source.NewReader(strings.NewReader(in)), sink)
	var got []token.Token
	for {
		tk := l.NextToken()
		tk.Line = 0
		got = append(got, tk)
		if tk.IsEOF() || tk.IsError() {
			break
		}
	}
	return got, sink
}

func TestLexerTokens(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want []token.Token
	}{
		{"empty", "", []token.Token{tok(token.EOF, "EOF")}},
		{"reserved words", "funcao principal retorno", []token.Token{
			tok(token.FUNCAO, "funcao"),
			tok(token.PRINCIPAL, "principal"),
			tok(token.RETORNO, "retorno"),
			tok(token.EOF, "EOF"),
		}},
		{"variable", "!contador", []token.Token{
			tok(token.IDVARIAVEL, "!contador"),
			tok(token.EOF, "EOF"),
		}},
		{"function", "__somar", []token.Token{
			tok(token.IDFUNCAO, "__somar"),
			tok(token.EOF, "EOF"),
		}},
		{"integer literal", "42", []token.Token{
			tok(token.NUMERO, "42"),
			tok(token.EOF, "EOF"),
		}},
		{"decimal literal", "3.14", []token.Token{
			tok(token.NUMERO, "3.14"),
			tok(token.EOF, "EOF"),
		}},
		{"number then dot then number", "1..2", []token.Token{
			tok(token.NUMERO, "1."),
			tok(token.PONTO, "."),
			tok(token.NUMERO, "2"),
			tok(token.EOF, "EOF"),
		}},
		{"text literal", `"ola mundo"`, []token.Token{
			tok(token.LITTEXTO, "ola mundo"),
			tok(token.EOF, "EOF"),
		}},
		{"increment vs plus", "++ +", []token.Token{
			tok(token.INCREMENT, "++"),
			tok(token.SOMA, "+"),
			tok(token.EOF, "EOF"),
		}},
		{"decrement vs minus", "-- -", []token.Token{
			tok(token.DECREMENT, "--"),
			tok(token.SUBTRACAO, "-"),
			tok(token.EOF, "EOF"),
		}},
		{"relational operators", "== <> <= >= < >", []token.Token{
			tok(token.OPIGUAL, "=="),
			tok(token.OPDIFERENTE, "<>"),
			tok(token.OPMENORIG, "<="),
			tok(token.OPMAIORIG, ">="),
			tok(token.MENOR, "<"),
			tok(token.MAIOR, ">"),
			tok(token.EOF, "EOF"),
		}},
		{"logical operators", "&& ||", []token.Token{
			tok(token.OPE, "&&"),
			tok(token.OPOU, "||"),
			tok(token.EOF, "EOF"),
		}},
		{"assignment vs equality", "= ==", []token.Token{
			tok(token.ATRIBUICAO, "="),
			tok(token.OPIGUAL, "=="),
			tok(token.EOF, "EOF"),
		}},
		{"delimiters and punctuation", "(){}[];,.", []token.Token{
			tok(token.PARENESQ, "("),
			tok(token.PARENDIR, ")"),
			tok(token.CHAVEESQ, "{"),
			tok(token.CHAVEDIR, "}"),
			tok(token.COLCHETEESQ, "["),
			tok(token.COLCHETEDIR, "]"),
			tok(token.PONTOVIRGULA, ";"),
			tok(token.VIRGULA, ","),
			tok(token.PONTO, "."),
			tok(token.EOF, "EOF"),
		}},
		{"whitespace skipped", "  \t\n  !x  ", []token.Token{
			tok(token.IDVARIAVEL, "!x"),
			tok(token.EOF, "EOF"),
		}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := scanAll(t, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scan(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
	}{
		{"unterminated string", `"abc`},
		{"bare identifier not reserved", "foo"},
		{"lone ampersand", "&"},
		{"lone pipe", "|"},
		{"invalid variable name", "!1"},
		{"single underscore", "_x"},
		{"underscore not followed by alnum", "__ "},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, sink := scanAll(t, tt.in)
			last := got[len(got)-1]
			if !last.IsError() {
				t.Fatalf("scan(%q) = %v, want final token to be ERROR", tt.in, last)
			}
			if !sink.HasLexicalError() {
				t.Errorf("scan(%q): sink.HasLexicalError() = false, want true", tt.in)
			}
		})
	}
}

func TestLexerLineTracking(t *testing.T) {
	l := New(source.NewReader(strings.NewReader("!a\n!b\n\n!c")), diag.NewSink())
	var lines []int
	for {
		tk := l.NextToken()
		if tk.IsEOF() {
			break
		}
		lines = append(lines, tk.Line)
	}
	want := []int{1, 2, 4}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("line numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerStringLengthCap(t *testing.T) {
	long := strings.Repeat("a", 300)
	in := `"` + long + `"`
	got, _ := scanAll(t, in)
	if got[0].Kind != token.LITTEXTO {
		t.Fatalf("got kind %v, want LITTEXTO", got[0].Kind)
	}
	if len(got[0].Lexeme) != maxLexeme {
		t.Errorf("lexeme length = %d, want %d", len(got[0].Lexeme), maxLexeme)
	}
}
