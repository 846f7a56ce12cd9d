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

// Package diag collects the three kinds of diagnostics the front end can
// raise (lexical errors, syntactic errors, semantic alerts) in the order
// their offending tokens were consumed, and writes them to an io.Writer as
// they are raised. This is the "single analyzer context" the redesign note
// asks for in place of a flag checked ad hoc by every subsystem.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Kind distinguishes the three diagnostic severities described by the
// error-handling design.
type Kind int

const (
	// Lexical marks an unrecognized character or malformed token. Fatal.
	Lexical Kind = iota
	// Syntax marks a grammar mismatch or unbalanced delimiter. Fatal.
	Syntax
	// Semantic marks a non-fatal warning (undeclared name, type
	// mismatch, unused function, limiter overflow).
	Semantic
)

func (k Kind) label() string {
	switch k {
	case Lexical:
		return "ERRO LÉXICO"
	case Syntax:
		return "ERRO SINTÁTICO"
	case Semantic:
		return "ALERTA SEMÂNTICO"
	default:
		return "DIAGNÓSTICO"
	}
}

// Diagnostic is one recorded message.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
}

// String renders d the way it is written to the sink's writer.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (linha %d)", d.Kind.label(), d.Message, d.Line)
}

// Sink accumulates diagnostics in arrival order and tracks whether a fatal
// condition (lexical or syntactic) has been raised.
type Sink struct {
	// Out receives each diagnostic's String() as it is raised, followed
	// by a newline. Defaults to os.Stderr; tests substitute a buffer.
	Out io.Writer

	all          []Diagnostic
	syntaxError  bool
	lexicalError bool
	semanticUsed bool
}

// NewSink returns a Sink that writes to os.Stderr.
func NewSink() *Sink {
	return &Sink{Out: os.Stderr}
}

// Lexical records a fatal lexical error at line.
func (s *Sink) Lexical(line int, format string, args ...interface{}) {
	s.record(Kind(Lexical), line, format, args...)
	s.lexicalError = true
}

// Syntax records a fatal syntactic error at line.
func (s *Sink) Syntax(line int, format string, args ...interface{}) {
	s.record(Kind(Syntax), line, format, args...)
	s.syntaxError = true
}

// SemanticAlert records a non-fatal semantic warning at line.
func (s *Sink) SemanticAlert(line int, format string, args ...interface{}) {
	s.record(Kind(Semantic), line, format, args...)
	s.semanticUsed = true
}

func (s *Sink) record(k Kind, line int, format string, args ...interface{}) {
	d := Diagnostic{Kind: k, Line: line, Message: fmt.Sprintf(format, args...)}
	s.all = append(s.all, d)
	if s.Out != nil {
		fmt.Fprintln(s.Out, d.String())
	}
}

// All returns every diagnostic raised so far, in arrival order.
func (s *Sink) All() []Diagnostic { return s.all }

// HasSyntaxError reports whether a lexical or syntactic error was raised.
// Both are fatal to the acceptance verdict.
func (s *Sink) HasSyntaxError() bool { return s.syntaxError || s.lexicalError }

// HasLexicalError reports whether a lexical error specifically was raised.
func (s *Sink) HasLexicalError() bool { return s.lexicalError }

// HasSemanticAlert reports whether any semantic warning was raised.
func (s *Sink) HasSemanticAlert() bool { return s.semanticUsed }
