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

// Package semant implements the name-resolution and type-compatibility
// checks the parser invokes inline as it recognizes variable occurrences,
// function calls, assignments, and comparisons. It never halts the
// compilation: every finding is a warning routed through a *diag.Sink,
// not an error that aborts parsing.
package semant

import (
	"strings"

	"github.com/pcomp/langfront/pkg/diag"
	"github.com/pcomp/langfront/pkg/symtab"
	"github.com/pcomp/langfront/pkg/token"
)

// Analyzer owns the declared-functions table and reports through sink,
// resolving variable names against the symbol table the parser built.
type Analyzer struct {
	sink      *diag.Sink
	symbols   *symtab.Table
	functions *FunctionTable
}

// New returns an Analyzer that checks names against symbols and writes
// warnings to sink.
func New(sink *diag.Sink, symbols *symtab.Table) *Analyzer {
	return &Analyzer{sink: sink, symbols: symbols, functions: newFunctionTable()}
}

// Functions returns the declared-functions table, for reporting after
// analysis completes.
func (a *Analyzer) Functions() *FunctionTable { return a.functions }

// DeclareFunction registers a function declaration at line. Called by the
// parser on every functionDecl production, including "principal".
func (a *Analyzer) DeclareFunction(name string, line int) {
	a.functions.declare(name, line)
}

// CheckVarDeclared reports whether name is a declared variable, emitting a
// semantic alert at line if not.
func (a *Analyzer) CheckVarDeclared(name string, line int) bool {
	if _, ok := a.symbols.Find(name); !ok {
		a.sink.SemanticAlert(line, "variável '%s' não foi declarada", name)
		return false
	}
	return true
}

// CheckFuncDeclared reports whether name is a declared function, emitting
// a semantic alert at line if not. On success it marks the function as
// called.
func (a *Analyzer) CheckFuncDeclared(name string, line int) bool {
	if _, ok := a.functions.find(name); !ok {
		a.sink.SemanticAlert(line, "função '%s' não foi declarada", name)
		return false
	}
	a.functions.markCalled(name)
	return true
}

// inferLiteralType classifies a number literal's lexeme: Decimal if it
// contains a '.', Integer otherwise.
func inferLiteralType(lexeme string) symtab.DataType {
	if strings.Contains(lexeme, ".") {
		return symtab.Decimal
	}
	return symtab.Integer
}

// inferFirstTokenType infers the type of an expression from the first
// token that starts it, the same approximation the original analyzer
// uses (e.g. `"x" + 1` is treated as text because its first token is a
// string literal). This is a known limitation, preserved intentionally:
// it is not "fixed" to do real expression type-checking.
//
// ok is false only when kind is IDVARIAVEL and the name is undeclared; the
// caller has already been given a chance to warn about that separately
// and should skip any further type check in that case.
func (a *Analyzer) inferFirstTokenType(kind token.Kind, lexeme string) (symtab.DataType, bool) {
	switch kind {
	case token.LITTEXTO:
		return symtab.Text, true
	case token.NUMERO:
		return inferLiteralType(lexeme), true
	case token.IDVARIAVEL:
		if e, ok := a.symbols.Find(lexeme); ok {
			return e.Type, true
		}
		return 0, false
	default:
		// Anything else starting an expression (a function call, a
		// parenthesized sub-expression) defaults to Integer, matching
		// the original's fallback.
		return symtab.Integer, true
	}
}

// CheckAssignmentTypes validates `varName = <rhs>` where rhsKind/rhsLexeme
// describe the first token of the right-hand side expression. It also
// checks text and decimal size limiters against the literal value when
// the right-hand side is itself a literal.
func (a *Analyzer) CheckAssignmentTypes(varName string, rhsKind token.Kind, rhsLexeme string, line int) {
	entry, ok := a.symbols.Find(varName)
	if !ok {
		a.CheckVarDeclared(varName, line)
		return
	}

	valueType, ok := a.inferFirstTokenType(rhsKind, rhsLexeme)
	if !ok {
		// rhsKind was IDVARIAVEL and undeclared; already warned by the
		// caller's factor-level CheckVarDeclared call.
		return
	}

	if rhsKind == token.LITTEXTO {
		a.checkTextLimiter(entry, rhsLexeme, line)
	} else if rhsKind == token.NUMERO && valueType == symtab.Decimal {
		a.checkDecimalLimiter(entry, rhsLexeme, line)
	}

	if entry.Type != valueType {
		a.sink.SemanticAlert(line,
			"incompatibilidade de tipos na atribuição: variável '%s' é do tipo '%s', mas está recebendo valor do tipo '%s'",
			varName, entry.Type, valueType)
	}
}

// CheckComparisonTypes validates one relational comparison `lhs op rhs`,
// where each side is described by the first token of its expression.
func (a *Analyzer) CheckComparisonTypes(lhsKind token.Kind, lhsLexeme string, op string, rhsKind token.Kind, rhsLexeme string, line int) {
	lhsType, ok := a.inferFirstTokenType(lhsKind, lhsLexeme)
	if !ok {
		return
	}
	rhsType, ok := a.inferFirstTokenType(rhsKind, rhsLexeme)
	if !ok {
		return
	}

	textInvolved := lhsType == symtab.Text || rhsType == symtab.Text
	if textInvolved && lhsType != rhsType {
		a.sink.SemanticAlert(line, "operador '%s' não pode ser usado para comparar texto com número", op)
		return
	}
	if textInvolved && op != "==" && op != "<>" {
		a.sink.SemanticAlert(line, "operador '%s' não é válido para tipo texto; use apenas '==' ou '<>'", op)
	}
}

// CheckArithmeticOperands validates one arithmetic combination
// `lhs op rhs` inside an expr/term production. Supplemented from
// original_source's verificar_operacao_matematica_tipos, which the
// distilled spec dropped: text operands are never valid in arithmetic.
func (a *Analyzer) CheckArithmeticOperands(lhsKind token.Kind, lhsLexeme string, op string, rhsKind token.Kind, rhsLexeme string, line int) {
	lhsType, ok := a.inferFirstTokenType(lhsKind, lhsLexeme)
	if ok && lhsType == symtab.Text {
		a.sink.SemanticAlert(line, "operador matemático '%s' não pode ser usado com tipo texto", op)
		return
	}
	rhsType, ok := a.inferFirstTokenType(rhsKind, rhsLexeme)
	if ok && rhsType == symtab.Text {
		a.sink.SemanticAlert(line, "operador matemático '%s' não pode ser usado com tipo texto", op)
	}
}

// checkTextLimiter warns if literal (still carrying its original lexeme,
// without quotes — the lexer already strips them) exceeds entry's
// declared maximum length.
func (a *Analyzer) checkTextLimiter(entry *symtab.Entry, literal string, line int) {
	if entry.Type != symtab.Text || !entry.HasLimiter {
		return
	}
	if len(literal) > entry.Limiter.Size1 {
		a.sink.SemanticAlert(line,
			"texto atribuído à variável '%s' excede o tamanho máximo de %d caracteres",
			entry.Name, entry.Limiter.Size1)
	}
}

// checkDecimalLimiter warns if literal's digit counts before/after its
// decimal point exceed entry's declared limiter.
func (a *Analyzer) checkDecimalLimiter(entry *symtab.Entry, literal string, line int) {
	if entry.Type != symtab.Decimal || !entry.HasLimiter {
		return
	}
	before, after := splitDecimalDigits(literal)
	if before > entry.Limiter.Size1 {
		a.sink.SemanticAlert(line,
			"valor decimal para variável '%s' possui %d casas antes do ponto, mas o limite é %d",
			entry.Name, before, entry.Limiter.Size1)
	}
	if after > entry.Limiter.Size2 {
		a.sink.SemanticAlert(line,
			"valor decimal para variável '%s' possui %d casas depois do ponto, mas o limite é %d",
			entry.Name, after, entry.Limiter.Size2)
	}
}

// splitDecimalDigits counts the digits before and after the decimal point
// in literal (e.g. "12.345" -> 2, 3).
func splitDecimalDigits(literal string) (before, after int) {
	i := strings.IndexByte(literal, '.')
	if i < 0 {
		return len(literal), 0
	}
	return i, len(literal) - i - 1
}

// Finish emits an unused-function warning for every declared function
// other than "principal" that was never called. It is the Go counterpart
// of exibir_relatorio_semantico's function-usage sweep.
func (a *Analyzer) Finish() {
	for _, f := range a.functions.Entries() {
		if f.Name == "principal" || f.Called {
			continue
		}
		a.sink.SemanticAlert(f.DeclLine, "função '%s' foi declarada mas nunca foi utilizada", f.Name)
	}
}
