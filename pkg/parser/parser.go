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

// Package parser implements a hand-written recursive-descent parser with
// one token of lookahead and no backtracking. It drives the lexer, the
// symbol and function tables, the delimiter-balance stack, and the
// semantic analyzer together as it recognizes the grammar, the same way
// the original single-pass compiler interleaves syntax and semantic
// checks instead of building an intermediate tree.
package parser

import (
	"strconv"
	"strings"

	"github.com/pcomp/langfront/internal/memledger"
	"github.com/pcomp/langfront/pkg/balance"
	"github.com/pcomp/langfront/pkg/diag"
	"github.com/pcomp/langfront/pkg/lexer"
	"github.com/pcomp/langfront/pkg/semant"
	"github.com/pcomp/langfront/pkg/symtab"
	"github.com/pcomp/langfront/pkg/token"
)

// globalScope labels variables declared outside any function.
const globalScope = "global"

// Result is the outcome of a completed Parse call.
type Result struct {
	Accepted  bool
	Symbols   *symtab.Table
	Functions *semant.FunctionTable
}

// Parser holds every piece of state a single parse needs: the token
// stream, the tables it populates, and the sink every subsystem reports
// through.
type Parser struct {
	lex  *lexer.Lexer
	sink *diag.Sink

	symbols  *symtab.Table
	analyzer *semant.Analyzer
	delims   balance.Stack
	ledger   *memledger.Ledger

	tok token.Token

	failed        bool
	principalSeen bool
}

// New returns a Parser reading tokens from lex and reporting through sink.
func New(lex *lexer.Lexer, sink *diag.Sink) *Parser {
	symbols := symtab.New()
	p := &Parser{
		lex:      lex,
		sink:     sink,
		symbols:  symbols,
		analyzer: semant.New(sink, symbols),
	}
	p.advance()
	return p
}

// SetLedger wires a memory ledger the parser charges one allocation
// against for every symbol and function it declares. Accounted
// allocations are never released: they live for the duration of the
// parse, the same way the original's alocar_memoria calls are never
// paired with a free until process exit. A nil ledger (the default)
// disables accounting entirely.
func (p *Parser) SetLedger(ledger *memledger.Ledger) {
	p.ledger = ledger
}

// account charges n bytes against the ledger, if one is wired. Errors
// (capacity exceeded) are bookkeeping-only and never affect parsing.
func (p *Parser) account(n int) {
	if p.ledger == nil {
		return
	}
	_, _ = p.ledger.Allocate(n)
}

// insertSymbol declares name in the symbol table and, on success,
// charges the declaration against the ledger.
func (p *Parser) insertSymbol(name string, typ symtab.DataType, scope string, limiter symtab.SizeLimiter, hasLimiter bool) bool {
	ok := p.symbols.Insert(name, typ, scope, limiter, hasLimiter)
	if ok {
		p.account(len(name))
	}
	return ok
}

// declareFunction registers name in the function table and charges the
// declaration against the ledger.
func (p *Parser) declareFunction(name string, line int) {
	p.analyzer.DeclareFunction(name, line)
	p.account(len(name))
}

// Parse recognizes the whole program and reports in Result.Accepted
// whether it was accepted: no lexical, no syntactic error, the balance
// stack closed, and exactly one "principal" module was declared.
func (p *Parser) Parse() Result {
	p.program()
	accepted := !p.failed && !p.sink.HasSyntaxError()
	if accepted {
		p.analyzer.Finish()
	}
	return Result{Accepted: accepted, Symbols: p.symbols, Functions: p.analyzer.Functions()}
}

// advance pulls the next token from the lexer into p.tok. Once a lexical
// ERROR has been seen, it leaves p.tok alone: the lexer itself now only
// ever yields EOF, and the parser must not pretend to make further
// progress past the error.
func (p *Parser) advance() {
	if p.tok.IsError() {
		return
	}
	p.tok = p.lex.NextToken()
}

// fail records a syntactic error at the current token's line and latches
// the parser so production functions unwind without reporting more than
// one root cause.
func (p *Parser) fail(format string, args ...interface{}) {
	if p.failed {
		return
	}
	p.failed = true
	p.sink.Syntax(p.tok.Line, format, args...)
}

// failLexical records that scanning stopped on a lexical ERROR. The lexer
// already reported the underlying message; this only marks the parse as
// unaccepted without adding a redundant diagnostic.
func (p *Parser) failLexical() {
	p.failed = true
}

// expect consumes the current token if its kind matches want, returning
// the consumed token. Otherwise it records a syntax error describing the
// mismatch and returns the zero token.
func (p *Parser) expect(want token.Kind) token.Token {
	if p.tok.IsError() {
		p.failLexical()
		return token.Token{}
	}
	if p.tok.Kind != want {
		p.fail("esperado %s mas encontrado %s ('%s') na linha %d", want, p.tok.Kind, p.tok.Lexeme, p.tok.Line)
		return token.Token{}
	}
	t := p.tok
	p.advance()
	return t
}

// rejectIfPresent reports a syntax error if the current token is kind,
// used to forbid a stray ';' right after a "se(...)" or "para(...)"
// header.
func (p *Parser) rejectIfPresent(kind token.Kind, context string) {
	if p.failed || p.tok.IsError() {
		return
	}
	if p.tok.Kind == kind {
		p.fail("token '%s' não deveria estar presente após %s na linha %d", p.tok.Lexeme, context, p.tok.Line)
	}
}

func (p *Parser) ok() bool { return !p.failed && !p.tok.IsError() }

// program recognizes (functionDecl | varDecl)* and the final acceptance
// conditions: exactly one "principal", and a closed delimiter stack.
func (p *Parser) program() {
	for p.ok() && p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.PRINCIPAL, token.FUNCAO:
			p.functionDecl()
		case token.INTEIRO, token.TEXTO, token.DECIMAL:
			p.varDecl(globalScope)
		default:
			p.fail("token inesperado '%s' na linha %d. Esperado função ou declaração de variável", p.tok.Lexeme, p.tok.Line)
			return
		}
		if !p.ok() {
			return
		}
	}
	if p.tok.IsError() {
		p.failLexical()
		return
	}

	if !p.principalSeen {
		p.fail("módulo principal inexistente")
		return
	}

	if !p.delims.Empty() {
		top := p.delims.Top()
		p.sink.Syntax(top.Line, "delimitador '%c' aberto na linha %d não foi fechado", top.Delimiter, top.Line)
		p.failed = true
	}
}

// functionDecl recognizes "principal" "(" ")" block | "funcao" funcId
// "(" paramList? ")" block.
func (p *Parser) functionDecl() {
	line := p.tok.Line
	var name string

	if p.tok.Kind == token.PRINCIPAL {
		if p.principalSeen {
			p.fail("módulo principal declarado mais de uma vez na linha %d", line)
			return
		}
		name = "principal"
		p.principalSeen = true
		p.declareFunction(name, line)
		p.advance()

		p.expectOpenParen()
		p.expectCloseParen()
	} else {
		p.advance() // consume "funcao"
		if p.tok.Kind != token.IDFUNCAO {
			p.fail("esperado nome de função após 'funcao' na linha %d", p.tok.Line)
			return
		}
		name = p.tok.Lexeme
		p.declareFunction(name, line)
		p.advance()

		p.expectOpenParen()
		if !p.ok() {
			return
		}

		if p.tok.Kind != token.PARENDIR {
			for {
				typ, ok := p.typeKeyword()
				if !ok {
					return
				}
				if p.tok.Kind != token.IDVARIAVEL {
					p.fail("esperado nome de variável para o parâmetro na linha %d", p.tok.Line)
					return
				}
				if !p.insertSymbol(p.tok.Lexeme, typ, name, symtab.SizeLimiter{}, false) {
					p.sink.SemanticAlert(p.tok.Line, "variável '%s' já foi declarada anteriormente", p.tok.Lexeme)
				}
				p.advance()

				if p.tok.Kind == token.VIRGULA {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.ok() {
			return
		}
		p.expectCloseParen()
	}

	if !p.ok() {
		return
	}
	p.block(name)
}

// typeKeyword consumes one of "inteiro"/"texto"/"decimal" and returns the
// corresponding symtab.DataType.
func (p *Parser) typeKeyword() (symtab.DataType, bool) {
	var typ symtab.DataType
	switch p.tok.Kind {
	case token.INTEIRO:
		typ = symtab.Integer
	case token.TEXTO:
		typ = symtab.Text
	case token.DECIMAL:
		typ = symtab.Decimal
	default:
		p.fail("esperado tipo de dado na linha %d", p.tok.Line)
		return 0, false
	}
	p.advance()
	return typ, p.ok()
}

// expectOpenParen consumes '(' and pushes it onto the balance stack.
func (p *Parser) expectOpenParen() {
	line := p.tok.Line
	p.expect(token.PARENESQ)
	if p.ok() {
		p.delims.Push('(', line)
	}
}

// expectCloseParen consumes ')' and pops its matching '(' from the stack.
func (p *Parser) expectCloseParen() {
	line := p.tok.Line
	p.expect(token.PARENDIR)
	if !p.ok() {
		return
	}
	if err := p.delims.Pop(')', line); err != nil {
		p.fail("%s", err.Error())
	}
}

// varDecl recognizes a "typeKw varName (, varName)* ;" declaration, scoped
// to scope (a function name, or globalScope at the top level).
func (p *Parser) varDecl(scope string) {
	typ, ok := p.typeKeyword()
	if !ok {
		return
	}

	for {
		if p.tok.Kind != token.IDVARIAVEL {
			p.fail("esperado nome de variável na linha %d", p.tok.Line)
			return
		}
		name := p.tok.Lexeme
		p.advance()
		if !p.ok() {
			return
		}

		limiter, hasLimiter := p.sizeSpec(typ)
		if !p.ok() {
			return
		}

		if !p.insertSymbol(name, typ, scope, limiter, hasLimiter) {
			p.sink.SemanticAlert(p.tok.Line, "variável '%s' já foi declarada anteriormente", name)
		}

		if p.tok.Kind == token.ATRIBUICAO {
			line := p.tok.Line
			p.advance()
			rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
			if !p.expr() {
				return
			}
			p.analyzer.CheckAssignmentTypes(name, rhsKind, rhsLexeme, line)
		}

		if p.tok.Kind == token.VIRGULA {
			p.advance()
			continue
		}
		break
	}
	if !p.ok() {
		return
	}
	p.expect(token.PONTOVIRGULA)
}

// sizeSpec recognizes an optional "[" NUMBER ("." NUMBER)? "]" limiter.
// For decimal types the digit run may arrive as one token ("10.2") or as
// two separate tokens joined by a TOKEN_PONTO ("10" "." "2"); both forms
// are accepted and yield the same limiter.
func (p *Parser) sizeSpec(typ symtab.DataType) (symtab.SizeLimiter, bool) {
	if p.tok.Kind != token.COLCHETEESQ {
		return symtab.SizeLimiter{}, false
	}
	line := p.tok.Line
	p.advance()
	p.delims.Push('[', line)

	if p.tok.Kind != token.NUMERO {
		p.fail("esperado número no limitador de tamanho na linha %d", p.tok.Line)
		return symtab.SizeLimiter{}, false
	}

	var limiter symtab.SizeLimiter
	if typ == symtab.Decimal {
		if before, after, ok := splitLimiterLiteral(p.tok.Lexeme); ok {
			limiter.Size1, limiter.Size2 = before, after
			p.advance()
		} else {
			limiter.Size1 = atoi(p.tok.Lexeme)
			p.advance()
			if p.ok() && p.tok.Kind == token.PONTO {
				p.advance()
				if p.tok.Kind != token.NUMERO {
					p.fail("esperado número após ponto no limitador decimal na linha %d", p.tok.Line)
					return symtab.SizeLimiter{}, false
				}
				limiter.Size2 = atoi(p.tok.Lexeme)
				p.advance()
			}
		}
	} else {
		limiter.Size1 = atoi(p.tok.Lexeme)
		p.advance()
	}
	if !p.ok() {
		return symtab.SizeLimiter{}, false
	}

	closeLine := p.tok.Line
	p.expect(token.COLCHETEDIR)
	if !p.ok() {
		return symtab.SizeLimiter{}, false
	}
	if err := p.delims.Pop(']', closeLine); err != nil {
		p.fail("%s", err.Error())
		return symtab.SizeLimiter{}, false
	}
	return limiter, true
}

// splitLimiterLiteral splits a single NUMERO lexeme like "10.2" into its
// two digit runs. ok is false if lexeme has no embedded '.', meaning the
// fractional part (if any) arrives as a separate token.
func splitLimiterLiteral(lexeme string) (before, after int, ok bool) {
	i := strings.IndexByte(lexeme, '.')
	if i < 0 {
		return 0, 0, false
	}
	return atoi(lexeme[:i]), atoi(lexeme[i+1:]), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// block recognizes "{" (varDecl | stmt)* "}", scoped to scope.
func (p *Parser) block(scope string) {
	if p.tok.Kind != token.CHAVEESQ {
		p.fail("esperado '{' para iniciar o bloco na linha %d", p.tok.Line)
		return
	}
	line := p.tok.Line
	p.delims.Push('{', line)
	p.advance()

	for p.ok() && p.tok.Kind != token.CHAVEDIR && p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.INTEIRO, token.TEXTO, token.DECIMAL:
			p.varDecl(scope)
		default:
			p.stmt(scope)
		}
		if !p.ok() {
			return
		}
	}
	if !p.ok() {
		return
	}

	closeLine := p.tok.Line
	p.expect(token.CHAVEDIR)
	if !p.ok() {
		return
	}
	if err := p.delims.Pop('}', closeLine); err != nil {
		p.fail("%s", err.Error())
	}
}

// blockOrStmt recognizes a block if the current token opens one, or a
// single statement otherwise — the shape every control-flow body shares.
func (p *Parser) blockOrStmt(scope string) {
	if p.tok.Kind == token.CHAVEESQ {
		p.block(scope)
		return
	}
	p.stmt(scope)
}

// stmt recognizes one of readStmt, writeStmt, ifStmt, forStmt, returnStmt,
// assignStmt, or callStmt.
func (p *Parser) stmt(scope string) {
	switch p.tok.Kind {
	case token.LEIA:
		p.readStmt()
	case token.ESCREVA:
		p.writeStmt()
	case token.SE:
		p.ifStmt(scope)
	case token.PARA:
		p.forStmt(scope)
	case token.RETORNO:
		p.returnStmt()
	case token.IDVARIAVEL:
		p.assignStmt()
	case token.IDFUNCAO:
		p.callStmt()
	default:
		p.fail("comando inválido iniciado por '%s' na linha %d", p.tok.Lexeme, p.tok.Line)
	}
}

// readStmt recognizes "leia" "(" varId ("," varId)* ")" ";".
func (p *Parser) readStmt() {
	p.advance()
	p.expectOpenParen()
	if !p.ok() {
		return
	}

	for {
		if p.tok.Kind != token.IDVARIAVEL {
			p.fail("esperado nome de variável na linha %d", p.tok.Line)
			return
		}
		p.analyzer.CheckVarDeclared(p.tok.Lexeme, p.tok.Line)
		p.advance()
		if !p.ok() {
			return
		}
		if p.tok.Kind == token.VIRGULA {
			p.advance()
			continue
		}
		break
	}
	if !p.ok() {
		return
	}
	p.expectCloseParen()
	if !p.ok() {
		return
	}
	p.expect(token.PONTOVIRGULA)
}

// writeStmt recognizes "escreva" "(" expr ("," expr)* ")" ";".
func (p *Parser) writeStmt() {
	p.advance()
	p.expectOpenParen()
	if !p.ok() {
		return
	}

	if p.tok.Kind != token.PARENDIR {
		for {
			if !p.expr() {
				return
			}
			if p.tok.Kind == token.VIRGULA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.ok() {
		return
	}
	p.expectCloseParen()
	if !p.ok() {
		return
	}
	p.expect(token.PONTOVIRGULA)
}

// ifStmt recognizes "se" "(" condition ")" (block|stmt) ("senao" (block|stmt))?.
func (p *Parser) ifStmt(scope string) {
	p.advance()
	p.expectOpenParen()
	if !p.ok() {
		return
	}
	if !p.condition() {
		return
	}
	p.expectCloseParen()
	if !p.ok() {
		return
	}
	p.rejectIfPresent(token.PONTOVIRGULA, "condição do 'se'")
	if !p.ok() {
		return
	}

	p.blockOrStmt(scope)
	if !p.ok() {
		return
	}

	if p.tok.Kind == token.SENAO {
		p.advance()
		if !p.ok() {
			return
		}
		p.blockOrStmt(scope)
	}
}

// forStmt recognizes "para" "(" (varId "=" expr)? ";" condition ";" forStep ")" (block|stmt).
func (p *Parser) forStmt(scope string) {
	p.advance()
	p.expectOpenParen()
	if !p.ok() {
		return
	}

	if p.tok.Kind == token.IDVARIAVEL {
		name := p.tok.Lexeme
		line := p.tok.Line
		p.advance()
		if !p.ok() {
			return
		}
		p.expect(token.ATRIBUICAO)
		if !p.ok() {
			return
		}
		rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
		if !p.expr() {
			return
		}
		p.analyzer.CheckAssignmentTypes(name, rhsKind, rhsLexeme, line)
	}
	if !p.ok() {
		return
	}
	p.expect(token.PONTOVIRGULA)
	if !p.ok() {
		return
	}

	if !p.condition() {
		return
	}
	p.expect(token.PONTOVIRGULA)
	if !p.ok() {
		return
	}

	// forStep
	if p.tok.Kind == token.IDVARIAVEL {
		name := p.tok.Lexeme
		line := p.tok.Line
		p.advance()
		if !p.ok() {
			return
		}
		switch p.tok.Kind {
		case token.ATRIBUICAO:
			p.advance()
			rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
			if !p.expr() {
				return
			}
			p.analyzer.CheckAssignmentTypes(name, rhsKind, rhsLexeme, line)
		case token.INCREMENT, token.DECREMENT:
			p.analyzer.CheckVarDeclared(name, line)
			p.advance()
		default:
			p.fail("esperado atribuição ou incremento/decremento na terceira parte do 'para' na linha %d", p.tok.Line)
			return
		}
	} else if p.tok.Kind == token.INCREMENT || p.tok.Kind == token.DECREMENT {
		p.advance()
		if !p.ok() {
			return
		}
		if p.tok.Kind != token.IDVARIAVEL {
			p.fail("esperado nome de variável após incremento/decremento na linha %d", p.tok.Line)
			return
		}
		p.analyzer.CheckVarDeclared(p.tok.Lexeme, p.tok.Line)
		p.advance()
	}
	if !p.ok() {
		return
	}

	p.expectCloseParen()
	if !p.ok() {
		return
	}
	p.rejectIfPresent(token.PONTOVIRGULA, "declaração do 'para'")
	if !p.ok() {
		return
	}
	p.blockOrStmt(scope)
}

// returnStmt recognizes "retorno" expr ";".
func (p *Parser) returnStmt() {
	p.advance()
	if !p.expr() {
		return
	}
	p.expect(token.PONTOVIRGULA)
}

// assignStmt recognizes "varId" "=" expr ";".
func (p *Parser) assignStmt() {
	name := p.tok.Lexeme
	line := p.tok.Line
	p.advance()
	if !p.ok() {
		return
	}
	p.expect(token.ATRIBUICAO)
	if !p.ok() {
		return
	}

	rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
	if !p.expr() {
		return
	}
	p.analyzer.CheckAssignmentTypes(name, rhsKind, rhsLexeme, line)

	p.expect(token.PONTOVIRGULA)
}

// callStmt recognizes "funcId" "(" (expr ("," expr)*)? ")" ";" used as a
// standalone statement.
func (p *Parser) callStmt() {
	name := p.tok.Lexeme
	line := p.tok.Line
	p.advance()
	p.analyzer.CheckFuncDeclared(name, line)
	if !p.ok() {
		return
	}

	p.expectOpenParen()
	if !p.ok() {
		return
	}
	if p.tok.Kind != token.PARENDIR {
		for {
			if !p.expr() {
				return
			}
			if p.tok.Kind == token.VIRGULA {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.ok() {
		return
	}
	p.expectCloseParen()
	if !p.ok() {
		return
	}
	p.expect(token.PONTOVIRGULA)
}

// expr recognizes term (("+"|"-") term)*, checking each arithmetic
// combination's operand types against text.
func (p *Parser) expr() bool {
	lhsKind, lhsLexeme := p.tok.Kind, p.tok.Lexeme
	if !p.term() {
		return false
	}

	for p.ok() && (p.tok.Kind == token.SOMA || p.tok.Kind == token.SUBTRACAO) {
		op := p.tok.Lexeme
		line := p.tok.Line
		p.advance()
		if !p.ok() {
			return false
		}
		rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
		if !p.term() {
			return false
		}
		p.analyzer.CheckArithmeticOperands(lhsKind, lhsLexeme, op, rhsKind, rhsLexeme, line)
		lhsKind, lhsLexeme = rhsKind, rhsLexeme
	}
	return p.ok()
}

// term recognizes factor (("*"|"/"|"^") factor)*.
func (p *Parser) term() bool {
	lhsKind, lhsLexeme := p.tok.Kind, p.tok.Lexeme
	if !p.factor() {
		return false
	}

	for p.ok() && (p.tok.Kind == token.MULTIPLICACAO || p.tok.Kind == token.DIVISAO || p.tok.Kind == token.EXPONENCIACAO) {
		op := p.tok.Lexeme
		line := p.tok.Line
		p.advance()
		if !p.ok() {
			return false
		}
		rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
		if !p.factor() {
			return false
		}
		p.analyzer.CheckArithmeticOperands(lhsKind, lhsLexeme, op, rhsKind, rhsLexeme, line)
		lhsKind, lhsLexeme = rhsKind, rhsLexeme
	}
	return p.ok()
}

// factor recognizes NUMBER | TEXT | varId | funcId "(" args? ")" | "(" expr ")".
func (p *Parser) factor() bool {
	switch p.tok.Kind {
	case token.NUMERO, token.LITTEXTO:
		p.advance()
		return p.ok()

	case token.IDVARIAVEL:
		p.analyzer.CheckVarDeclared(p.tok.Lexeme, p.tok.Line)
		p.advance()
		return p.ok()

	case token.IDFUNCAO:
		name := p.tok.Lexeme
		line := p.tok.Line
		p.advance()
		p.analyzer.CheckFuncDeclared(name, line)
		if !p.ok() {
			return false
		}
		p.expectOpenParen()
		if !p.ok() {
			return false
		}
		if p.tok.Kind != token.PARENDIR {
			for {
				if !p.expr() {
					return false
				}
				if p.tok.Kind == token.VIRGULA {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.ok() {
			return false
		}
		p.expectCloseParen()
		return p.ok()

	case token.PARENESQ:
		line := p.tok.Line
		p.delims.Push('(', line)
		p.advance()
		if !p.expr() {
			return false
		}
		p.expectCloseParen()
		return p.ok()

	default:
		if p.tok.IsError() {
			p.failLexical()
			return false
		}
		p.fail("fator inválido '%s' na linha %d", p.tok.Lexeme, p.tok.Line)
		return false
	}
}

// condition recognizes relExpr (("&&"|"||") relExpr)*.
func (p *Parser) condition() bool {
	if !p.relExpr() {
		return false
	}
	for p.ok() && (p.tok.Kind == token.OPE || p.tok.Kind == token.OPOU) {
		p.advance()
		if !p.ok() {
			return false
		}
		if !p.relExpr() {
			return false
		}
	}
	return p.ok()
}

// relExpr recognizes expr relOp expr, where relOp is one of "==", "<>",
// "<", "<=", ">", ">=". The type compatibility of the two operands is
// checked from the first token of each.
func (p *Parser) relExpr() bool {
	lhsKind, lhsLexeme, line := p.tok.Kind, p.tok.Lexeme, p.tok.Line
	if !p.expr() {
		return false
	}

	if !isRelOp(p.tok.Kind) {
		p.fail("esperado operador relacional na condição na linha %d", p.tok.Line)
		return false
	}
	op := p.tok.Lexeme
	p.advance()
	if !p.ok() {
		return false
	}

	rhsKind, rhsLexeme := p.tok.Kind, p.tok.Lexeme
	if !p.expr() {
		return false
	}

	p.analyzer.CheckComparisonTypes(lhsKind, lhsLexeme, op, rhsKind, rhsLexeme, line)
	return true
}

func isRelOp(k token.Kind) bool {
	switch k {
	case token.OPIGUAL, token.OPDIFERENTE, token.MENOR, token.OPMENORIG, token.MAIOR, token.OPMAIORIG:
		return true
	default:
		return false
	}
}
