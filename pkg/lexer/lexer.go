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

// Package lexer implements the lexical tokenization of the source
// language. NextToken returns one classified token per call, dispatching
// on the first non-whitespace byte the way the original hand-written
// scanner does; this file keeps that one-byte-lookahead dispatch shape
// but replaces its C buffer-and-sprintf error reporting with a
// diag.Sink.
package lexer

import (
	"fmt"

	"github.com/pcomp/langfront/pkg/diag"
	"github.com/pcomp/langfront/pkg/source"
	"github.com/pcomp/langfront/pkg/token"
)

// maxLexeme bounds the number of content bytes a string, identifier, or
// number literal may accumulate, matching the original's 255-byte buffer.
const maxLexeme = 255

// Lexer scans tokens from a *source.Reader, one character-lookahead at a
// time, with no internal buffering beyond that lookahead.
type Lexer struct {
	src  *source.Reader
	sink *diag.Sink

	halted bool // set once a lexical ERROR has been emitted; scanning stops
}

// New returns a Lexer reading from src and reporting lexical errors to
// sink.
func New(src *source.Reader, sink *diag.Sink) *Lexer {
	return &Lexer{src: src, sink: sink}
}

// next reads the next byte, returning ok=false at end of file.
func (l *Lexer) next() (byte, bool) {
	b, err := l.src.NextByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (l *Lexer) pushBack(b byte) { l.src.PushBack(b) }

func isDigit(b byte) bool     { return b >= '0' && b <= '9' }
func isLower(b byte) bool     { return b >= 'a' && b <= 'z' }
func isAlpha(b byte) bool     { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool     { return isAlpha(b) || isDigit(b) }
func isSpace(b byte) bool     { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isPrintable(b byte) bool { return b >= 0x20 && b < 0x7f }

// NextToken returns the next classified token. Once a lexical ERROR has
// been produced, every subsequent call returns the same synthetic EOF:
// the original scanner fails fast and callers must not keep scanning
// past an error.
func (l *Lexer) NextToken() token.Token {
	if l.halted {
		return token.Token{Kind: token.EOF, Lexeme: "EOF", Line: l.src.Line()}
	}

	for {
		b, ok := l.next()
		if !ok {
			return token.Token{Kind: token.EOF, Lexeme: "EOF", Line: l.src.Line()}
		}
		if isSpace(b) {
			continue
		}

		line := l.src.Line()

		switch b {
		case '+':
			return l.maybeDouble(b, '+', token.INCREMENT, token.SOMA, line)
		case '-':
			return l.maybeDouble(b, '-', token.DECREMENT, token.SUBTRACAO, line)
		case '*':
			return token.Token{Kind: token.MULTIPLICACAO, Lexeme: "*", Line: line}
		case '/':
			return token.Token{Kind: token.DIVISAO, Lexeme: "/", Line: line}
		case '^':
			return token.Token{Kind: token.EXPONENCIACAO, Lexeme: "^", Line: line}
		case '(':
			return token.Token{Kind: token.PARENESQ, Lexeme: "(", Line: line}
		case ')':
			return token.Token{Kind: token.PARENDIR, Lexeme: ")", Line: line}
		case '{':
			return token.Token{Kind: token.CHAVEESQ, Lexeme: "{", Line: line}
		case '}':
			return token.Token{Kind: token.CHAVEDIR, Lexeme: "}", Line: line}
		case '[':
			return token.Token{Kind: token.COLCHETEESQ, Lexeme: "[", Line: line}
		case ']':
			return token.Token{Kind: token.COLCHETEDIR, Lexeme: "]", Line: line}
		case ';':
			return token.Token{Kind: token.PONTOVIRGULA, Lexeme: ";", Line: line}
		case ',':
			return token.Token{Kind: token.VIRGULA, Lexeme: ",", Line: line}
		case '.':
			return token.Token{Kind: token.PONTO, Lexeme: ".", Line: line}
		case '=':
			if c, ok := l.next(); ok && c == '=' {
				return token.Token{Kind: token.OPIGUAL, Lexeme: "==", Line: line}
			} else if ok {
				l.pushBack(c)
			}
			return token.Token{Kind: token.ATRIBUICAO, Lexeme: "=", Line: line}
		case '<':
			c, ok := l.next()
			switch {
			case ok && c == '=':
				return token.Token{Kind: token.OPMENORIG, Lexeme: "<=", Line: line}
			case ok && c == '>':
				return token.Token{Kind: token.OPDIFERENTE, Lexeme: "<>", Line: line}
			}
			if ok {
				l.pushBack(c)
			}
			return token.Token{Kind: token.MENOR, Lexeme: "<", Line: line}
		case '>':
			if c, ok := l.next(); ok && c == '=' {
				return token.Token{Kind: token.OPMAIORIG, Lexeme: ">=", Line: line}
			} else if ok {
				l.pushBack(c)
			}
			return token.Token{Kind: token.MAIOR, Lexeme: ">", Line: line}
		case '&':
			if c, ok := l.next(); ok && c == '&' {
				return token.Token{Kind: token.OPE, Lexeme: "&&", Line: line}
			} else if ok {
				l.pushBack(c)
			}
			return l.fatal(line, "caractere inesperado: '&'")
		case '|':
			if c, ok := l.next(); ok && c == '|' {
				return token.Token{Kind: token.OPOU, Lexeme: "||", Line: line}
			} else if ok {
				l.pushBack(c)
			}
			return l.fatal(line, "caractere inesperado: '|'")
		case '"':
			return l.scanString(line)
		case '!':
			return l.scanVariable(line)
		}

		switch {
		case isDigit(b):
			return l.scanNumber(b, line)
		case b == '_':
			return l.scanFunction(line)
		case isAlpha(b):
			return l.scanKeyword(b, line)
		}

		if isPrintable(b) {
			return l.fatal(line, "caractere não reconhecido '%c'", b)
		}
		return l.fatal(line, "caractere não reconhecido (ASCII: %d)", b)
	}
}

// maybeDouble handles the "++"/"--" vs "+"/"-" ambiguity: two identical
// bytes in a row form the doubled token, otherwise the single byte is
// pushed back and the plain operator is returned.
func (l *Lexer) maybeDouble(b, double byte, doubled, single token.Kind, line int) token.Token {
	if c, ok := l.next(); ok && c == double {
		return token.Token{Kind: doubled, Lexeme: string([]byte{b, b}), Line: line}
	} else if ok {
		l.pushBack(c)
	}
	return token.Token{Kind: single, Lexeme: string(b), Line: line}
}

// fatal emits a lexical ERROR token and latches the lexer so further
// calls return EOF without scanning any more input.
func (l *Lexer) fatal(line int, format string, args ...interface{}) token.Token {
	msg := fmt.Sprintf(format, args...)
	l.sink.Lexical(line, format, args...)
	l.halted = true
	return token.Token{Kind: token.ERROR, Lexeme: msg, Line: line}
}

// scanString consumes a double-quoted text literal. The closing quote is
// not included in the lexeme. Maximum 255 content bytes; EOF before the
// closing quote is a fatal lexical error.
func (l *Lexer) scanString(line int) token.Token {
	var buf []byte
	for {
		b, ok := l.next()
		if !ok {
			return l.fatal(line, "string literal não fechada")
		}
		if b == '"' {
			return token.Token{Kind: token.LITTEXTO, Lexeme: string(buf), Line: line}
		}
		if len(buf) < maxLexeme {
			buf = append(buf, b)
		}
	}
}

// scanVariable consumes a "!"-prefixed variable identifier: "!" followed
// by a lowercase letter, then any run of alphanumerics.
func (l *Lexer) scanVariable(line int) token.Token {
	buf := []byte{'!'}
	c, ok := l.next()
	if !ok || !isLower(c) {
		if ok {
			l.pushBack(c)
		}
		return l.fatal(line, "nome de variável inválido. Esperado a-z após '!'")
	}
	buf = append(buf, c)
	for len(buf) < maxLexeme {
		c, ok := l.next()
		if !ok {
			break
		}
		if !isAlnum(c) {
			l.pushBack(c)
			break
		}
		buf = append(buf, c)
	}
	return token.Token{Kind: token.IDVARIAVEL, Lexeme: string(buf), Line: line}
}

// scanFunction consumes a "__"-prefixed function identifier. A single "_"
// not followed by a second "_" is a fatal lexical error.
func (l *Lexer) scanFunction(line int) token.Token {
	c, ok := l.next()
	if !ok || c != '_' {
		if ok {
			l.pushBack(c)
		}
		return l.fatal(line, "identificador inválido '_'")
	}
	buf := []byte{'_', '_'}
	c, ok = l.next()
	if !ok || !isAlnum(c) {
		if ok {
			l.pushBack(c)
		}
		return l.fatal(line, "nome de função inválido. Esperado caractere alfanumérico após '__'")
	}
	buf = append(buf, c)
	for len(buf) < maxLexeme {
		c, ok := l.next()
		if !ok {
			break
		}
		if !isAlnum(c) && c != '_' {
			l.pushBack(c)
			break
		}
		buf = append(buf, c)
	}
	return token.Token{Kind: token.IDFUNCAO, Lexeme: string(buf), Line: line}
}

// scanNumber consumes a digit run with at most one embedded '.'. A second
// '.' is not consumed: it terminates the literal and is pushed back so
// the next NextToken call lexes it as its own TOKEN_PONTO.
func (l *Lexer) scanNumber(first byte, line int) token.Token {
	buf := []byte{first}
	seenDot := false
	for len(buf) < maxLexeme {
		c, ok := l.next()
		if !ok {
			break
		}
		if c == '.' {
			if seenDot {
				l.pushBack(c)
				break
			}
			seenDot = true
			buf = append(buf, c)
			continue
		}
		if !isDigit(c) {
			l.pushBack(c)
			break
		}
		buf = append(buf, c)
	}
	return token.Token{Kind: token.NUMERO, Lexeme: string(buf), Line: line}
}

// scanKeyword consumes a bare identifier (letters, digits, underscores)
// and resolves it against the reserved-word set. Anything else is a
// fatal lexical error: user variables require the "!" prefix and user
// functions the "__" prefix.
func (l *Lexer) scanKeyword(first byte, line int) token.Token {
	buf := []byte{first}
	for len(buf) < maxLexeme {
		c, ok := l.next()
		if !ok {
			break
		}
		if !isAlnum(c) && c != '_' {
			l.pushBack(c)
			break
		}
		buf = append(buf, c)
	}
	word := string(buf)
	if kind, ok := token.Reserved(word); ok {
		return token.Token{Kind: kind, Lexeme: word, Line: line}
	}
	return l.fatal(line, "identificador ou palavra reservada inválida '%s'", word)
}
