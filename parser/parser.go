/*
File    : lux/parser/parser.go

Package parser implements a recursive-descent, Pratt-style parser for
Lux. It consumes tokens lazily from a lexer.Lexer with two tokens of
lookahead and produces an ast.Program, or a single *SyntaxError: the
parser aborts on the first malformed construct rather than attempting
error recovery (spec.md §4.2, §7).
*/
package parser

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/lexer"
)

// Parser holds the two-token lookahead window and the underlying
// lexer. Use New to construct one and Parse to run it.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	next lexer.Token
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.cur = p.lex.NextToken()
	p.next = p.lex.NextToken()
	return p
}

// checkLexError panics with a *lexer.LexError if tok is an in-band
// lexer error token.
func checkLexError(tok lexer.Token) {
	if tok.Kind == lexer.KindError {
		panic(&lexer.LexError{Line: tok.Line, Column: tok.Column, Message: tok.Value})
	}
}

// Parse runs the parser to completion, returning the parsed Program
// or the first syntax (or, if the lexer surfaced one first, lexical)
// error encountered.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	checkLexError(p.cur)
	checkLexError(p.next)
	block := p.parseBlockUntil()
	p.expect(lexer.KindEOF, "")
	return &ast.Program{Block: block}, nil
}

// advance shifts the lookahead window forward by one token. If the
// newly current token is a lexer-reported error, advance immediately
// fails the parse with a *lexer.LexError rather than waiting for a
// grammar rule to stumble over it, since a malformed token can never
// form part of a valid program.
func (p *Parser) advance() {
	p.cur = p.next
	p.next = p.lex.NextToken()
	checkLexError(p.next)
}

func (p *Parser) isCurrent(kind lexer.Kind, value string) bool {
	return p.cur.Is(kind, value)
}

func (p *Parser) isNext(kind lexer.Kind, value string) bool {
	return p.next.Is(kind, value)
}

// expect requires the current token to match kind/value, returns it,
// and advances past it. An empty value matches any lexeme of that kind.
func (p *Parser) expect(kind lexer.Kind, value string) lexer.Token {
	if !p.isCurrent(kind, value) {
		p.fail("expected %s %q, found %s %q", kind, value, p.cur.Kind, p.cur.Value)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) fail(format string, args ...any) {
	panic(newSyntaxError(p.cur.Line, p.cur.Column, format, args...))
}

func (p *Parser) pos() ast.Position {
	return ast.Position{Line: p.cur.Line, Column: p.cur.Column}
}
