/*
File    : lux/parser/statements.go

Implements the statement grammar of spec.md §4.2: block parsing,
statement dispatch on the current token, and every statement form
(local, if/elseif/else, while, numeric for, repeat/until, function
declarations including method sugar, return, break, do...end, and
expression/assignment statements).
*/
package parser

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/lexer"
)

// atBlockEnd reports whether the current token terminates a block
// (spec.md §4.2: "end, elseif, else, until, or eof").
func (p *Parser) atBlockEnd() bool {
	if p.cur.Kind == lexer.KindEOF {
		return true
	}
	if p.cur.Kind != lexer.KindKeyword {
		return false
	}
	switch p.cur.Value {
	case "end", "elseif", "else", "until":
		return true
	}
	return false
}

// parseBlockUntil parses statements until a block terminator is
// reached. Stray ";" punctuators between statements are tolerated and
// skipped (spec.md's Program/Block notes).
func (p *Parser) parseBlockUntil() *ast.Block {
	pos := p.pos()
	block := &ast.Block{Position: pos}
	for !p.atBlockEnd() {
		if p.isCurrent(lexer.KindPunctuator, ";") {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.isCurrent(lexer.KindPunctuator, ";") {
			p.advance()
		}
	}
	return block
}

// parseStatement dispatches on the current token per spec.md §4.2.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.isCurrent(lexer.KindKeyword, "local"):
		return p.parseLocal()
	case p.isCurrent(lexer.KindKeyword, "if"):
		return p.parseIf()
	case p.isCurrent(lexer.KindKeyword, "while"):
		return p.parseWhile()
	case p.isCurrent(lexer.KindKeyword, "for"):
		return p.parseFor()
	case p.isCurrent(lexer.KindKeyword, "repeat"):
		return p.parseRepeat()
	case p.isCurrent(lexer.KindKeyword, "do"):
		return p.parseDo()
	case p.isCurrent(lexer.KindKeyword, "function"):
		return p.parseFunctionStatement()
	case p.isCurrent(lexer.KindKeyword, "return"):
		return p.parseReturn()
	case p.isCurrent(lexer.KindKeyword, "break"):
		pos := p.pos()
		p.advance()
		return &ast.BreakStatement{Position: pos}
	default:
		return p.parseExpressionOrAssignment()
	}
}

// parseLocal parses "local name, ... [= expr, ...]" and the
// "local function name(...) ... end" form.
func (p *Parser) parseLocal() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "local")

	if p.isCurrent(lexer.KindKeyword, "function") {
		p.advance()
		name := p.expect(lexer.KindIdentifier, "").Value
		params, body := p.parseParamsAndBody()
		return &ast.LocalFunction{
			Position: pos,
			Name:     name,
			Literal:  &ast.FunctionLiteral{Position: pos, Name: name, Params: params, Body: body},
		}
	}

	names := []string{p.expect(lexer.KindIdentifier, "").Value}
	for p.isCurrent(lexer.KindPunctuator, ",") {
		p.advance()
		names = append(names, p.expect(lexer.KindIdentifier, "").Value)
	}

	var values []ast.Expr
	if p.isCurrent(lexer.KindOperator, "=") {
		p.advance()
		values = p.parseExpressionList()
	}
	return &ast.LocalDeclaration{Position: pos, Names: names, Values: values}
}

// parseIf parses "if cond then block (elseif cond then block)* [else
// block] end".
func (p *Parser) parseIf() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "if")
	cond := p.parseExpression()
	p.expect(lexer.KindKeyword, "then")
	body := p.parseBlockUntil()

	stmt := &ast.IfStatement{Position: pos, Condition: cond, Body: body}
	for p.isCurrent(lexer.KindKeyword, "elseif") {
		p.advance()
		eCond := p.parseExpression()
		p.expect(lexer.KindKeyword, "then")
		eBody := p.parseBlockUntil()
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIfClause{Condition: eCond, Body: eBody})
	}
	if p.isCurrent(lexer.KindKeyword, "else") {
		p.advance()
		stmt.Else = p.parseBlockUntil()
	}
	p.expect(lexer.KindKeyword, "end")
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "while")
	cond := p.parseExpression()
	p.expect(lexer.KindKeyword, "do")
	body := p.parseBlockUntil()
	p.expect(lexer.KindKeyword, "end")
	return &ast.WhileStatement{Position: pos, Condition: cond, Body: body}
}

// parseFor parses the numeric-for form only (spec.md: "generic-for is
// not implemented"): "for name = start, finish [, step] do block end".
func (p *Parser) parseFor() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "for")
	varName := p.expect(lexer.KindIdentifier, "").Value
	p.expect(lexer.KindOperator, "=")
	start := p.parseExpression()
	p.expect(lexer.KindPunctuator, ",")
	finish := p.parseExpression()

	var step ast.Expr
	if p.isCurrent(lexer.KindPunctuator, ",") {
		p.advance()
		step = p.parseExpression()
	}
	p.expect(lexer.KindKeyword, "do")
	body := p.parseBlockUntil()
	p.expect(lexer.KindKeyword, "end")
	return &ast.ForStatement{Position: pos, Variable: varName, Start: start, Finish: finish, Step: step, Body: body}
}

// parseRepeat parses "repeat block until cond". The condition is
// evaluated in the body's own scope (spec.md §4.3), a fact recorded
// in the AST shape rather than here; the parser just pairs them.
func (p *Parser) parseRepeat() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "repeat")
	body := p.parseBlockUntil()
	p.expect(lexer.KindKeyword, "until")
	cond := p.parseExpression()
	return &ast.RepeatStatement{Position: pos, Body: body, Condition: cond}
}

// parseDo parses the "do ... end" block statement, added beyond the
// base grammar to support explicit block scoping (spec.md §8
// scenario 7; see SPEC_FULL.md §4).
func (p *Parser) parseDo() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "do")
	body := p.parseBlockUntil()
	p.expect(lexer.KindKeyword, "end")
	return &ast.DoStatement{Position: pos, Body: body}
}

// parseFunctionStatement parses "function name(...) ... end" and the
// method-sugar form "function a:b(...) ... end". The method form
// desugars here into a composite target name "a:b" is NOT how the
// original source works; instead the target is recorded as a
// MemberExpr on "a" named "b", and the resulting FunctionLiteral is
// marked IsMethod so the evaluator binds "self" from the first call
// argument (spec.md's Data Model note, with the §9 REDESIGN FLAG fix
// applied: self comes from the call, never a captured outer self).
func (p *Parser) parseFunctionStatement() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "function")

	first := p.expect(lexer.KindIdentifier, "")
	var target ast.Expr = &ast.Identifier{Position: pos, Name: first.Value}
	isMethod := false
	name := first.Value

	for p.isCurrent(lexer.KindOperator, ".") {
		p.advance()
		member := p.expect(lexer.KindIdentifier, "")
		target = &ast.MemberExpr{Position: pos, Prefix: target, Name: member.Value}
		name = name + "." + member.Value
	}
	if p.isCurrent(lexer.KindOperator, ":") {
		p.advance()
		method := p.expect(lexer.KindIdentifier, "")
		target = &ast.MemberExpr{Position: pos, Prefix: target, Name: method.Value}
		name = name + ":" + method.Value
		isMethod = true
	}

	params, body := p.parseParamsAndBody()
	if isMethod {
		// spec.md's Data Model: "a:b" expands to "a.b = function(self, …)".
		// self is an implicit leading parameter, not written by the user.
		params = append([]string{"self"}, params...)
	}
	lit := &ast.FunctionLiteral{Position: pos, Name: name, Params: params, Body: body, IsMethod: isMethod}
	return &ast.FunctionDeclaration{Position: pos, Target: target, Literal: lit}
}

// parseReturn parses "return [expr, ...]", stopping at any block
// terminator or ";" rather than requiring an expression.
func (p *Parser) parseReturn() ast.Stmt {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "return")
	stmt := &ast.ReturnStatement{Position: pos}
	if p.atBlockEnd() || p.isCurrent(lexer.KindPunctuator, ";") {
		return stmt
	}
	stmt.Expressions = p.parseExpressionList()
	return stmt
}

// parseExpressionOrAssignment parses a leading expression; if it is
// followed by "=", it becomes an AssignStmt, otherwise an
// ExpressionStatement. Multi-target assignment ("a, b = 1, 2") is not
// supported, per the Open Question in spec.md §9: the grammar only
// ever parses a single left-hand-side expression here.
func (p *Parser) parseExpressionOrAssignment() ast.Stmt {
	pos := p.pos()
	expr := p.parseExpression()
	if p.isCurrent(lexer.KindOperator, "=") {
		p.advance()
		value := p.parseExpression()
		return &ast.AssignStmt{Position: pos, Target: expr, Value: value}
	}
	return &ast.ExpressionStatement{Position: pos, Expr: expr}
}
