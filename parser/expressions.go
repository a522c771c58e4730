/*
File    : lux/parser/expressions.go

Implements the expression precedence ladder of spec.md §4.2, lowest
precedence first, plus the concatenation operator wired in per the
Open Question in spec.md §9 (right-associative, between relational
and additive — see DESIGN.md for the rationale).
*/
package parser

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/lexer"
)

// parseExpression is the entry point of the ladder (level 1: or).
func (p *Parser) parseExpression() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.isCurrent(lexer.KindKeyword, "or") {
		pos := p.pos()
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Position: pos, Op: "or", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseRel()
	for p.isCurrent(lexer.KindKeyword, "and") {
		pos := p.pos()
		p.advance()
		right := p.parseRel()
		left = &ast.BinaryExpr{Position: pos, Op: "and", Left: left, Right: right}
	}
	return left
}

// relOps is the set of relational-level operator lexemes (spec.md
// §4.2 level 3). "~" is accepted alongside "~=" because older source
// may still emit a bare "~"; the lexer itself now emits "~=" whenever
// "=" follows (the §9 REDESIGN FLAG fix), but the parser stays
// tolerant of either spelling.
var relOps = map[string]bool{
	"==": true, "~=": true, "~": true,
	"<": true, ">": true, "<=": true, ">=": true,
}

func (p *Parser) parseRel() ast.Expr {
	left := p.parseConcat()
	for p.cur.Kind == lexer.KindOperator && relOps[p.cur.Value] {
		pos := p.pos()
		op := p.cur.Value
		if op == "~" {
			op = "~="
		}
		p.advance()
		right := p.parseConcat()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// parseConcat implements ".." as a right-associative operator binding
// weaker than "+"/"-" and stronger than the relational operators.
func (p *Parser) parseConcat() ast.Expr {
	left := p.parseAdd()
	if p.isCurrent(lexer.KindOperator, "..") {
		pos := p.pos()
		p.advance()
		right := p.parseConcat() // right-recursive: right-associative
		return &ast.BinaryExpr{Position: pos, Op: "..", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdd() ast.Expr {
	left := p.parseMul()
	for p.cur.Kind == lexer.KindOperator && (p.cur.Value == "+" || p.cur.Value == "-") {
		pos := p.pos()
		op := p.cur.Value
		p.advance()
		right := p.parseMul()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMul() ast.Expr {
	left := p.parseUnary()
	for p.cur.Kind == lexer.KindOperator && (p.cur.Value == "*" || p.cur.Value == "/" || p.cur.Value == "%") {
		pos := p.pos()
		op := p.cur.Value
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Position: pos, Op: op, Left: left, Right: right}
	}
	return left
}

// unaryOps is the set of prefix unary operators (spec.md §4.2 level 6).
var unaryOps = map[string]bool{"-": true, "~": true, "#": true}

func (p *Parser) parseUnary() ast.Expr {
	if p.isCurrent(lexer.KindKeyword, "not") {
		pos := p.pos()
		p.advance()
		return &ast.UnaryExpr{Position: pos, Op: "not", Operand: p.parseUnary()}
	}
	if p.cur.Kind == lexer.KindOperator && unaryOps[p.cur.Value] {
		pos := p.pos()
		op := p.cur.Value
		p.advance()
		return &ast.UnaryExpr{Position: pos, Op: op, Operand: p.parseUnary()}
	}
	return p.parsePrimary()
}

// parsePrimary parses a primary expression and then greedily consumes
// any postfix call/index/member steps, building a left-leaning chain
// (spec.md's Data Model invariant on chained postfix operations).
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.pos()

	switch {
	case p.cur.Kind == lexer.KindNumber:
		v := p.cur.NumberValue
		p.advance()
		return &ast.NumberLiteral{Position: pos, Value: v}

	case p.cur.Kind == lexer.KindString:
		v := p.cur.Value
		p.advance()
		return &ast.StringLiteral{Position: pos, Value: v}

	case p.isCurrent(lexer.KindKeyword, "true"):
		p.advance()
		return &ast.BooleanLiteral{Position: pos, Value: true}

	case p.isCurrent(lexer.KindKeyword, "false"):
		p.advance()
		return &ast.BooleanLiteral{Position: pos, Value: false}

	case p.isCurrent(lexer.KindKeyword, "nil"):
		p.advance()
		return &ast.NilLiteral{Position: pos}

	case p.isCurrent(lexer.KindKeyword, "function"):
		return p.parseFunctionLiteral()

	case p.isCurrent(lexer.KindPunctuator, "("):
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.KindPunctuator, ")")
		return p.parsePostfix(inner)

	case p.isCurrent(lexer.KindPunctuator, "{"):
		return p.parseTableConstructor()

	case p.cur.Kind == lexer.KindIdentifier:
		name := p.cur.Value
		p.advance()
		return p.parsePostfix(&ast.Identifier{Position: pos, Name: name})
	}

	p.fail("unexpected token at expression position: %s %q", p.cur.Kind, p.cur.Value)
	return nil
}

// parsePostfix greedily consumes zero or more "(args)", "[expr]", and
// ".name" steps, each wrapping prefix as its own Prefix field.
func (p *Parser) parsePostfix(prefix ast.Expr) ast.Expr {
	for {
		switch {
		case p.isCurrent(lexer.KindPunctuator, "("):
			pos := p.pos()
			args := p.parseArgs()
			prefix = &ast.CallExpr{Position: pos, Prefix: prefix, Args: args}

		case p.isCurrent(lexer.KindPunctuator, "["):
			pos := p.pos()
			p.advance()
			idx := p.parseExpression()
			p.expect(lexer.KindPunctuator, "]")
			prefix = &ast.IndexExpr{Position: pos, Prefix: prefix, Index: idx}

		case p.isCurrent(lexer.KindOperator, "."):
			pos := p.pos()
			p.advance()
			name := p.expect(lexer.KindIdentifier, "")
			prefix = &ast.MemberExpr{Position: pos, Prefix: prefix, Name: name.Value}

		default:
			return prefix
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(lexer.KindPunctuator, "(")
	var args []ast.Expr
	if !p.isCurrent(lexer.KindPunctuator, ")") {
		args = append(args, p.parseExpression())
		for p.isCurrent(lexer.KindPunctuator, ",") {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.KindPunctuator, ")")
	return args
}

// parseExpressionList parses a comma-separated list of expressions,
// used by return statements, local declarations, and table fields.
func (p *Parser) parseExpressionList() []ast.Expr {
	list := []ast.Expr{p.parseExpression()}
	for p.isCurrent(lexer.KindPunctuator, ",") {
		p.advance()
		list = append(list, p.parseExpression())
	}
	return list
}

// parseTableConstructor implements spec.md §4.2's field disambiguation:
// identifier "=" is a named-key field, "[" starts a bracketed-key
// field, anything else is a positional field.
func (p *Parser) parseTableConstructor() ast.Expr {
	pos := p.pos()
	p.expect(lexer.KindPunctuator, "{")

	var fields []ast.TableField
	for !p.isCurrent(lexer.KindPunctuator, "}") {
		fields = append(fields, p.parseTableField())
		if p.isCurrent(lexer.KindPunctuator, ",") || p.isCurrent(lexer.KindPunctuator, ";") {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.KindPunctuator, "}")
	return &ast.TableLiteral{Position: pos, Fields: fields}
}

func (p *Parser) parseTableField() ast.TableField {
	if p.cur.Kind == lexer.KindIdentifier && p.isNext(lexer.KindOperator, "=") {
		key := &ast.StringLiteral{Position: p.pos(), Value: p.cur.Value}
		p.advance() // identifier
		p.advance() // '='
		return ast.TableField{Key: key, Value: p.parseExpression()}
	}
	if p.isCurrent(lexer.KindPunctuator, "[") {
		p.advance()
		key := p.parseExpression()
		p.expect(lexer.KindPunctuator, "]")
		p.expect(lexer.KindOperator, "=")
		return ast.TableField{Key: key, Value: p.parseExpression()}
	}
	return ast.TableField{Value: p.parseExpression()}
}

// parseFunctionLiteral parses an anonymous function expression:
// "function" "(" params ")" block "end". Named function statements
// reuse parseParamsAndBody after consuming their own name.
func (p *Parser) parseFunctionLiteral() *ast.FunctionLiteral {
	pos := p.pos()
	p.expect(lexer.KindKeyword, "function")
	params, body := p.parseParamsAndBody()
	return &ast.FunctionLiteral{Position: pos, Params: params, Body: body}
}

func (p *Parser) parseParamsAndBody() ([]string, *ast.Block) {
	p.expect(lexer.KindPunctuator, "(")
	var params []string
	if !p.isCurrent(lexer.KindPunctuator, ")") {
		params = append(params, p.expect(lexer.KindIdentifier, "").Value)
		for p.isCurrent(lexer.KindPunctuator, ",") {
			p.advance()
			params = append(params, p.expect(lexer.KindIdentifier, "").Value)
		}
	}
	p.expect(lexer.KindPunctuator, ")")
	body := p.parseBlockUntil()
	p.expect(lexer.KindKeyword, "end")
	return params, body
}
