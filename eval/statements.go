/*
File    : lux/eval/statements.go

Implements evalStmt, the dispatch over every ast.Stmt variant, per
spec.md §4.3's "Statements" section.
*/
package eval

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/function"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

func (e *Evaluator) evalStmt(stmt ast.Stmt, sc *scope.Scope) (values.Value, signal) {
	switch n := stmt.(type) {
	case *ast.LocalDeclaration:
		return e.evalLocalDeclaration(n, sc)
	case *ast.LocalFunction:
		return e.evalLocalFunction(n, sc)
	case *ast.AssignStmt:
		return e.evalAssignStmt(n, sc)
	case *ast.IfStatement:
		return e.evalIfStatement(n, sc)
	case *ast.WhileStatement:
		return e.evalWhileStatement(n, sc)
	case *ast.ForStatement:
		return e.evalForStatement(n, sc)
	case *ast.RepeatStatement:
		return e.evalRepeatStatement(n, sc)
	case *ast.DoStatement:
		return e.evalBlock(n.Body, sc)
	case *ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(n, sc)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, sc)
	case *ast.BreakStatement:
		return values.NilValue, signal{kind: signalBreak}
	case *ast.ExpressionStatement:
		return e.evalExpr(n.Expr, sc), noSignal
	}
	fail(stmt.Pos(), "unknown statement node %T", stmt)
	return values.NilValue, noSignal
}

// evalLocalDeclaration always creates an own slot on sc, shadowing any
// ancestor binding of the same name (spec.md §4.3: "Local declaration
// always creates an own slot on the current scope").
func (e *Evaluator) evalLocalDeclaration(n *ast.LocalDeclaration, sc *scope.Scope) (values.Value, signal) {
	vals := e.evalExprListLeftToRight(n.Values, sc)
	for i, name := range n.Names {
		if i < len(vals) {
			sc.Declare(name, vals[i])
		} else {
			sc.Declare(name, values.NilValue)
		}
	}
	return values.NilValue, noSignal
}

// evalLocalFunction declares the function name before evaluating the
// closure, so a locally-declared function can recurse by referring to
// its own name (spec.md scenario 3, fib).
func (e *Evaluator) evalLocalFunction(n *ast.LocalFunction, sc *scope.Scope) (values.Value, signal) {
	sc.Declare(n.Name, values.NilValue)
	fn := &function.Function{
		Name:   n.Literal.Name,
		Params: n.Literal.Params,
		Body:   n.Literal.Body,
		Env:    sc,
	}
	sc.Declare(n.Name, fn)
	return values.NilValue, noSignal
}

// evalFunctionDeclaration desugars "function name(...)" and
// "function a:b(...)" into an assignment of a closure to Target
// (spec.md's Data Model note on method-definition sugar; the parser
// has already expanded method sugar into a MemberExpr target with
// "self" prepended to Params).
func (e *Evaluator) evalFunctionDeclaration(n *ast.FunctionDeclaration, sc *scope.Scope) (values.Value, signal) {
	fn := &function.Function{
		Name:     n.Literal.Name,
		Params:   n.Literal.Params,
		Body:     n.Literal.Body,
		Env:      sc,
		IsMethod: n.Literal.IsMethod,
	}
	e.assignTo(n.Target, fn, sc)
	return values.NilValue, noSignal
}

func (e *Evaluator) evalIfStatement(n *ast.IfStatement, sc *scope.Scope) (values.Value, signal) {
	if values.Truthy(e.evalExpr(n.Condition, sc)) {
		return e.evalBlock(n.Body, sc)
	}
	for _, clause := range n.ElseIfs {
		if values.Truthy(e.evalExpr(clause.Condition, sc)) {
			return e.evalBlock(clause.Body, sc)
		}
	}
	if n.Else != nil {
		return e.evalBlock(n.Else, sc)
	}
	return values.NilValue, noSignal
}

// evalWhileStatement re-evaluates Condition before every iteration and
// executes Body in a fresh scope each time; a break sentinel exits
// the loop yielding nil (spec.md §4.3).
func (e *Evaluator) evalWhileStatement(n *ast.WhileStatement, sc *scope.Scope) (values.Value, signal) {
	for values.Truthy(e.evalExpr(n.Condition, sc)) {
		_, sig := e.evalBlock(n.Body, sc)
		switch sig.kind {
		case signalBreak:
			return values.NilValue, noSignal
		case signalReturn:
			return values.NilValue, sig
		}
	}
	return values.NilValue, noSignal
}

// evalRepeatStatement executes Body and Condition in the same loop
// scope, so locals declared in Body remain visible to Condition
// (spec.md §4.3: "so locals declared in the body are visible to the
// condition").
func (e *Evaluator) evalRepeatStatement(n *ast.RepeatStatement, sc *scope.Scope) (values.Value, signal) {
	for {
		loopScope := scope.New(sc)
		_, sig := e.evalStatementsIn(n.Body, loopScope)
		if sig.kind == signalBreak {
			return values.NilValue, noSignal
		}
		if sig.kind == signalReturn {
			return values.NilValue, sig
		}
		if values.Truthy(e.evalExpr(n.Condition, loopScope)) {
			return values.NilValue, noSignal
		}
	}
}

func (e *Evaluator) evalReturnStatement(n *ast.ReturnStatement, sc *scope.Scope) (values.Value, signal) {
	vals := e.evalExprListLeftToRight(n.Expressions, sc)
	var v values.Value = values.NilValue
	if len(vals) > 0 {
		v = vals[0]
	}
	return v, signal{kind: signalReturn, value: v}
}

// evalExprListLeftToRight evaluates exprs strictly left-to-right
// (spec.md §5's ordering requirement).
func (e *Evaluator) evalExprListLeftToRight(exprs []ast.Expr, sc *scope.Scope) []values.Value {
	out := make([]values.Value, len(exprs))
	for i, expr := range exprs {
		out[i] = e.evalExpr(expr, sc)
	}
	return out
}
