/*
File    : lux/eval/assignments.go

Implements assignment, table index/member access, and function calls
(spec.md §4.3's "Assignment", "Calls", and "Index and member"
sections).
*/
package eval

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/function"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

func (e *Evaluator) evalAssignStmt(n *ast.AssignStmt, sc *scope.Scope) (values.Value, signal) {
	val := e.evalExpr(n.Value, sc)
	e.assignTo(n.Target, val, sc)
	return values.NilValue, noSignal
}

// assignTo implements spec.md §4.3's three legal assignment targets:
// an identifier (scope assignment search-then-create rule), an
// Index{prefix,index} (mutate the prefix table), or a
// Member{prefix,member} (mutate the prefix table at a string key).
// Any other target is AST corruption or a parser bug.
func (e *Evaluator) assignTo(target ast.Expr, val values.Value, sc *scope.Scope) {
	switch t := target.(type) {
	case *ast.Identifier:
		sc.Assign(t.Name, val)
	case *ast.IndexExpr:
		table := e.mustTable(e.evalExpr(t.Prefix, sc), t.Position)
		key := e.evalExpr(t.Index, sc)
		table.Set(key, val)
	case *ast.MemberExpr:
		table := e.mustTable(e.evalExpr(t.Prefix, sc), t.Position)
		table.Set(&values.String{Value: t.Name}, val)
	default:
		fail(target.Pos(), "invalid assignment target %T", target)
	}
}

func (e *Evaluator) mustTable(v values.Value, pos ast.Position) *values.Table {
	t, ok := v.(*values.Table)
	if !ok {
		fail(pos, "attempt to index a %s value", typeOf(v))
	}
	return t
}

func (e *Evaluator) evalIndex(n *ast.IndexExpr, sc *scope.Scope) values.Value {
	table := e.mustTable(e.evalExpr(n.Prefix, sc), n.Position)
	return table.Get(e.evalExpr(n.Index, sc))
}

func (e *Evaluator) evalMember(n *ast.MemberExpr, sc *scope.Scope) values.Value {
	table := e.mustTable(e.evalExpr(n.Prefix, sc), n.Position)
	return table.Get(&values.String{Value: n.Name})
}

// evalCall evaluates Prefix to obtain a callable and Args left to
// right (spec.md §5's ordering requirement), then invokes it. Both
// Lux closures and host builtins registered in the sandbox table
// (values.Builtin, see the stdlib package) are callable.
func (e *Evaluator) evalCall(n *ast.CallExpr, sc *scope.Scope) values.Value {
	callee := e.evalExpr(n.Prefix, sc)
	args := e.evalExprListLeftToRight(n.Args, sc)

	switch fn := callee.(type) {
	case *function.Function:
		return e.callFunction(fn, args)
	case *values.Builtin:
		return fn.Fn(args)
	}
	fail(n.Position, "attempt to call a non-function value")
	return values.NilValue
}
