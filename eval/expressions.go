/*
File    : lux/eval/expressions.go

Implements evalExpr, the dispatch over every ast.Expr variant, and the
binary/unary operator semantics of spec.md §4.3.
*/
package eval

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/function"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

func (e *Evaluator) evalExpr(expr ast.Expr, sc *scope.Scope) values.Value {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return &values.Number{Value: n.Value}
	case *ast.StringLiteral:
		return &values.String{Value: n.Value}
	case *ast.BooleanLiteral:
		return values.BoolValue(n.Value)
	case *ast.NilLiteral:
		return values.NilValue
	case *ast.Identifier:
		v, _ := sc.Lookup(n.Name)
		return v
	case *ast.BinaryExpr:
		return e.evalBinary(n, sc)
	case *ast.UnaryExpr:
		return e.evalUnary(n, sc)
	case *ast.FunctionLiteral:
		return &function.Function{Name: n.Name, Params: n.Params, Body: n.Body, Env: sc, IsMethod: n.IsMethod}
	case *ast.TableLiteral:
		return e.evalTableLiteral(n, sc)
	case *ast.CallExpr:
		return e.evalCall(n, sc)
	case *ast.IndexExpr:
		return e.evalIndex(n, sc)
	case *ast.MemberExpr:
		return e.evalMember(n, sc)
	}
	fail(expr.Pos(), "unknown expression node %T", expr)
	return values.NilValue
}

// evalBinary implements "and"/"or" short-circuiting (spec.md §8's
// testable property: neither ever evaluates its right operand unless
// needed) and delegates every other operator to binaryOp after
// evaluating both operands left-to-right.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr, sc *scope.Scope) values.Value {
	switch n.Op {
	case "and":
		left := e.evalExpr(n.Left, sc)
		if !values.Truthy(left) {
			return left
		}
		return e.evalExpr(n.Right, sc)
	case "or":
		left := e.evalExpr(n.Left, sc)
		if values.Truthy(left) {
			return left
		}
		return e.evalExpr(n.Right, sc)
	}

	left := e.evalExpr(n.Left, sc)
	right := e.evalExpr(n.Right, sc)
	return binaryOp(n.Position, n.Op, left, right)
}

func binaryOp(pos ast.Position, op string, left, right values.Value) values.Value {
	switch op {
	case "+", "-", "*", "/", "%":
		return arith(pos, op, left, right)
	case "..":
		return &values.String{Value: toDisplayString(left) + toDisplayString(right)}
	case "==":
		return values.BoolValue(valuesEqual(left, right))
	case "~=":
		return values.BoolValue(!valuesEqual(left, right))
	case "<", ">", "<=", ">=":
		return compare(pos, op, left, right)
	}
	fail(pos, "unknown binary operator %q", op)
	return values.NilValue
}

// arith requires both operands to be non-nil numbers, per spec.md
// §4.3: "arithmetic operators... require both operands non-nil".
func arith(pos ast.Position, op string, left, right values.Value) values.Value {
	l := mustNumber(left, pos, "arithmetic operand")
	r := mustNumber(right, pos, "arithmetic operand")
	switch op {
	case "+":
		return &values.Number{Value: l + r}
	case "-":
		return &values.Number{Value: l - r}
	case "*":
		return &values.Number{Value: l * r}
	case "/":
		if r == 0 {
			fail(pos, "attempt to divide by zero")
		}
		return &values.Number{Value: l / r}
	case "%":
		if r == 0 {
			fail(pos, "attempt to perform 'n%%0'")
		}
		m := l - float64(int64(l/r))*r
		return &values.Number{Value: m}
	}
	fail(pos, "unknown arithmetic operator %q", op)
	return values.NilValue
}

// compare implements ordering for numbers and strings (spec.md §4.3:
// "ordering operators compare numbers and strings"); any other
// combination is a type error.
func compare(pos ast.Position, op string, left, right values.Value) values.Value {
	if l, ok := left.(*values.Number); ok {
		if r, ok := right.(*values.Number); ok {
			return values.BoolValue(numCompare(op, l.Value, r.Value))
		}
	}
	if l, ok := left.(*values.String); ok {
		if r, ok := right.(*values.String); ok {
			return values.BoolValue(strCompare(op, l.Value, r.Value))
		}
	}
	fail(pos, "attempt to compare %s with %s", left.Type(), right.Type())
	return values.NilValue
}

func numCompare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func strCompare(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

// valuesEqual implements spec.md's "structural on primitives and
// identity on tables and functions" equality rule.
func valuesEqual(left, right values.Value) bool {
	switch l := left.(type) {
	case *values.Nil:
		_, ok := right.(*values.Nil)
		return ok
	case *values.Number:
		r, ok := right.(*values.Number)
		return ok && l.Value == r.Value
	case *values.String:
		r, ok := right.(*values.String)
		return ok && l.Value == r.Value
	case *values.Boolean:
		r, ok := right.(*values.Boolean)
		return ok && l.Value == r.Value
	default:
		return left == right
	}
}

// evalUnary implements spec.md §4.3's unary semantics: "-" negates,
// "not" inverts truthiness, "#" returns string length or table
// cardinality, "~" applies bitwise complement.
func (e *Evaluator) evalUnary(n *ast.UnaryExpr, sc *scope.Scope) values.Value {
	operand := e.evalExpr(n.Operand, sc)
	switch n.Op {
	case "not":
		return values.BoolValue(!values.Truthy(operand))
	case "-":
		return &values.Number{Value: -mustNumber(operand, n.Position, "unary -")}
	case "~":
		return &values.Number{Value: float64(^int64(mustNumber(operand, n.Position, "unary ~")))}
	case "#":
		switch v := operand.(type) {
		case *values.String:
			return &values.Number{Value: float64(len(v.Value))}
		case *values.Table:
			return &values.Number{Value: float64(v.Len())}
		}
		fail(n.Position, "attempt to get length of a %s value", operand.Type())
	}
	fail(n.Position, "unknown unary operator %q", n.Op)
	return values.NilValue
}

func mustNumber(v values.Value, pos ast.Position, what string) float64 {
	n, ok := v.(*values.Number)
	if !ok {
		fail(pos, "attempt to perform %s on a %s value", what, typeOf(v))
	}
	return n.Value
}

func typeOf(v values.Value) values.Type {
	if v == nil {
		return values.NilType
	}
	return v.Type()
}

// toDisplayString coerces v to a string for the ".." operator
// (spec.md: "coerces both sides to string and concatenates").
func toDisplayString(v values.Value) string {
	switch t := v.(type) {
	case *values.Number:
		return t.String()
	case *values.String:
		return t.Value
	case *values.Boolean:
		return t.String()
	case *values.Nil:
		return "nil"
	default:
		return v.String()
	}
}

func (e *Evaluator) evalTableLiteral(n *ast.TableLiteral, sc *scope.Scope) values.Value {
	t := values.NewTable()
	for _, field := range n.Fields {
		if field.Key == nil {
			idx := &values.Number{Value: t.NextArrayIndex()}
			t.Set(idx, e.evalExpr(field.Value, sc))
			continue
		}
		key := e.evalExpr(field.Key, sc)
		t.Set(key, e.evalExpr(field.Value, sc))
	}
	return t
}
