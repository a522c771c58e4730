/*
File    : lux/eval/loops.go

Implements the numeric for statement (spec.md §4.3: "Numeric for").
*/
package eval

import (
	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

// evalForStatement evaluates Start, Finish, and Step exactly once,
// then iterates, binding Variable in a single loop-private scope
// shared across every iteration (spec.md §4.3: "bind the loop
// variable in a loop-private scope shared across iterations"); each
// iteration's body still runs in its own fresh block scope (via
// evalBlock) so locals declared inside the loop do not leak between
// iterations.
func (e *Evaluator) evalForStatement(n *ast.ForStatement, sc *scope.Scope) (values.Value, signal) {
	start := mustNumber(e.evalExpr(n.Start, sc), n.Position, "for start")
	finish := mustNumber(e.evalExpr(n.Finish, sc), n.Position, "for finish")
	step := 1.0
	if n.Step != nil {
		step = mustNumber(e.evalExpr(n.Step, sc), n.Position, "for step")
	}
	if step == 0 {
		fail(n.Position, "'for' step is zero")
	}

	loopScope := scope.New(sc)
	for i := start; (step > 0 && i <= finish) || (step < 0 && i >= finish); i += step {
		loopScope.Declare(n.Variable, &values.Number{Value: i})
		_, sig := e.evalBlock(n.Body, loopScope)
		switch sig.kind {
		case signalBreak:
			return values.NilValue, noSignal
		case signalReturn:
			return values.NilValue, sig
		}
	}
	return values.NilValue, noSignal
}
