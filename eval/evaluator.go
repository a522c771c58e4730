/*
File    : lux/eval/evaluator.go

Package eval implements the third and final stage of the Lux
pipeline: a tree-walking evaluator over parent-linked environments
(spec.md §4.3). It supports lexical scope, closures that capture their
defining environment by reference, sentinel-based return/break
propagation, and the full expression/statement semantics of spec.md.

Grounded on the teacher's eval.Evaluator (github.com/akashmaji946/go-mix,
eval/evaluator.go): the Evaluator-holds-scope-and-builtins shape and the
panic/recover error-propagation strategy are carried over directly; the
teacher's much larger surface (structs, enums, switch, generic for,
collections) is not, since spec.md's Non-goals exclude all of it.
*/
package eval

import (
	"io"
	"os"

	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/function"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

// Evaluator walks a parsed Program against a root Scope. Construct one
// with NewEvaluator and run it with Eval.
type Evaluator struct {
	Scope  *scope.Scope
	Writer io.Writer // stored for the host; the evaluator itself never writes to it
}

// NewEvaluator creates an Evaluator whose root scope is backed by
// sandbox (spec.md §6). A nil sandbox is legal; it simply means
// unresolved names evaluate to nil and root-level writes are not
// mirrored anywhere.
func NewEvaluator(sandbox *values.Table) *Evaluator {
	return &Evaluator{
		Scope:  scope.NewRoot(sandbox),
		Writer: os.Stdout,
	}
}

// SetWriter replaces the stored Writer (mirrors the teacher's
// SetWriter). It does not redirect the print-style builtins: those
// write to the writer their sandbox was built with (stdlib.NewSandbox).
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// signalKind tags the two sentinel control-flow values spec.md §4.3
// describes: a return unwinding out to the nearest function call, and
// a break unwinding out to the nearest loop.
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
	signalBreak
)

// signal is threaded alongside every statement/block evaluation
// result instead of a boolean "did we return" flag, so each block and
// loop can test it once and decide whether to keep evaluating,
// unwind further, or stop and yield a value (spec.md §4.3's
// "Sentinels" note).
type signal struct {
	kind  signalKind
	value values.Value // first value of a return sentinel; unused for break
}

var noSignal = signal{kind: signalNone}

// Eval runs program to completion directly against the evaluator's
// root scope (not a child of it), so that top-level assignments land
// on e.Scope itself and mirror into the sandbox exactly as spec.md §6
// requires, and so that a host reusing one Evaluator across multiple
// Eval calls (the REPL's line-at-a-time loop) sees bindings accumulate
// from call to call. It returns the program's result: the first value
// of its terminating return, or its last expression's value (spec.md
// §4.3's "Program" note). Runtime errors raised anywhere during
// evaluation are recovered here and returned as err.
func (e *Evaluator) Eval(program *ast.Program) (result values.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	result = values.NilValue
	if program == nil || program.Block == nil {
		return result, nil
	}
	val, sig := e.evalStatementsIn(program.Block, e.Scope)
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return val, nil
}

// evalBlock evaluates each statement of b in order within a fresh
// child scope of parent (spec.md §4.3: "creating a fresh child scope
// for the block"). It returns the last statement's value, and any
// control-flow signal that must propagate to an enclosing loop or
// function call unchanged.
func (e *Evaluator) evalBlock(b *ast.Block, parent *scope.Scope) (values.Value, signal) {
	sc := scope.New(parent)
	return e.evalStatementsIn(b, sc)
}

// evalStatementsIn evaluates b's statements directly in sc, without
// creating another child scope. Used by repeat (whose until-condition
// must see the body's own locals) and by the function-call path
// (whose body scope is the call's fresh parameter scope).
func (e *Evaluator) evalStatementsIn(b *ast.Block, sc *scope.Scope) (values.Value, signal) {
	var last values.Value = values.NilValue
	for _, stmt := range b.Statements {
		v, sig := e.evalStmt(stmt, sc)
		last = v
		if sig.kind != signalNone {
			return last, sig
		}
	}
	return last, noSignal
}

// callFunction invokes fn with args bound positionally to its
// parameters (missing args become nil, extras are discarded, per
// spec.md §4.3's "Function values" note) and evaluates its body in a
// fresh child scope of the function's captured environment.
func (e *Evaluator) callFunction(fn *function.Function, args []values.Value) values.Value {
	callScope := scope.New(fn.Env)
	for i, name := range fn.Params {
		if i < len(args) {
			callScope.Declare(name, args[i])
		} else {
			callScope.Declare(name, values.NilValue)
		}
	}
	val, sig := e.evalStatementsIn(fn.Body, callScope)
	if sig.kind == signalReturn {
		return sig.value
	}
	return val
}
