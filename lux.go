/*
File    : lux/lux.go

Package lux is the convenience entry point gluing the three pipeline
stages behind one call, per spec.md §6: "Entry point. execute(source:
string, sandbox?: table) -> value". spec.md §1 calls this orchestrator
"trivial and out of scope" relative to the lexer/parser/evaluator
core, so it stays a thin wrapper: lex (implicitly, via the parser)
→ parse → evaluate, with one recovered error per stage.
*/
package lux

import (
	"fmt"

	"github.com/luxlang/lux/eval"
	"github.com/luxlang/lux/lexer"
	"github.com/luxlang/lux/parser"
	"github.com/luxlang/lux/stdlib"
	"github.com/luxlang/lux/values"
)

// Execute runs source to completion and returns its result value.
// When sandbox is nil, a fresh stdlib-populated table is used in its
// place (spec.md §6: "a fresh table pre-populated with a snapshot of
// the host's global bindings"). Failure at any stage is surfaced as a
// single error carrying the stage label and, where applicable,
// source position (spec.md §6's three error-message shapes).
func Execute(source string, sandbox *values.Table) (values.Value, error) {
	if sandbox == nil {
		sandbox = stdlib.NewSandbox(nil)
	}

	prog, err := parser.New(source).Parse()
	if err != nil {
		if lexErr, ok := err.(*lexer.LexError); ok {
			return values.NilValue, fmt.Errorf("lexical analysis failed: %s", lexErr.Error())
		}
		return values.NilValue, fmt.Errorf("parse failed: %s", err.Error())
	}

	ev := eval.NewEvaluator(sandbox)
	result, err := ev.Eval(prog)
	if err != nil {
		return values.NilValue, fmt.Errorf("execution failed: %s", err.Error())
	}
	return result, nil
}
