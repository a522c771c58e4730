/*
File    : lux/function/function.go

Package function implements the closure value produced by evaluating
a function-definition expression.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/luxlang/lux/ast"
	"github.com/luxlang/lux/scope"
	"github.com/luxlang/lux/values"
)

// Function is a user-defined closure: a fixed parameter list, a body
// block, and the scope captured at its defining site (spec.md's Data
// Model: "closure over a captured environment, fixed parameter list,
// and body AST"). Functions capture Env by reference, not by copy, so
// later assignments to the defining scope remain visible to (and
// mutable by) the closure after the defining call returns.
type Function struct {
	Name     string
	Params   []string
	Body     *ast.Block
	Env      *scope.Scope
	IsMethod bool
}

func (f *Function) Type() values.Type { return values.FunctionType }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("function: %s(%s)", name, strings.Join(f.Params, ", "))
}
