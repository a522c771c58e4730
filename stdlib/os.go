/*
File    : lux/stdlib/os.go

Grounded on the teacher's std/os.go (getenv/args/exit), gated behind
the sandbox: a Lux program only ever touches "os" through these
wrapped builtins, never the real os package directly (spec.md §6:
"the interpreter operates purely on in-memory strings and values" at
the core; host-exposed os access is an explicit, auditable surface).
*/
package stdlib

import (
	"os"

	"github.com/luxlang/lux/values"
)

var osBuiltins = []*values.Builtin{
	builtin("os_getenv", func(args []values.Value) values.Value {
		v, ok := os.LookupEnv(argString(args, 0))
		if !ok {
			return values.NilValue
		}
		return &values.String{Value: v}
	}),
	builtin("os_args", func(args []values.Value) values.Value {
		t := values.NewTable()
		for i, a := range os.Args {
			t.Set(&values.Number{Value: float64(i + 1)}, &values.String{Value: a})
		}
		return t
	}),
	builtin("os_exit", func(args []values.Value) values.Value {
		os.Exit(int(argNumber(args, 0)))
		return values.NilValue
	}),
}
