/*
File    : lux/stdlib/core.go

Grounded on the teacher's std/builtins.go and std/common.go: print,
println, len, tostring, and type are the teacher's own builtin names
and behavior, adapted from objects.GoMixObject to values.Value. Like
the teacher's CallbackFunc (which takes an io.Writer), the print
family writes to whatever writer NewSandbox was built with rather than
hardcoding os.Stdout, so the REPL and tests can capture output.
*/
package stdlib

import (
	"fmt"
	"io"

	"github.com/luxlang/lux/values"
)

func coreBuiltins(w io.Writer) []*values.Builtin {
	return []*values.Builtin{
		builtin("print", func(args []values.Value) values.Value { return builtinPrint(w, args) }),
		builtin("println", func(args []values.Value) values.Value { return builtinPrintln(w, args) }),
		builtin("printf", func(args []values.Value) values.Value { return builtinPrintf(w, args) }),
		builtin("len", builtinLen),
		builtin("tostring", builtinToString),
		builtin("type", builtinType),
	}
}

// displayString renders v the way print/println show it: plain text
// for strings (no surrounding quotes), debug-detailed for tables, via
// values.Inspect for everything else.
func displayString(v values.Value) string {
	if s, ok := v.(*values.String); ok {
		return s.Value
	}
	return values.Inspect(v)
}

func builtinPrint(w io.Writer, args []values.Value) values.Value {
	parts := make([]any, len(args))
	for i, a := range args {
		parts[i] = displayString(a)
	}
	fmt.Fprint(w, parts...)
	return values.NilValue
}

func builtinPrintln(w io.Writer, args []values.Value) values.Value {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = displayString(a)
	}
	line := ""
	for i, s := range strs {
		if i > 0 {
			line += "\t"
		}
		line += s
	}
	fmt.Fprintln(w, line)
	return values.NilValue
}

// builtinPrintf implements a Lua-style printf: the first argument is
// a format string, the rest are positional substitutions, each
// stringified before formatting (grounded on the teacher's std/
// builtins.go printf).
func builtinPrintf(w io.Writer, args []values.Value) values.Value {
	if len(args) == 0 {
		return values.NilValue
	}
	format, ok := arg(args, 0).(*values.String)
	if !ok {
		return values.NilValue
	}
	rest := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		rest = append(rest, displayString(a))
	}
	fmt.Fprintf(w, format.Value, rest...)
	return values.NilValue
}

// builtinLen mirrors the "#" unary operator as a callable (spec.md's
// length semantics: string length or table cardinality).
func builtinLen(args []values.Value) values.Value {
	switch v := arg(args, 0).(type) {
	case *values.String:
		return &values.Number{Value: float64(len(v.Value))}
	case *values.Table:
		return &values.Number{Value: float64(v.Len())}
	}
	return &values.Number{Value: 0}
}

func builtinToString(args []values.Value) values.Value {
	v := arg(args, 0)
	if v == nil {
		return &values.String{Value: "nil"}
	}
	return &values.String{Value: v.String()}
}

func builtinType(args []values.Value) values.Value {
	v := arg(args, 0)
	if v == nil {
		return &values.String{Value: string(values.NilType)}
	}
	return &values.String{Value: string(v.Type())}
}
