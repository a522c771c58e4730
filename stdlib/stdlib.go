/*
File    : lux/stdlib/stdlib.go

Package stdlib builds the default sandbox table that Execute()
accepts (spec.md §6). It is deliberately outside the core: spec.md §1
scopes host-provided built-in functions out of the lexer/parser/
evaluator entirely, treating them as "opaque callable values supplied
through a sandbox table". stdlib is exactly that concrete sandbox,
grounded on the teacher's own std package shape
(github.com/akashmaji946/go-mix/std): a Builtin{Name, Callback} pair
per function, grouped into category files the teacher also uses
(builtins.go/common.go, math.go, strings.go, json.go, regex.go,
time.go, os.go, crypto.go) and merged by NewSandbox into one table.
*/
package stdlib

import (
	"io"
	"os"

	"github.com/luxlang/lux/values"
)

// category groups a family of Builtins under a name, matching the
// teacher's per-file grouping (std/math.go's mathMethods, std/
// strings.go's stringMethods, etc.) without the teacher's import-
// package machinery, which Lux has no use for (spec.md has no import
// statement).
type category struct {
	name     string
	builtins []*values.Builtin
}

// NewSandbox builds a fresh sandbox table with every stdlib category
// registered, with print-family builtins writing to w (os.Stdout if
// w is nil). Each call returns an independent table so concurrent or
// repeated Execute() calls never share mutable sandbox state
// (spec.md §5: "tables... are not shared across threads").
func NewSandbox(w io.Writer) *values.Table {
	if w == nil {
		w = os.Stdout
	}
	t := values.NewTable()
	for _, cat := range allCategories(w) {
		for _, b := range cat.builtins {
			t.Set(&values.String{Value: b.Name}, b)
		}
	}
	return t
}

func allCategories(w io.Writer) []category {
	return []category{
		{name: "core", builtins: coreBuiltins(w)},
		{name: "strings", builtins: stringBuiltins},
		{name: "math", builtins: mathBuiltins},
		{name: "json", builtins: jsonBuiltins},
		{name: "regex", builtins: regexBuiltins},
		{name: "time", builtins: timeBuiltins},
		{name: "os", builtins: osBuiltins},
		{name: "crypto", builtins: cryptoBuiltins},
	}
}

func builtin(name string, fn func(args []values.Value) values.Value) *values.Builtin {
	return &values.Builtin{Name: name, Fn: fn}
}

func arg(args []values.Value, i int) values.Value {
	if i < len(args) {
		return args[i]
	}
	return values.NilValue
}

func argString(args []values.Value, i int) string {
	if s, ok := arg(args, i).(*values.String); ok {
		return s.Value
	}
	return ""
}

func argNumber(args []values.Value, i int) float64 {
	if n, ok := arg(args, i).(*values.Number); ok {
		return n.Value
	}
	return 0
}
