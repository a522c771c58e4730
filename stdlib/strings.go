/*
File    : lux/stdlib/strings.go

Grounded on the teacher's std/strings.go: names and behavior carried
over (upper/lower/trim/split/join/sub/find/replace/format), delegating
to the standard "strings"/"fmt" packages exactly as the teacher does.
*/
package stdlib

import (
	"fmt"
	"strings"

	"github.com/luxlang/lux/values"
)

var stringBuiltins = []*values.Builtin{
	builtin("upper", func(args []values.Value) values.Value {
		return &values.String{Value: strings.ToUpper(argString(args, 0))}
	}),
	builtin("lower", func(args []values.Value) values.Value {
		return &values.String{Value: strings.ToLower(argString(args, 0))}
	}),
	builtin("trim", func(args []values.Value) values.Value {
		return &values.String{Value: strings.TrimSpace(argString(args, 0))}
	}),
	builtin("split", stringSplit),
	builtin("join", stringJoin),
	builtin("sub", stringSub),
	builtin("find", stringFind),
	builtin("replace", func(args []values.Value) values.Value {
		return &values.String{Value: strings.ReplaceAll(argString(args, 0), argString(args, 1), argString(args, 2))}
	}),
	builtin("contains", func(args []values.Value) values.Value {
		return values.BoolValue(strings.Contains(argString(args, 0), argString(args, 1)))
	}),
	builtin("format", stringFormat),
}

func stringSplit(args []values.Value) values.Value {
	sep := argString(args, 1)
	if sep == "" {
		sep = " "
	}
	parts := strings.Split(argString(args, 0), sep)
	t := values.NewTable()
	for i, p := range parts {
		t.Set(&values.Number{Value: float64(i + 1)}, &values.String{Value: p})
	}
	return t
}

func stringJoin(args []values.Value) values.Value {
	table, ok := arg(args, 0).(*values.Table)
	if !ok {
		return &values.String{Value: ""}
	}
	sep := argString(args, 1)
	var parts []string
	for _, k := range table.Keys() {
		parts = append(parts, toDisplayString(table.Get(k)))
	}
	return &values.String{Value: strings.Join(parts, sep)}
}

// toDisplayString renders v the way "..". concatenation would
// (spec.md §4.3): numbers/strings/booleans/nil coerce to text.
func toDisplayString(v values.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// stringSub implements 1-based, inclusive substring indexing
// (spec.md's host-delegated string semantics; Lua convention).
func stringSub(args []values.Value) values.Value {
	s := argString(args, 0)
	i := int(argNumber(args, 1))
	j := len(s)
	if len(args) > 2 {
		j = int(argNumber(args, 2))
	}
	if i < 1 {
		i = 1
	}
	if j > len(s) {
		j = len(s)
	}
	if i > j {
		return &values.String{Value: ""}
	}
	return &values.String{Value: s[i-1 : j]}
}

func stringFind(args []values.Value) values.Value {
	idx := strings.Index(argString(args, 0), argString(args, 1))
	if idx < 0 {
		return values.NilValue
	}
	return &values.Number{Value: float64(idx + 1)}
}

// stringFormat is a thin fmt.Sprintf wrapper: the first argument is
// the format string, the rest are stringified positionally.
func stringFormat(args []values.Value) values.Value {
	if len(args) == 0 {
		return &values.String{Value: ""}
	}
	rest := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		rest = append(rest, toDisplayString(a))
	}
	return &values.String{Value: fmt.Sprintf(argString(args, 0), rest...)}
}
