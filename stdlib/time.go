/*
File    : lux/stdlib/time.go

Grounded on the teacher's std/time.go (now/sleep/format), delegating
to the standard "time" package. sleep is the one builtin allowed to
block the interpreter (spec.md §5: "only explicit host-provided
functions... can block; the interpreter itself never waits").
*/
package stdlib

import (
	"time"

	"github.com/luxlang/lux/values"
)

var timeBuiltins = []*values.Builtin{
	builtin("time_now", func(args []values.Value) values.Value {
		return &values.Number{Value: float64(time.Now().UnixMilli())}
	}),
	builtin("time_sleep", func(args []values.Value) values.Value {
		time.Sleep(time.Duration(argNumber(args, 0)) * time.Millisecond)
		return values.NilValue
	}),
	builtin("time_format", func(args []values.Value) values.Value {
		ms := int64(argNumber(args, 0))
		layout := argString(args, 1)
		if layout == "" {
			layout = time.RFC3339
		}
		return &values.String{Value: time.UnixMilli(ms).UTC().Format(layout)}
	}),
}
