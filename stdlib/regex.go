/*
File    : lux/stdlib/regex.go

Grounded on the teacher's std/regex.go (match/find/replace), built on
the standard "regexp" package.
*/
package stdlib

import (
	"regexp"

	"github.com/luxlang/lux/values"
)

var regexBuiltins = []*values.Builtin{
	builtin("regex_match", func(args []values.Value) values.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return values.BoolValue(false)
		}
		return values.BoolValue(re.MatchString(argString(args, 0)))
	}),
	builtin("regex_find", func(args []values.Value) values.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return values.NilValue
		}
		m := re.FindString(argString(args, 0))
		if m == "" && !re.MatchString(argString(args, 0)) {
			return values.NilValue
		}
		return &values.String{Value: m}
	}),
	builtin("regex_replace", func(args []values.Value) values.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return &values.String{Value: argString(args, 0)}
		}
		return &values.String{Value: re.ReplaceAllString(argString(args, 0), argString(args, 2))}
	}),
}
