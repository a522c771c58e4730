/*
File    : lux/stdlib/math.go

Grounded on the teacher's std/math.go: the function catalog
(abs/min/max/floor/ceil/round/sqrt/pow/trigonometry/random) and
delegation to "math"/"math/rand" are carried over directly.
*/
package stdlib

import (
	"math"
	"math/rand"

	"github.com/luxlang/lux/values"
)

var mathBuiltins = []*values.Builtin{
	num1("abs", math.Abs),
	num1("floor", math.Floor),
	num1("ceil", math.Ceil),
	num1("round", math.Round),
	num1("sqrt", math.Sqrt),
	num1("sin", math.Sin),
	num1("cos", math.Cos),
	num1("tan", math.Tan),
	num1("log", math.Log),
	num1("log10", math.Log10),
	num1("exp", math.Exp),
	num2("pow", math.Pow),
	num2("atan2", math.Atan2),
	builtin("min", func(args []values.Value) values.Value {
		return &values.Number{Value: math.Min(argNumber(args, 0), argNumber(args, 1))}
	}),
	builtin("max", func(args []values.Value) values.Value {
		return &values.Number{Value: math.Max(argNumber(args, 0), argNumber(args, 1))}
	}),
	builtin("random", func(args []values.Value) values.Value {
		if len(args) >= 2 {
			lo, hi := int(argNumber(args, 0)), int(argNumber(args, 1))
			if hi <= lo {
				return &values.Number{Value: float64(lo)}
			}
			return &values.Number{Value: float64(lo + rand.Intn(hi-lo+1))}
		}
		return &values.Number{Value: rand.Float64()}
	}),
}

func num1(name string, fn func(float64) float64) *values.Builtin {
	return builtin(name, func(args []values.Value) values.Value {
		return &values.Number{Value: fn(argNumber(args, 0))}
	})
}

func num2(name string, fn func(float64, float64) float64) *values.Builtin {
	return builtin(name, func(args []values.Value) values.Value {
		return &values.Number{Value: fn(argNumber(args, 0), argNumber(args, 1))}
	})
}
