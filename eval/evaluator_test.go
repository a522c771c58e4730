/*
File    : lux/eval/evaluator_test.go
*/
package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxlang/lux/parser"
	"github.com/luxlang/lux/values"
)

func run(t *testing.T, src string) values.Value {
	t.Helper()
	prog, err := parser.New(src).Parse()
	require.NoError(t, err)
	result, err := NewEvaluator(nil).Eval(prog)
	require.NoError(t, err)
	return result
}

func TestEvaluator_ArithmeticPrecedence(t *testing.T) {
	result := run(t, "return 1 + 2 * 3")
	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, 7.0, n.Value)
}

func TestEvaluator_DivisionByZeroPanicsIntoError(t *testing.T) {
	prog, err := parser.New("return 1 / 0").Parse()
	require.NoError(t, err)
	_, err = NewEvaluator(nil).Eval(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	result := run(t, `return "a" .. "b" .. 1`)
	s, ok := result.(*values.String)
	require.True(t, ok)
	assert.Equal(t, "ab1", s.Value)
}

func TestEvaluator_AndOrShortCircuit(t *testing.T) {
	result := run(t, `
		local calls = 0
		local function bump() calls = calls + 1 return true end
		local x = false and bump()
		local y = true or bump()
		return calls
	`)
	n := result.(*values.Number)
	assert.Equal(t, 0.0, n.Value)
}

func TestEvaluator_ClosureCapturesByReference(t *testing.T) {
	result := run(t, `
		local function makeCounter()
			local n = 0
			local function inc()
				n = n + 1
				return n
			end
			return inc
		end
		local counter = makeCounter()
		counter()
		counter()
		return counter()
	`)
	n := result.(*values.Number)
	assert.Equal(t, 3.0, n.Value)
}

func TestEvaluator_RecursiveLocalFunction(t *testing.T) {
	result := run(t, `
		local function fib(n)
			if n < 2 then return n end
			return fib(n - 1) + fib(n - 2)
		end
		return fib(10)
	`)
	n := result.(*values.Number)
	assert.Equal(t, 55.0, n.Value)
}

func TestEvaluator_MethodSelfBindsFromFirstArgument(t *testing.T) {
	// REDESIGN FLAG regression: self must come from the call receiver,
	// never a captured outer "self".
	result := run(t, `
		local self = { tag = "outer" }
		local obj = { tag = "inner" }

		function obj:getTag()
			return self.tag
		end

		return obj.getTag(obj)
	`)
	s := result.(*values.String)
	assert.Equal(t, "inner", s.Value)
}

func TestEvaluator_WhileLoopWithBreak(t *testing.T) {
	result := run(t, `
		local i = 0
		while true do
			i = i + 1
			if i == 5 then break end
		end
		return i
	`)
	n := result.(*values.Number)
	assert.Equal(t, 5.0, n.Value)
}

func TestEvaluator_NumericForSumsRange(t *testing.T) {
	result := run(t, `
		local sum = 0
		for i = 1, 5 do
			sum = sum + i
		end
		return sum
	`)
	n := result.(*values.Number)
	assert.Equal(t, 15.0, n.Value)
}

func TestEvaluator_NumericForNegativeStep(t *testing.T) {
	result := run(t, `
		local count = 0
		for i = 5, 1, -1 do
			count = count + 1
		end
		return count
	`)
	n := result.(*values.Number)
	assert.Equal(t, 5.0, n.Value)
}

func TestEvaluator_RepeatUntilSeesBodyLocals(t *testing.T) {
	result := run(t, `
		local total = 0
		repeat
			local step = 2
			total = total + step
		until total >= step * 3
		return total
	`)
	n := result.(*values.Number)
	assert.Equal(t, 6.0, n.Value)
}

func TestEvaluator_DoBlockShadowing(t *testing.T) {
	result := run(t, `
		local x = 1
		do
			local x = 2
		end
		return x
	`)
	n := result.(*values.Number)
	assert.Equal(t, 1.0, n.Value)
}

func TestEvaluator_TableConstructAndIndex(t *testing.T) {
	result := run(t, `
		local t = {10, 20, x = "hi"}
		return t[1] + t[2]
	`)
	n := result.(*values.Number)
	assert.Equal(t, 30.0, n.Value)
}

func TestEvaluator_TableLength(t *testing.T) {
	result := run(t, `
		local t = {1, 2, 3}
		return #t
	`)
	n := result.(*values.Number)
	assert.Equal(t, 3.0, n.Value)
}

func TestEvaluator_TruthyRules(t *testing.T) {
	result := run(t, `
		if 0 and "" then
			return "truthy"
		end
		return "falsy"
	`)
	s := result.(*values.String)
	assert.Equal(t, "truthy", s.Value)
}

func TestEvaluator_UnknownIdentifierIsNilNotError(t *testing.T) {
	result := run(t, "return undefinedVariable")
	_, ok := result.(*values.Nil)
	assert.True(t, ok)
}

func TestEvaluator_CallingNonFunctionIsRuntimeError(t *testing.T) {
	prog, err := parser.New(`
		local x = 5
		return x()
	`).Parse()
	require.NoError(t, err)
	_, err = NewEvaluator(nil).Eval(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-function")
}

func TestEvaluator_TopLevelAssignmentPersistsAcrossEvalCalls(t *testing.T) {
	// Regression: the root program block must run directly in
	// ev.Scope, not a throwaway child of it, or this binding is
	// discarded the moment the first Eval call returns.
	ev := NewEvaluator(nil)

	prog1, err := parser.New("x = 5").Parse()
	require.NoError(t, err)
	_, err = ev.Eval(prog1)
	require.NoError(t, err)

	prog2, err := parser.New("return x").Parse()
	require.NoError(t, err)
	result, err := ev.Eval(prog2)
	require.NoError(t, err)

	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, 5.0, n.Value)
}

func TestEvaluator_TopLevelAssignmentMirrorsIntoSandbox(t *testing.T) {
	sandbox := values.NewTable()
	ev := NewEvaluator(sandbox)

	prog, err := parser.New("answer = 42").Parse()
	require.NoError(t, err)
	_, err = ev.Eval(prog)
	require.NoError(t, err)

	got := sandbox.Get(&values.String{Value: "answer"})
	n, ok := got.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, 42.0, n.Value)
}

func TestEvaluator_SetWriterStoresWriter(t *testing.T) {
	var buf strings.Builder
	ev := NewEvaluator(nil)
	ev.SetWriter(&buf)
	// Evaluator doesn't wire print itself (that's the stdlib sandbox's
	// job); this only exercises that SetWriter is stored and readable.
	assert.Same(t, &buf, ev.Writer)
}
