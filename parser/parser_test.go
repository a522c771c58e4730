/*
File    : lux/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxlang/lux/ast"
)

func TestParser_LocalDeclaration(t *testing.T) {
	prog, err := New("local x = 1 + 2").Parse()
	require.NoError(t, err)
	require.Len(t, prog.Block.Statements, 1)

	decl, ok := prog.Block.Statements[0].(*ast.LocalDeclaration)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, decl.Names)
	require.Len(t, decl.Values, 1)

	bin, ok := decl.Values[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParser_MultipleLocalsAndValues(t *testing.T) {
	prog, err := New("local a, b, c = 1, 2").Parse()
	require.NoError(t, err)
	decl := prog.Block.Statements[0].(*ast.LocalDeclaration)
	assert.Equal(t, []string{"a", "b", "c"}, decl.Names)
	assert.Len(t, decl.Values, 2)
}

func TestParser_IfElseIfElse(t *testing.T) {
	src := `
	if x then
		return 1
	elseif y then
		return 2
	else
		return 3
	end`
	prog, err := New(src).Parse()
	require.NoError(t, err)
	stmt, ok := prog.Block.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.Len(t, stmt.ElseIfs, 1)
	assert.NotNil(t, stmt.Else)
}

func TestParser_WhileLoop(t *testing.T) {
	prog, err := New("while x do x = x - 1 end").Parse()
	require.NoError(t, err)
	_, ok := prog.Block.Statements[0].(*ast.WhileStatement)
	assert.True(t, ok)
}

func TestParser_NumericForWithStep(t *testing.T) {
	prog, err := New("for i = 1, 10, 2 do end").Parse()
	require.NoError(t, err)
	stmt, ok := prog.Block.Statements[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.Equal(t, "i", stmt.Variable)
	assert.NotNil(t, stmt.Step)
}

func TestParser_RepeatUntil(t *testing.T) {
	prog, err := New("repeat local x = 1 until x == 1").Parse()
	require.NoError(t, err)
	_, ok := prog.Block.Statements[0].(*ast.RepeatStatement)
	assert.True(t, ok)
}

func TestParser_DoEndBlock(t *testing.T) {
	prog, err := New("do local x = 1 end").Parse()
	require.NoError(t, err)
	_, ok := prog.Block.Statements[0].(*ast.DoStatement)
	assert.True(t, ok)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	prog, err := New("function add(a, b) return a + b end").Parse()
	require.NoError(t, err)
	decl, ok := prog.Block.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, decl.Literal.Params)
	assert.False(t, decl.Literal.IsMethod)
}

// TestParser_MethodSugarPrependsSelf verifies the REDESIGN FLAG fix:
// "function a:b(...)" prepends "self" to the parameter list and marks
// the literal as a method so the evaluator binds self positionally.
func TestParser_MethodSugarPrependsSelf(t *testing.T) {
	prog, err := New("function obj:greet(name) return name end").Parse()
	require.NoError(t, err)
	decl, ok := prog.Block.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.True(t, decl.Literal.IsMethod)
	assert.Equal(t, []string{"self", "name"}, decl.Literal.Params)

	member, ok := decl.Target.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "greet", member.Name)
}

func TestParser_ConcatIsRightAssociativeAndBindsWeakerThanAdd(t *testing.T) {
	prog, err := New(`local s = "a" .. "b" .. "c"`).Parse()
	require.NoError(t, err)
	decl := prog.Block.Statements[0].(*ast.LocalDeclaration)
	top, ok := decl.Values[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "..", top.Op)
	// right-associative: left is "a", right is ("b" .. "c")
	_, leftIsLiteral := top.Left.(*ast.StringLiteral)
	assert.True(t, leftIsLiteral)
	right, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "..", right.Op)

	prog2, err := New(`local s = 1 + 2 .. 3`).Parse()
	require.NoError(t, err)
	decl2 := prog2.Block.Statements[0].(*ast.LocalDeclaration)
	concat, ok := decl2.Values[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "..", concat.Op)
	add, ok := concat.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)
}

func TestParser_NotEqualToleratesLegacyTilde(t *testing.T) {
	prog, err := New("local ok = a ~ b").Parse()
	require.NoError(t, err)
	decl := prog.Block.Statements[0].(*ast.LocalDeclaration)
	bin, ok := decl.Values[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "~=", bin.Op)
}

func TestParser_TableConstructorFieldKinds(t *testing.T) {
	prog, err := New(`local t = {1, 2, x = 3, [4+0] = "four"}`).Parse()
	require.NoError(t, err)
	decl := prog.Block.Statements[0].(*ast.LocalDeclaration)
	lit, ok := decl.Values[0].(*ast.TableLiteral)
	require.True(t, ok)
	require.Len(t, lit.Fields, 4)
	assert.Nil(t, lit.Fields[0].Key)
	assert.Nil(t, lit.Fields[1].Key)

	namedKey, ok := lit.Fields[2].Key.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "x", namedKey.Value)

	_, bracketed := lit.Fields[3].Key.(*ast.BinaryExpr)
	assert.True(t, bracketed)
}

func TestParser_CallIndexMemberChain(t *testing.T) {
	prog, err := New("local v = a.b[1](2).c").Parse()
	require.NoError(t, err)
	decl := prog.Block.Statements[0].(*ast.LocalDeclaration)

	member, ok := decl.Values[0].(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "c", member.Name)

	call, ok := member.Prefix.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 1)

	index, ok := call.Prefix.(*ast.IndexExpr)
	require.True(t, ok)

	inner, ok := index.Prefix.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParser_AssignmentVsExpressionStatement(t *testing.T) {
	prog, err := New("x = 1\nfoo()").Parse()
	require.NoError(t, err)
	require.Len(t, prog.Block.Statements, 2)
	_, ok := prog.Block.Statements[0].(*ast.AssignStmt)
	assert.True(t, ok)
	_, ok = prog.Block.Statements[1].(*ast.ExpressionStatement)
	assert.True(t, ok)
}

func TestParser_BreakStatement(t *testing.T) {
	prog, err := New("while true do break end").Parse()
	require.NoError(t, err)
	while := prog.Block.Statements[0].(*ast.WhileStatement)
	_, ok := while.Body.Statements[0].(*ast.BreakStatement)
	assert.True(t, ok)
}

func TestParser_SyntaxErrorCarriesPosition(t *testing.T) {
	_, err := New("local x = ").Parse()
	require.Error(t, err)
	synErr, ok := err.(*SyntaxError)
	require.True(t, ok)
	assert.Greater(t, synErr.Line, 0)
}

func TestParser_PropagatesLexError(t *testing.T) {
	_, err := New(`local s = "unterminated`).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unclosed string")
}
