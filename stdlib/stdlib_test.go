/*
File    : lux/stdlib/stdlib_test.go
*/
package stdlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxlang/lux/values"
)

func getBuiltin(t *testing.T, sandbox *values.Table, name string) *values.Builtin {
	t.Helper()
	v := sandbox.Get(&values.String{Value: name})
	b, ok := v.(*values.Builtin)
	require.True(t, ok, "%s is not registered as a builtin", name)
	return b
}

func TestNewSandbox_RegistersCoreBuiltins(t *testing.T) {
	sandbox := NewSandbox(nil)
	for _, name := range []string{"print", "len", "tostring", "type", "upper", "sqrt", "json_encode", "md5"} {
		assert.NotNil(t, getBuiltin(t, sandbox, name))
	}
}

func TestNewSandbox_IndependentAcrossCalls(t *testing.T) {
	a := NewSandbox(nil)
	b := NewSandbox(nil)
	assert.NotSame(t, a, b)
}

func TestCore_PrintWritesToConfiguredWriter(t *testing.T) {
	var buf strings.Builder
	sandbox := NewSandbox(&buf)
	print := getBuiltin(t, sandbox, "print")
	print.Fn([]values.Value{&values.String{Value: "hello"}})
	assert.Equal(t, "hello", buf.String())
}

func TestCore_Len(t *testing.T) {
	sandbox := NewSandbox(nil)
	lenFn := getBuiltin(t, sandbox, "len")
	result := lenFn.Fn([]values.Value{&values.String{Value: "abcd"}})
	n := result.(*values.Number)
	assert.Equal(t, 4.0, n.Value)
}

func TestCore_Type(t *testing.T) {
	sandbox := NewSandbox(nil)
	typeFn := getBuiltin(t, sandbox, "type")
	result := typeFn.Fn([]values.Value{&values.Number{Value: 1}})
	s := result.(*values.String)
	assert.Equal(t, "number", s.Value)
}

func TestStrings_UpperAndSplit(t *testing.T) {
	sandbox := NewSandbox(nil)
	upper := getBuiltin(t, sandbox, "upper")
	result := upper.Fn([]values.Value{&values.String{Value: "abc"}})
	assert.Equal(t, "ABC", result.(*values.String).Value)

	split := getBuiltin(t, sandbox, "split")
	parts := split.Fn([]values.Value{&values.String{Value: "a,b,c"}, &values.String{Value: ","}})
	table := parts.(*values.Table)
	assert.Equal(t, 3, table.Len())
}

func TestMath_SqrtAndPow(t *testing.T) {
	sandbox := NewSandbox(nil)
	sqrt := getBuiltin(t, sandbox, "sqrt")
	result := sqrt.Fn([]values.Value{&values.Number{Value: 16}})
	assert.Equal(t, 4.0, result.(*values.Number).Value)

	pow := getBuiltin(t, sandbox, "pow")
	result = pow.Fn([]values.Value{&values.Number{Value: 2}, &values.Number{Value: 10}})
	assert.Equal(t, 1024.0, result.(*values.Number).Value)
}

func TestJSON_EncodeDecodeRoundTrip(t *testing.T) {
	sandbox := NewSandbox(nil)
	table := values.NewTable()
	table.Set(&values.String{Value: "name"}, &values.String{Value: "lux"})

	encode := getBuiltin(t, sandbox, "json_encode")
	encoded := encode.Fn([]values.Value{table}).(*values.String)

	decode := getBuiltin(t, sandbox, "json_decode")
	decoded := decode.Fn([]values.Value{encoded}).(*values.Table)
	got := decoded.Get(&values.String{Value: "name"}).(*values.String)
	assert.Equal(t, "lux", got.Value)
}

func TestCrypto_MD5KnownValue(t *testing.T) {
	sandbox := NewSandbox(nil)
	md5Fn := getBuiltin(t, sandbox, "md5")
	result := md5Fn.Fn([]values.Value{&values.String{Value: ""}})
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", result.(*values.String).Value)
}
