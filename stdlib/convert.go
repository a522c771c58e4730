/*
File    : lux/stdlib/convert.go

Conversions between Lux values.Value and plain Go data (map[string]any
/ []any / float64 / string / bool / nil), shared by the JSON and
YAML builtins. A table whose keys run 1..n becomes a []any; any other
table becomes a map[string]any with every key rendered as text by
values.ToStringKey, since encoding/json and yaml.v3 have no
representation for arbitrary-keyed maps (Lux tables may be keyed by
any value; JSON/YAML cannot).
*/
package stdlib

import "github.com/luxlang/lux/values"

func toGo(v values.Value) any {
	switch t := v.(type) {
	case nil, *values.Nil:
		return nil
	case *values.Number:
		return t.Value
	case *values.String:
		return t.Value
	case *values.Boolean:
		return t.Value
	case *values.Table:
		if isArrayTable(t) {
			keys := t.Keys()
			arr := make([]any, len(keys))
			for i, k := range keys {
				arr[i] = toGo(t.Get(k))
			}
			return arr
		}
		m := make(map[string]any)
		for _, k := range t.Keys() {
			m[values.ToStringKey(k)] = toGo(t.Get(k))
		}
		return m
	default:
		return v.String()
	}
}

// isArrayTable reports whether every key of t is a positive integer
// running from 1 to t.Len() with no gaps, matching the table
// constructor's positional-field convention.
func isArrayTable(t *values.Table) bool {
	keys := t.Keys()
	if len(keys) == 0 {
		return false
	}
	for i, k := range keys {
		n, ok := k.(*values.Number)
		if !ok || n.Value != float64(i+1) {
			return false
		}
	}
	return true
}

func fromGo(x any) values.Value {
	switch t := x.(type) {
	case nil:
		return values.NilValue
	case float64:
		return &values.Number{Value: t}
	case int:
		return &values.Number{Value: float64(t)}
	case string:
		return &values.String{Value: t}
	case bool:
		return values.BoolValue(t)
	case []any:
		table := values.NewTable()
		for i, elem := range t {
			table.Set(&values.Number{Value: float64(i + 1)}, fromGo(elem))
		}
		return table
	case map[string]any:
		table := values.NewTable()
		for k, elem := range t {
			table.Set(&values.String{Value: k}, fromGo(elem))
		}
		return table
	default:
		return values.NilValue
	}
}
