/*
File    : lux/stdlib/json.go

Grounded on the teacher's std/json.go (table<->JSON round trip), using
encoding/json. to_yaml/from_yaml use gopkg.in/yaml.v3, already a
teacher indirect dependency (pulled in transitively in go-mix's own
go.mod); promoted here to a direct, exercised one since a table<->
YAML round trip is the natural sibling of the JSON pair.
*/
package stdlib

import (
	"encoding/json"

	"github.com/luxlang/lux/values"
	"gopkg.in/yaml.v3"
)

var jsonBuiltins = []*values.Builtin{
	builtin("json_encode", jsonEncode),
	builtin("json_decode", jsonDecode),
	builtin("to_yaml", toYAML),
	builtin("from_yaml", fromYAML),
}

func jsonEncode(args []values.Value) values.Value {
	b, err := json.Marshal(toGo(arg(args, 0)))
	if err != nil {
		return values.NilValue
	}
	return &values.String{Value: string(b)}
}

func jsonDecode(args []values.Value) values.Value {
	var out any
	if err := json.Unmarshal([]byte(argString(args, 0)), &out); err != nil {
		return values.NilValue
	}
	return fromGo(normalizeJSONNumbers(out))
}

// normalizeJSONNumbers converts map[string]any/[]any trees so that
// every numeric leaf is a float64 and the structure matches what
// fromGo expects (encoding/json already decodes numbers as float64
// and objects as map[string]interface{}, so this is a no-op pass-
// through kept for clarity and as the hook future decoders would use).
func normalizeJSONNumbers(v any) any { return v }

func toYAML(args []values.Value) values.Value {
	b, err := yaml.Marshal(toGo(arg(args, 0)))
	if err != nil {
		return values.NilValue
	}
	return &values.String{Value: string(b)}
}

func fromYAML(args []values.Value) values.Value {
	var out any
	if err := yaml.Unmarshal([]byte(argString(args, 0)), &out); err != nil {
		return values.NilValue
	}
	return fromGo(normalizeYAML(out))
}

// normalizeYAML recursively converts yaml.v3's
// map[string]interface{}/map[interface{}]interface{} decode shapes
// into the map[string]any/[]any/float64 shapes fromGo expects.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeYAML(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[values.ToStringKey(fromGo(k))] = normalizeYAML(val)
		}
		return m
	case []any:
		arr := make([]any, len(t))
		for i, val := range t {
			arr[i] = normalizeYAML(val)
		}
		return arr
	case int:
		return float64(t)
	default:
		return v
	}
}
