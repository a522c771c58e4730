package eval

import (
	"fmt"

	"github.com/luxlang/lux/ast"
)

// RuntimeError is the error surfaced for every semantic failure spec.md
// §7 lists: division by zero, arithmetic on nil, calling a
// non-function, indexing nil/non-table, length on an unsupported
// type, an invalid assignment target, or AST corruption. Like the
// parser's SyntaxError, it is raised by panic and recovered once at
// the evaluator's entry point (spec.md §7: "errors bubble
// unconditionally as exceptions").
type RuntimeError struct {
	Message string
	Line    int
	Column  int
}

func (e *RuntimeError) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func fail(pos ast.Position, format string, args ...any) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column})
}
