package lexer

import "fmt"

// LexError is the error surfaced when an in-band KindError token is
// found while draining or parsing the token stream.
type LexError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}
