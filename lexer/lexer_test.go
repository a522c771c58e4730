/*
File    : lux/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func kindValues(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = NewToken(t.Kind, t.Value)
	}
	return out
}

func TestLexer_Operators(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "1 + 2 * 3",
			Expected: []Token{
				NewToken(KindNumber, "1"),
				NewToken(KindOperator, "+"),
				NewToken(KindNumber, "2"),
				NewToken(KindOperator, "*"),
				NewToken(KindNumber, "3"),
				NewToken(KindEOF, ""),
			},
		},
		{
			Input: "a ~= b == c",
			Expected: []Token{
				NewToken(KindIdentifier, "a"),
				NewToken(KindOperator, "~="),
				NewToken(KindIdentifier, "b"),
				NewToken(KindOperator, "=="),
				NewToken(KindIdentifier, "c"),
				NewToken(KindEOF, ""),
			},
		},
		{
			Input: "x ~ y",
			Expected: []Token{
				NewToken(KindIdentifier, "x"),
				NewToken(KindOperator, "~"),
				NewToken(KindIdentifier, "y"),
				NewToken(KindEOF, ""),
			},
		},
		{
			Input: "a..b",
			Expected: []Token{
				NewToken(KindIdentifier, "a"),
				NewToken(KindOperator, ".."),
				NewToken(KindIdentifier, "b"),
				NewToken(KindEOF, ""),
			},
		},
	}

	for _, tc := range tests {
		toks := New(tc.Input).Tokens()
		assert.Equal(t, tc.Expected, kindValues(toks), "input %q", tc.Input)
	}
}

func TestLexer_Keywords(t *testing.T) {
	toks := New("if elseif else end while do for local function").Tokens()
	for _, tok := range toks[:len(toks)-1] {
		assert.Equal(t, KindKeyword, tok.Kind, "token %q should be a keyword", tok.Value)
	}
}

func TestLexer_NumberLiteral(t *testing.T) {
	toks := New("3.14 1e3 2.5e-2 42").Tokens()
	assert.Equal(t, 3.14, toks[0].NumberValue)
	assert.Equal(t, 1000.0, toks[1].NumberValue)
	assert.InDelta(t, 0.025, toks[2].NumberValue, 1e-9)
	assert.Equal(t, 42.0, toks[3].NumberValue)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := New(`"hello\nworld" 'it\'s'`).Tokens()
	assert.Equal(t, "hello\nworld", toks[0].Value)
	assert.Equal(t, "it's", toks[1].Value)
}

func TestLexer_UnclosedString(t *testing.T) {
	toks := New("\"unterminated").Tokens()
	assert.Equal(t, KindError, toks[0].Kind)
	assert.Equal(t, "Unclosed string", toks[0].Value)
}

func TestLexer_Comments(t *testing.T) {
	toks := New("1 -- this is a comment\n+ 2").Tokens()
	assert.Equal(t, []Token{
		NewToken(KindNumber, "1"),
		NewToken(KindOperator, "+"),
		NewToken(KindNumber, "2"),
		NewToken(KindEOF, ""),
	}, kindValues(toks))
}

func TestLexer_PositionsMonotone(t *testing.T) {
	toks := New("local x = 1\nlocal y = 2\nreturn x + y").Tokens()
	for i := 1; i < len(toks)-1; i++ {
		prev, cur := toks[i-1], toks[i]
		assert.True(t, cur.Line > prev.Line || (cur.Line == prev.Line && cur.Column >= prev.Column),
			"positions not monotone between %v and %v", prev, cur)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	toks := New("@").Tokens()
	assert.Equal(t, KindError, toks[0].Kind)
}
