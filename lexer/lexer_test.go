package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `(){},.-+;*`,
			Expected: []TokenType{LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, EOF},
		},
		{
			Input:    `! != = == > >= < <=`,
			Expected: []TokenType{BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, EOF},
		},
	}

	for _, tc := range tests {
		l := New(tc.Input)
		tokens, errs := l.ScanTokens()
		require.Empty(t, errs)
		require.Len(t, tokens, len(tc.Expected))
		for i, kind := range tc.Expected {
			assert.Equal(t, kind, tokens[i].Kind)
		}
	}
}

func TestScanTokens_Literals(t *testing.T) {
	tokens, errs := New(`"hi there" 12 3.5 foo_bar and`).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 6)

	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "hi there", tokens[0].Literal)

	assert.Equal(t, NUMBER, tokens[1].Kind)
	assert.Equal(t, 12.0, tokens[1].Literal)

	assert.Equal(t, NUMBER, tokens[2].Kind)
	assert.Equal(t, 3.5, tokens[2].Literal)

	assert.Equal(t, IDENTIFIER, tokens[3].Kind)
	assert.Equal(t, "foo_bar", tokens[3].Lexeme)

	assert.Equal(t, AND, tokens[4].Kind)
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, errs := New("1 // a comment\n2").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_BlockComment(t *testing.T) {
	tokens, errs := New("1 /* spans\nlines */ 2").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := New(`"never closed`).ScanTokens()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unterminated string")
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	tokens, errs := New("1 @ 2").ScanTokens()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unexpected character")
	require.Len(t, tokens, 3)
}
