package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "bare term is lower-cased",
			input:    "Alice",
			expected: []Token{{Type: TokenTerm, Value: "alice"}},
		},
		{
			name:  "parentheses and keywords",
			input: "(a OR b) and c",
			expected: []Token{
				{Type: TokenLParen},
				{Type: TokenTerm, Value: "a"},
				{Type: TokenOr},
				{Type: TokenTerm, Value: "b"},
				{Type: TokenRParen},
				{Type: TokenAnd},
				{Type: TokenTerm, Value: "c"},
			},
		},
		{
			name:     "keyword prefix is a term",
			input:    "android order",
			expected: []Token{{Type: TokenTerm, Value: "android"}, {Type: TokenTerm, Value: "order"}},
		},
		{
			name:     "column qualifier",
			input:    "Name:^Al",
			expected: []Token{{Type: TokenTerm, Column: "Name", Value: "^al"}},
		},
		{
			name:     "quoted value keeps spaces",
			input:    `city:"New York" x`,
			expected: []Token{{Type: TokenTerm, Column: "city", Value: "new york"}, {Type: TokenTerm, Value: "x"}},
		},
		{
			name:     "unterminated quote runs to end",
			input:    `"open ended`,
			expected: []Token{{Type: TokenTerm, Value: "open ended"}},
		},
		{
			name:  "inequality operators",
			input: "age:>=30 age:<=40 >5 <6",
			expected: []Token{
				{Type: TokenInequality, Column: "age", Operator: OpGreaterEqual, Value: "30"},
				{Type: TokenInequality, Column: "age", Operator: OpLessEqual, Value: "40"},
				{Type: TokenInequality, Operator: OpGreater, Value: "5"},
				{Type: TokenInequality, Operator: OpLess, Value: "6"},
			},
		},
		{
			name:     "column with empty value",
			input:    "name: x",
			expected: []Token{{Type: TokenTerm, Column: "name"}, {Type: TokenTerm, Value: "x"}},
		},
		{
			name:     "value stops at parenthesis",
			input:    "(abc)",
			expected: []Token{{Type: TokenLParen}, {Type: TokenTerm, Value: "abc"}, {Type: TokenRParen}},
		},
		{
			name:     "empty quotes are dropped",
			input:    `"" x`,
			expected: []Token{{Type: TokenTerm, Value: "x"}},
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestLexer_NextToken(t *testing.T) {
	l := NewLexer("a")
	tok, ok := l.NextToken()
	assert.True(t, ok)
	assert.Equal(t, TokenTerm, tok.Type)

	_, ok = l.NextToken()
	assert.False(t, ok)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "INEQUALITY", TokenInequality.String())
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
	assert.Equal(t, ">=", OpGreaterEqual.String())
}
