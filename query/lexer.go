package query

import (
	"strings"
)

// Lexer tokenizes query strings
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// current returns the byte at the read position, or 0 at the end
func (l *Lexer) current() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.current()) {
		l.pos++
	}
}

// readKeyword consumes AND or OR when it appears as a whole word.
func (l *Lexer) readKeyword() (TokenType, bool) {
	for _, kw := range []struct {
		text string
		typ  TokenType
	}{{"and", TokenAnd}, {"or", TokenOr}} {
		end := l.pos + len(kw.text)
		if end > len(l.input) || !strings.EqualFold(l.input[l.pos:end], kw.text) {
			continue
		}
		if end < len(l.input) && isWordChar(l.input[end]) {
			continue
		}
		l.pos = end
		return kw.typ, true
	}
	return 0, false
}

// readColumn consumes a "name:" qualifier if one starts at the read position.
func (l *Lexer) readColumn() (string, bool) {
	end := l.pos
	for end < len(l.input) && !isColumnStop(l.input[end]) {
		end++
	}
	if end == l.pos || end >= len(l.input) || l.input[end] != ':' {
		return "", false
	}
	name := l.input[l.pos:end]
	l.pos = end + 1
	return name, true
}

// readOperator consumes a comparison operator. Two-character operators are
// tried first so ">=" is not read as ">".
func (l *Lexer) readOperator() (Operator, bool) {
	rest := l.input[l.pos:]
	switch {
	case strings.HasPrefix(rest, ">="):
		l.pos += 2
		return OpGreaterEqual, true
	case strings.HasPrefix(rest, "<="):
		l.pos += 2
		return OpLessEqual, true
	case strings.HasPrefix(rest, ">"):
		l.pos++
		return OpGreater, true
	case strings.HasPrefix(rest, "<"):
		l.pos++
		return OpLess, true
	}
	return 0, false
}

// readValue reads a quoted value verbatim up to the closing quote, or an
// unquoted run up to whitespace or a parenthesis.
func (l *Lexer) readValue() string {
	if l.current() == '"' {
		l.pos++ // skip opening quote
		start := l.pos
		for !l.atEnd() && l.current() != '"' {
			l.pos++
		}
		value := l.input[start:l.pos]
		if !l.atEnd() {
			l.pos++ // skip closing quote
		}
		return value
	}

	start := l.pos
	for !l.atEnd() {
		ch := l.current()
		if isSpace(ch) || ch == '(' || ch == ')' {
			break
		}
		l.pos++
	}
	return l.input[start:l.pos]
}

// NextToken returns the next token. The second result is false once the
// input is exhausted. Fragments carrying neither a column nor a value are
// skipped.
func (l *Lexer) NextToken() (Token, bool) {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return Token{}, false
		}

		switch l.current() {
		case '(':
			l.pos++
			return Token{Type: TokenLParen}, true
		case ')':
			l.pos++
			return Token{Type: TokenRParen}, true
		}

		if typ, ok := l.readKeyword(); ok {
			return Token{Type: typ}, true
		}

		start := l.pos
		column, hasColumn := l.readColumn()
		op, hasOp := l.readOperator()
		value := l.readValue()

		if l.pos == start {
			l.pos++ // stalled cursor
			continue
		}
		if value == "" && !hasColumn {
			continue
		}

		tok := Token{Type: TokenTerm, Column: column, Value: strings.ToLower(value)}
		if hasOp {
			tok.Type = TokenInequality
			tok.Operator = op
		}
		return tok, true
	}
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok, ok := lexer.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordChar(ch byte) bool {
	return ch == '_' || (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isColumnStop(ch byte) bool {
	switch ch {
	case ':', '(', ')', '<', '>', '=', '!':
		return true
	}
	return isSpace(ch)
}
