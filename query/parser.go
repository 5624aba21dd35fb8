package query

// Parser parses token sequences into a query tree
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
	// skipped counts '(' ignored past the depth limit whose ')' is still
	// to come.
	skipped int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token; ok is false past the last token.
func (p *Parser) current() (tok Token, ok bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// is reports whether the current token has type typ
func (p *Parser) is(typ TokenType) bool {
	tok, ok := p.current()
	return ok && tok.Type == typ
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// Parse parses query text into a tree. It never fails: malformed fragments
// are dropped and an empty or fully dropped query returns nil, which
// matches every row.
//
// OR binds loosest; AND, written or implied by juxtaposition, binds tighter:
//
//	a OR b c    parses as    a OR (b AND c)
func Parse(text string) Node {
	tokens := Tokenize(clampQuery(text))
	if len(tokens) == 0 {
		return nil
	}
	return NewParser(tokens).Parse()
}

// Parse parses the token sequence. Tokens after an unmatched ')' are
// ignored.
func (p *Parser) Parse() Node {
	p.pos = 0
	p.skipped = 0
	return p.parseOr()
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() Node {
	left := p.parseAnd()

	for p.is(TokenOr) {
		p.advance()
		left = join(left, p.parseAnd(), func(l, r Node) Node { return &Or{Left: l, Right: r} })
	}

	return left
}

// parseAnd parses AND expressions, including implicit AND between adjacent
// terms
func (p *Parser) parseAnd() Node {
	left := p.parseTerm()

	for {
		tok, ok := p.current()
		if !ok {
			break
		}
		switch tok.Type {
		case TokenAnd:
			p.advance()
		case TokenTerm, TokenInequality, TokenLParen:
		case TokenRParen:
			if p.skipped == 0 {
				return left
			}
			p.skipped--
			p.advance()
			continue
		default:
			return left
		}
		left = join(left, p.parseTerm(), func(l, r Node) Node { return &And{Left: l, Right: r} })
	}

	return left
}

// parseTerm parses a parenthesized group or a single leaf. It returns nil
// without consuming anything when the current token cannot start a term.
func (p *Parser) parseTerm() Node {
	tok, ok := p.current()
	if !ok {
		return nil
	}

	switch tok.Type {
	case TokenLParen:
		if !p.depthCounter.Enter() {
			// past the depth limit the group is read as if unparenthesized
			for p.is(TokenLParen) {
				p.advance()
				p.skipped++
			}
			return p.parseTerm()
		}
		defer p.depthCounter.Exit()
		p.advance()

		node := p.parseOr()
		if p.is(TokenRParen) {
			p.advance()
		}
		return node
	case TokenTerm:
		p.advance()
		return &Term{Column: tok.Column, Value: tok.Value}
	case TokenInequality:
		p.advance()
		return &Inequality{Column: tok.Column, Operator: tok.Operator, Value: tok.Value}
	default:
		return nil
	}
}

// join combines two optional subtrees; a missing side yields the other.
func join(left, right Node, combine func(l, r Node) Node) Node {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	default:
		return combine(left, right)
	}
}
