package query

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	TokenLParen TokenType = iota // (
	TokenRParen                  // )
	TokenAnd
	TokenOr
	TokenTerm       // [column:]value
	TokenInequality // [column:]op value
)

var tokenNames = map[TokenType]string{
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenAnd:        "AND",
	TokenOr:         "OR",
	TokenTerm:       "TERM",
	TokenInequality: "INEQUALITY",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Operator is the comparison of an inequality term.
type Operator int

const (
	OpGreater Operator = iota
	OpGreaterEqual
	OpLess
	OpLessEqual
)

func (o Operator) String() string {
	switch o {
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// apply reports whether cmp, the result of comparing a cell with the query
// value, satisfies the operator.
func (o Operator) apply(cmp int) bool {
	switch o {
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	default:
		return false
	}
}

// Token represents a lexical token. Column and Value are set for TokenTerm
// and TokenInequality; Operator only for TokenInequality. An empty Column
// means the term is not column-qualified.
type Token struct {
	Type     TokenType
	Column   string
	Operator Operator
	Value    string
}

// Node is a node of a parsed query. The concrete types are *And, *Or, *Term
// and *Inequality. A nil Node is the empty query and matches every row.
type Node interface {
	node()
	String() string
}

// And matches when both sides match.
type And struct {
	Left, Right Node
}

// Or matches when either side matches.
type Or struct {
	Left, Right Node
}

// Term is a free-text match, optionally restricted to one column.
type Term struct {
	Column string
	Value  string
}

// Inequality is a typed comparison, optionally restricted to one column.
type Inequality struct {
	Column   string
	Operator Operator
	Value    string
}

func (*And) node()        {}
func (*Or) node()         {}
func (*Term) node()       {}
func (*Inequality) node() {}

func (n *And) String() string { return fmt.Sprintf("(%s AND %s)", n.Left, n.Right) }
func (n *Or) String() string  { return fmt.Sprintf("(%s OR %s)", n.Left, n.Right) }

func (n *Term) String() string {
	if n.Column == "" {
		return fmt.Sprintf("%q", n.Value)
	}
	return fmt.Sprintf("%s:%q", n.Column, n.Value)
}

func (n *Inequality) String() string {
	if n.Column == "" {
		return fmt.Sprintf("%s%q", n.Operator, n.Value)
	}
	return fmt.Sprintf("%s:%s%q", n.Column, n.Operator, n.Value)
}
