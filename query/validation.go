package query

// Limits applied while parsing. Queries are never rejected: input past
// MaxQueryLength is ignored and parentheses nested deeper than
// MaxExpressionDepth are read as if they were absent.
const (
	// MaxQueryLength is the maximum number of query bytes considered (64KB)
	MaxQueryLength = 64 * 1024

	// MaxExpressionDepth is the maximum parenthesis nesting depth
	MaxExpressionDepth = 100
)

// clampQuery cuts text to MaxQueryLength bytes.
func clampQuery(text string) string {
	if len(text) > MaxQueryLength {
		return text[:MaxQueryLength]
	}
	return text
}

// ExpressionDepthCounter tracks expression nesting depth
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

// NewExpressionDepthCounter creates a new depth counter
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{depth: 0, maxDepth: MaxExpressionDepth}
}

// Enter increments depth and reports whether the limit still holds. Exit
// must be called only after a successful Enter.
func (c *ExpressionDepthCounter) Enter() bool {
	if c.depth >= c.maxDepth {
		return false
	}
	c.depth++
	return true
}

// Exit decrements depth
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
