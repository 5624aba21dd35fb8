package query

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/vegasq/tabview/coerce"
	"github.com/vegasq/tabview/schema"
)

// Context is everything a row is evaluated against besides its cells.
type Context struct {
	Headers schema.Headers
	// Visible is the scan scope of terms that name no column, or name one
	// that does not exist.
	Visible *schema.VisibleSet
	Columns schema.Columns
	// Location is the zone of date values without an explicit offset.
	// Nil means time.Local.
	Location *time.Location
}

func (c *Context) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Evaluate reports whether row matches node. A nil node matches every row.
func Evaluate(node Node, row []string, ctx *Context) bool {
	if node == nil {
		return true
	}

	switch n := node.(type) {
	case *Or:
		return Evaluate(n.Left, row, ctx) || Evaluate(n.Right, row, ctx)
	case *And:
		return Evaluate(n.Left, row, ctx) && Evaluate(n.Right, row, ctx)
	case *Term:
		return evaluateTerm(n, row, ctx)
	case *Inequality:
		return evaluateInequality(n, row, ctx)
	default:
		panic(fmt.Sprintf("query: unexpected node %T", node))
	}
}

// Filter returns the rows matching node, in order.
func Filter(node Node, rows [][]string, ctx *Context) [][]string {
	var out [][]string
	for _, row := range rows {
		if Evaluate(node, row, ctx) {
			out = append(out, row)
		}
	}
	return out
}

// scope returns the positions a leaf is tested against: the named column
// when it resolves, every visible column otherwise.
func scope(column string, ctx *Context) []int {
	if column != "" {
		if i, ok := ctx.Headers.Index(column); ok {
			return []int{i}
		}
	}
	return ctx.Visible.Positions()
}

func evaluateTerm(t *Term, row []string, ctx *Context) bool {
	re, err := t.pattern()
	if err != nil {
		return false
	}

	for _, i := range scope(t.Column, ctx) {
		cell := schema.Cell(row, i)
		col := ctx.Columns.At(i)
		if col.Type == schema.TypeDate && col.ToString != "" {
			cell = coerce.FormatDateIn(cell, col.Format, col.ToString, col.Locale, ctx.location())
		}
		if re.MatchString(strings.ToLower(cell)) {
			return true
		}
	}
	return false
}

// maxPatterns bounds the compiled term cache; an interactive session types a
// new term value on every keystroke.
const maxPatterns = 256

var patterns = newPatternCache(maxPatterns) // term value -> *regexp.Regexp

func newPatternCache(size int) *lru.Cache {
	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return cache
}

// pattern returns the compiled matcher of the term value.
func (t *Term) pattern() (*regexp.Regexp, error) {
	if re, ok := patterns.Get(t.Value); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := termPattern(t.Value)
	if err != nil {
		return nil, err
	}
	patterns.Add(t.Value, re)
	return re, nil
}

// termPattern turns a term value into a case-insensitive matcher. A leading
// '^' and a trailing '$' are anchors; everything between them is literal.
func termPattern(value string) (*regexp.Regexp, error) {
	anchorStart := strings.HasPrefix(value, "^")
	if anchorStart {
		value = value[1:]
	}
	anchorEnd := strings.HasSuffix(value, "$")
	if anchorEnd {
		value = value[:len(value)-1]
	}

	var b strings.Builder
	b.WriteString("(?i)")
	if anchorStart {
		b.WriteByte('^')
	}
	b.WriteString(regexp.QuoteMeta(value))
	if anchorEnd {
		b.WriteByte('$')
	}
	return regexp.Compile(b.String())
}

func evaluateInequality(q *Inequality, row []string, ctx *Context) bool {
	loc := ctx.location()
	num, isNum := coerce.ParseNumber(q.Value)

	for _, i := range scope(q.Column, ctx) {
		cell := schema.Cell(row, i)
		col := ctx.Columns.At(i)

		if col.Type == schema.TypeDate {
			if cmp, ok := compareDates(cell, q.Value, col.Format, loc); ok && q.Operator.apply(cmp) {
				return true
			}
			continue
		}

		if isNum {
			if v, ok := coerce.ParseNumber(cell); ok {
				if q.Operator.apply(compareFloats(v, num)) {
					return true
				}
				continue
			}
		}
		if cmp, ok := compareDates(cell, q.Value, "", loc); ok && q.Operator.apply(cmp) {
			return true
		}
	}
	return false
}

// compareDates compares a cell, read with format, against a query value.
// ok is false when either side is not a date.
func compareDates(cell, value, format string, loc *time.Location) (int, bool) {
	left, ok := coerce.ParseDateIn(cell, format, loc)
	if !ok {
		return 0, false
	}
	right, ok := queryDate(value, format, loc)
	if !ok {
		return 0, false
	}
	return left.Compare(right), true
}

// queryDate reads the value of an inequality as a date. A bare four digit
// year is January 1 of that year; other values go through the permissive
// parser, then through the column format.
func queryDate(value, format string, loc *time.Location) (time.Time, bool) {
	if isYear(value) {
		return time.Date(atoi(value), time.January, 1, 0, 0, 0, 0, loc), true
	}
	if t, ok := coerce.ParseDateIn(value, "", loc); ok {
		return t, true
	}
	if format != "" {
		return coerce.ParseDateIn(value, format, loc)
	}
	return time.Time{}, false
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
