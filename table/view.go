package table

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vegasq/tabview/coerce"
	"github.com/vegasq/tabview/query"
	"github.com/vegasq/tabview/schema"
)

// Stats describes the last render.
type Stats struct {
	Total   int
	Matched int
}

// View holds the state of one table on screen: the query, the sort state
// and the visible columns. Every Render recomputes the visible rows from
// that state. A View is not safe for concurrent use.
type View struct {
	headers  schema.Headers
	rows     []Row
	columns  schema.Columns
	visible  *schema.VisibleSet
	sort     SortState
	locale   string
	location *time.Location
	logger   zerolog.Logger

	queryText string
	ast       query.Node

	comparator *Comparator
	stats      Stats
}

// Option configures a View.
type Option func(*View)

// WithLocale sets the locale of columns that do not name one.
func WithLocale(locale string) Option {
	return func(v *View) { v.locale = locale }
}

// WithLocation sets the zone of date cells without an explicit offset.
func WithLocation(loc *time.Location) Option {
	return func(v *View) { v.location = loc }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// NewView returns an unsorted, unfiltered view of rows with every column
// visible.
func NewView(headers []string, rows [][]string, cols schema.Columns, opts ...Option) *View {
	v := &View{
		headers:  schema.Headers(headers),
		visible:  schema.AllVisible(len(headers)),
		sort:     Unsorted(),
		locale:   coerce.DefaultLocale,
		location: time.Local,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.columns = cols.WithDefaultLocale(v.locale)
	v.comparator = NewComparator(v.columns, v.locale, v.location)

	v.rows = make([]Row, len(rows))
	for i, cells := range rows {
		v.rows[i] = Row{Index: i, Cells: cells}
	}
	return v
}

func (v *View) Headers() schema.Headers { return v.headers }

func (v *View) Columns() schema.Columns { return v.columns }

// ColumnIndex resolves a header name the way queries do.
func (v *View) ColumnIndex(name string) (int, bool) {
	return v.headers.Index(name)
}

// SetQuery replaces the query text. The text is parsed only when it
// differs from the current one; the result reports whether it did.
func (v *View) SetQuery(text string) bool {
	if text == v.queryText {
		return false
	}
	v.queryText = text
	v.ast = query.Parse(text)
	v.logger.Debug().Str("query", text).Stringer("ast", astString{v.ast}).Msg("query compiled")
	return true
}

func (v *View) Query() string { return v.queryText }

// AST returns the parsed query; nil when the query is empty.
func (v *View) AST() query.Node { return v.ast }

// ToggleSort sorts by col ascending, or flips the direction when col is
// already the sort column.
func (v *View) ToggleSort(col int) {
	if !v.validColumn(col) {
		return
	}
	if v.sort.Column == col {
		v.sort.Ascending = !v.sort.Ascending
		return
	}
	v.sort = SortState{Column: col, Ascending: true}
}

// SortBy sets the sort column and direction.
func (v *View) SortBy(col int, ascending bool) {
	if !v.validColumn(col) {
		return
	}
	v.sort = SortState{Column: col, Ascending: ascending}
}

// ClearSort restores load order.
func (v *View) ClearSort() {
	v.sort = Unsorted()
}

func (v *View) SortState() SortState { return v.sort }

func (v *View) ShowColumn(col int) {
	if v.validColumn(col) {
		v.visible.Show(col)
	}
}

func (v *View) HideColumn(col int) {
	v.visible.Hide(col)
}

// Visible returns the visible column positions in ascending order.
func (v *View) Visible() []int {
	return v.visible.Positions()
}

func (v *View) validColumn(col int) bool {
	return col >= 0 && col < len(v.headers)
}

// Render returns the rows matching the query in sort order. Row indices
// refer to load order.
func (v *View) Render() []Row {
	ctx := &query.Context{
		Headers:  v.headers,
		Visible:  v.visible,
		Columns:  v.columns,
		Location: v.location,
	}

	var out []Row
	for _, r := range v.rows {
		if query.Evaluate(v.ast, r.Cells, ctx) {
			out = append(out, r)
		}
	}
	v.comparator.Sort(out, v.sort)

	v.stats = Stats{Total: len(v.rows), Matched: len(out)}
	v.logger.Debug().
		Int("total", v.stats.Total).
		Int("matched", v.stats.Matched).
		Int("sort_column", v.sort.Column).
		Bool("ascending", v.sort.Ascending).
		Msg("rendered")
	return out
}

// Display returns the visible headers and the display text of the visible
// cells of rows.
func (v *View) Display(rows []Row) ([]string, [][]string) {
	positions := v.visible.Positions()

	headers := make([]string, len(positions))
	for i, p := range positions {
		headers[i] = v.headers[p]
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, len(positions))
		for j, p := range positions {
			line[j] = v.columns.At(p).Display(schema.Cell(r.Cells, p), v.location)
		}
		cells[i] = line
	}
	return headers, cells
}

// Stats returns the counts of the last Render.
func (v *View) Stats() Stats { return v.stats }

type astString struct{ node query.Node }

func (a astString) String() string {
	if a.node == nil {
		return "<all>"
	}
	return a.node.String()
}
