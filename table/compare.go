package table

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vegasq/tabview/coerce"
	"github.com/vegasq/tabview/schema"
)

// NoColumn is the SortState column of an unsorted view.
const NoColumn = -1

// Row is one data row together with its position in the loaded data set.
type Row struct {
	Index int
	Cells []string
}

// SortState is the sort column and direction.
type SortState struct {
	Column    int
	Ascending bool
}

// Unsorted returns the state of a view that keeps load order.
func Unsorted() SortState {
	return SortState{Column: NoColumn, Ascending: true}
}

// Comparator orders rows by the type of the sort column: numbers
// numerically, dates chronologically and everything else by locale-aware
// collation. A Comparator is not safe for concurrent use.
type Comparator struct {
	columns   schema.Columns
	location  *time.Location
	locale    string
	collators map[string]*collate.Collator
}

// NewComparator returns a Comparator for cols. Columns without a locale are
// collated with locale; dates without an offset are read in loc.
func NewComparator(cols schema.Columns, locale string, loc *time.Location) *Comparator {
	if loc == nil {
		loc = time.Local
	}
	if locale == "" {
		locale = coerce.DefaultLocale
	}
	return &Comparator{
		columns:   cols,
		location:  loc,
		locale:    locale,
		collators: make(map[string]*collate.Collator),
	}
}

// Compare returns a negative number when row a sorts before row b, a
// positive number when it sorts after and zero when they are equal.
//
// Number cells that do not parse sort before every number. Date cells that
// do not parse sort after every date in both directions.
func (c *Comparator) Compare(a, b []string, state SortState) int {
	if state.Column == NoColumn {
		return 0
	}
	col := c.columns.At(state.Column)
	ka := c.key(col, schema.Cell(a, state.Column))
	kb := c.key(col, schema.Cell(b, state.Column))
	return c.compareKeys(col, ka, kb, state.Ascending)
}

// Sort sorts rows in place by state. Rows with equal keys keep their
// relative order.
func (c *Comparator) Sort(rows []Row, state SortState) {
	if state.Column == NoColumn || len(rows) < 2 {
		return
	}
	col := c.columns.At(state.Column)

	keyed := make([]keyedRow, len(rows))
	for i, r := range rows {
		keyed[i] = keyedRow{row: r, key: c.key(col, schema.Cell(r.Cells, state.Column))}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		return c.compareKeys(col, a.key, b.key, state.Ascending)
	})
	for i := range keyed {
		rows[i] = keyed[i].row
	}
}

type keyedRow struct {
	row Row
	key sortKey
}

// sortKey is a cell coerced to the sort type of its column.
type sortKey struct {
	raw    string
	number float64
	date   time.Time
	isDate bool
}

func (c *Comparator) key(col schema.Column, raw string) sortKey {
	k := sortKey{raw: raw}
	switch col.Type {
	case schema.TypeNumber:
		k.number = coerce.NumberKey(raw)
	case schema.TypeDate:
		k.date, k.isDate = coerce.ParseDateIn(raw, col.Format, c.location)
	}
	return k
}

func (c *Comparator) compareKeys(col schema.Column, a, b sortKey, ascending bool) int {
	var result int
	switch col.Type {
	case schema.TypeNumber:
		result = cmp.Compare(a.number, b.number)
	case schema.TypeDate:
		switch {
		case !a.isDate && !b.isDate:
			return 0
		case !a.isDate:
			return 1
		case !b.isDate:
			return -1
		}
		result = a.date.Compare(b.date)
	default:
		result = c.collator(col.Locale).CompareString(a.raw, b.raw)
	}

	if !ascending {
		result = -result
	}
	return result
}

func (c *Comparator) collator(locale string) *collate.Collator {
	if locale == "" {
		locale = c.locale
	}
	if col, ok := c.collators[locale]; ok {
		return col
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	col := collate.New(tag)
	c.collators[locale] = col
	return col
}

// Compare compares rows a and b with a one-off Comparator. Use a Comparator
// when comparing many rows.
func Compare(a, b []string, state SortState, cols schema.Columns) int {
	return NewComparator(cols, "", nil).Compare(a, b, state)
}

// Sort sorts rows in place with a one-off Comparator.
func Sort(rows []Row, state SortState, cols schema.Columns) {
	NewComparator(cols, "", nil).Sort(rows, state)
}
