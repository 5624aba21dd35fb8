// Package query implements the filter language of tabview.
//
// A query is a boolean combination of terms:
//   - alice             rows where any visible column contains "alice"
//   - name:^al          rows whose name column starts with "al"
//   - name:"van der"    quoted values are taken verbatim, spaces included
//   - age:>=30          typed comparison; numbers first, then dates
//   - joined:<2020      a bare four digit year is January 1 of that year
//   - a OR b            either side
//   - a AND b, a b      both sides; juxtaposition is AND
//   - (a OR b) c        parentheses group
//
// OR binds loosest, so "a OR b c" is "a OR (b AND c)". Matching is case
// insensitive. In a term value '^' anchors the start and a trailing '$'
// anchors the end; every other character is literal.
//
// The language never reports errors. Fragments that cannot be read are
// dropped, and a query that is empty after that is nil, which matches every
// row.
//
// # Basic Usage
//
//	node := query.Parse("name:^al age:>=30")
//	ctx := &query.Context{
//	    Headers: schema.Headers{"name", "age"},
//	    Visible: schema.AllVisible(2),
//	    Columns: schema.Columns{1: {Type: schema.TypeNumber}},
//	}
//	for _, row := range rows {
//	    if query.Evaluate(node, row, ctx) {
//	        // ...
//	    }
//	}
//
// # Column Types
//
// Term values are matched against the displayed text of date columns that
// have an output format, and against the raw cell otherwise. Inequalities on
// date columns compare dates only, reading cells with the column's input
// format. On other columns they compare numbers when both sides are numbers
// and fall back to dates. Cells that are neither never match an inequality.
//
// # Limits
//
// Input past MaxQueryLength bytes is ignored. Parentheses nested deeper than
// MaxExpressionDepth are ignored.
package query
