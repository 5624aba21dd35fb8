// Package table sorts rows and drives the filter and sort pipeline of a
// table view.
//
// A View owns the query text, the sort state and the set of visible columns.
// Render filters the loaded rows with the current query, then sorts the
// matches:
//
//	v := table.NewView(headers, rows, cols, table.WithLocale("de-DE"))
//	v.SetQuery("city:berlin age:>=30")
//	v.ToggleSort(2)
//	headers, cells := v.Display(v.Render())
//
// Sorting follows the type of the sort column. Number cells that do not
// parse sort first in ascending order. Date cells that do not parse sort
// last regardless of direction. Other cells are collated with the column's
// locale. Rows with equal keys stay in load order.
package table
