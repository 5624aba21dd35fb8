// Package schema describes the shape of a loaded table: its headers, the
// per-column type configuration used for coercion and display, and the set of
// columns currently visible.
//
// Column configuration is supplied once, when a table is opened, and is
// read-only afterwards. Positions not present in a Columns map default to
// plain string columns:
//
//	cols := schema.Columns{
//	    1: {Type: schema.TypeNumber, ToString: "N2", Unit: " kg"},
//	    2: {Type: schema.TypeDate, Format: "YYYY/MM/DD", ToString: "DD Mmm YYYY"},
//	}
//	cols.At(0).Type // TypeString
//
// Header names are matched case-insensitively and resolve to the first
// matching position:
//
//	idx, ok := schema.Headers{"Name", "Age"}.Index("age") // 1, true
package schema
