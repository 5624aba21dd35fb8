// Package output writes rendered tables.
//
// This package defines the Formatter interface and provides implementations
// for an aligned text table, CSV and JSON Lines. All formatters take the
// visible headers and the display text of the visible cells, as returned
// by table.View.Display.
//
// # Supported Formats
//
//   - table: bordered text table, long cells cut with an ellipsis
//   - csv: comma-separated values with header row
//   - json: one JSON object per line, keys in column order
//
// # Basic Usage
//
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(headers, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # CSV Injection
//
// CSV cells starting with '=', '+', '-', '@' or a control character are
// prefixed with a single quote unless they are numbers, so spreadsheet
// applications do not evaluate them as formulas.
package output
