package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned by New for unrecognized format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a rendered table in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format. Every row has
	// one cell per header.
	Format(headers []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Names lists the format names New accepts.
var Names = []string{"table", "csv", "json"}

// New returns the formatter called name writing to w. "jsonl" is an alias
// of "json".
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "table", "":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Names, ", "))
	}
}
