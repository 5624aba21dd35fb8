package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// DefaultMaxWidth is the display width cells are cut to by default.
const DefaultMaxWidth = 40

// TableFormatter outputs rows as an aligned text table
type TableFormatter struct {
	writer io.Writer
	// MaxWidth cuts longer cells with an ellipsis. Zero disables cutting.
	MaxWidth int
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w, MaxWidth: DefaultMaxWidth}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes headers and rows as a bordered table
func (t *TableFormatter) Format(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(t.fit(headers))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		table.Append(t.fit(row))
	}
	table.Render()
	return nil
}

func (t *TableFormatter) fit(cells []string) []string {
	if t.MaxWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = runewidth.Truncate(c, t.MaxWidth, "…")
	}
	return out
}
