package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header record followed by rows
func (c *CSVFormatter) Format(headers []string, rows [][]string) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(headers) > 0 {
		if err := csvWriter.Write(sanitizeRecord(headers)); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := csvWriter.Write(sanitizeRecord(row)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

func sanitizeRecord(record []string) []string {
	out := make([]string, len(record))
	for i, v := range record {
		out[i] = sanitizeCell(v)
	}
	return out
}

// sanitizeCell guards against CSV injection by quoting cells that a
// spreadsheet application would run as a formula. Numbers such as "-5" are
// left alone.
func sanitizeCell(val string) string {
	if val == "" {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		if _, err := strconv.ParseFloat(val, 64); err == nil {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
