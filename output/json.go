package output

import (
	"bufio"
	"io"

	"github.com/segmentio/encoding/json"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keys in header order.
func (j *JSONFormatter) Format(headers []string, rows [][]string) error {
	keys := make([][]byte, len(headers))
	for i, h := range headers {
		key, err := json.Marshal(h)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	w := bufio.NewWriter(j.writer)
	for _, row := range rows {
		w.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				w.WriteByte(',')
			}
			w.Write(key)
			w.WriteByte(':')

			var cell string
			if i < len(row) {
				cell = row[i]
			}
			value, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			w.Write(value)
		}
		w.WriteString("}\n")
	}
	return w.Flush()
}
