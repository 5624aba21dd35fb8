package reader

import "strings"

// spreadsheetColumn converts a 0-based index to a lower-case spreadsheet
// column name: 0 -> a, 25 -> z, 26 -> aa.
func spreadsheetColumn(index int) string {
	var b []byte
	for index++; index > 0; index /= 26 {
		index--
		b = append([]byte{byte('a' + index%26)}, b...)
	}
	return string(b)
}

// NormalizeHeaders names blank headers unnamed_a, unnamed_b, ... in order
// of appearance. Other headers are kept as they are.
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	blank := 0
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			out[i] = "unnamed_" + spreadsheetColumn(blank)
			blank++
			continue
		}
		out[i] = h
	}
	return out
}
