package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// delimiterFor returns the field delimiter of path: the configured one, or
// one chosen from the extension.
func delimiterFor(path string, opts Options) rune {
	if opts.Delimiter != 0 {
		return opts.Delimiter
	}
	name := strings.ToLower(filepath.Base(path))
	if ext := filepath.Ext(name); compressionBySuffix(ext) != CompressionNone {
		name = strings.TrimSuffix(name, ext)
	}
	switch filepath.Ext(name) {
	case ".tsv":
		return '\t'
	case ".psv":
		return '|'
	default:
		return ','
	}
}

func loadDelimited(path string, opts Options) (*Dataset, error) {
	rc, err := openDecompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	records, err := ReadDelimited(rc, delimiterFor(path, opts))
	if err != nil {
		return nil, err
	}
	return newDataset(records, opts.NoHeaderRow), nil
}

// ReadDelimited reads every record of delimited text. Quotes are handled
// leniently and records may have differing field counts.
func ReadDelimited(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	var records [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
