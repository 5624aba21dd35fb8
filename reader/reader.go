package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/tabview/schema"
)

var (
	// ErrNoFiles is returned when a glob pattern matches nothing.
	ErrNoFiles = errors.New("no files match pattern")
	// ErrHeaderMismatch is returned when files loaded together have
	// different headers.
	ErrHeaderMismatch = errors.New("headers differ")
	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Dataset is a loaded table. Every row has exactly len(Headers) cells.
type Dataset struct {
	Headers []string
	Rows    [][]string
	// Columns holds the column types the file format itself declares, as in
	// Parquet schemas. It is empty for untyped formats.
	Columns schema.Columns
}

// Options control how files are read.
type Options struct {
	// Delimiter separates fields of delimited text. Zero selects ',' or, for
	// .tsv files, '\t'.
	Delimiter rune
	// NoHeaderRow treats the first record as data and names every column
	// unnamed_a, unnamed_b, ...
	NoHeaderRow bool
	// Sheet selects the XLSX sheet; empty means the first sheet.
	Sheet string
}

// Format is a file format tabview can load.
type Format int

const (
	FormatDelimited Format = iota
	FormatXLSX
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatDelimited:
		return "delimited"
	case FormatXLSX:
		return "xlsx"
	case FormatParquet:
		return "parquet"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat returns the format of path from its extension, ignoring a
// trailing compression suffix such as ".gz".
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	if ext := filepath.Ext(name); compressionBySuffix(ext) != CompressionNone {
		name = strings.TrimSuffix(name, ext)
	}

	switch filepath.Ext(name) {
	case ".csv", ".tsv", ".txt", ".psv":
		return FormatDelimited, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".parquet", ".pq":
		return FormatParquet, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads the file at path. Compressed files are decompressed
// transparently.
func Load(path string, opts Options) (*Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var ds *Dataset
	switch format {
	case FormatDelimited:
		ds, err = loadDelimited(path, opts)
	case FormatXLSX:
		ds, err = loadXLSX(path, opts)
	case FormatParquet:
		ds, err = loadParquet(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ds, nil
}

// newDataset names the columns from the first record, or synthesizes names
// when there is no header row, and squares every row to the header width.
func newDataset(records [][]string, noHeaderRow bool) *Dataset {
	if len(records) == 0 {
		return &Dataset{}
	}

	var headers []string
	data := records
	if noHeaderRow {
		width := 0
		for _, r := range records {
			width = max(width, len(r))
		}
		headers = NormalizeHeaders(make([]string, width))
	} else {
		headers = NormalizeHeaders(records[0])
		data = records[1:]
	}

	rows := make([][]string, len(data))
	for i, r := range data {
		rows[i] = fitRow(r, len(headers))
	}
	return &Dataset{Headers: headers, Rows: rows}
}

func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
