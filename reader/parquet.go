package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/segmentio/encoding/json"
)

// Reader reads parquet files and returns rows as maps.
//
// It keeps the handle of the underlying file open until Close.
type Reader struct {
	closer io.Closer
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Parquet files wrapped
// in an outer compression layer (data.parquet.gz) are decompressed into
// memory first.
//
// Example:
//
//	reader, err := NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewReader(path string) (*Reader, error) {
	if compressionBySuffix(filepath.Ext(path)) != CompressionNone {
		data, err := readAllDecompressed(path)
		if err != nil {
			return nil, err
		}
		pqFile, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to open parquet file: %w", err)
		}
		return &Reader{pqFile: pqFile}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		closer: file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads all rows from the parquet file into memory, keyed by
// column name.
func (r *Reader) ReadAll() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Dataset reads all rows as text cells, one column per top-level field, and
// infers column types from the schema.
func (r *Reader) Dataset() (*Dataset, error) {
	fields := r.Schema().Fields()
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Name()
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(fields))
		for j, f := range fields {
			line[j] = cellText(row[f.Name()], f)
		}
		cells[i] = line
	}

	return &Dataset{
		Headers: headers,
		Rows:    cells,
		Columns: InferColumns(fields),
	}, nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

func loadParquet(path string) (*Dataset, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.Dataset()
}

// timestampLayout is how parquet timestamps are rendered as cells. It is
// the input format InferColumns assigns to timestamp columns.
const timestampLayout = "2006-01-02T15:04:05Z07:00"

// dateLayout is the cell rendering of parquet DATE values.
const dateLayout = "2006-01-02"

// cellText renders a parquet value as cell text.
func cellText(v interface{}, field parquet.Field) string {
	if v == nil {
		return ""
	}

	switch kind := temporalKindOf(field); {
	case kind == temporalDate:
		if days, ok := asInt64(v); ok {
			return time.Unix(days*86400, 0).UTC().Format(dateLayout)
		}
	case kind != temporalNone:
		if n, ok := asInt64(v); ok {
			return kind.fromInt(n).UTC().Format(timestampLayout)
		}
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(timestampLayout)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
