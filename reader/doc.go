// Package reader loads tables from files.
//
// Supported formats, chosen by extension:
//   - .csv, .tsv, .psv, .txt: delimited text
//   - .xlsx, .xlsm: the first sheet of a workbook, or Options.Sheet
//   - .parquet, .pq: Apache Parquet, one column per top-level field
//
// Any of them may be compressed with gzip, bzip2, xz, zstd or lz4, detected
// from the leading bytes, or with brotli, detected by a ".br" suffix.
//
// Every loader returns a Dataset of text cells. Parquet files also declare
// column types: numeric fields load as number columns and DATE or
// TIMESTAMP fields as date columns.
//
// # Basic Usage
//
//	ds, err := reader.Load("people.csv.gz", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Headers, len(ds.Rows))
//
// # Multi-file Operations
//
// Loading several files with one pattern:
//
//	ds, err := reader.LoadMultiple("logs/**/*.csv", reader.Options{})
//
// All files must share the same headers. Each row is tagged with a "_file"
// column containing the source file path.
//
// # Headers
//
// Blank header cells are named unnamed_a, unnamed_b and so on. With
// Options.NoHeaderRow every column is named that way and the first record
// is data.
package reader
