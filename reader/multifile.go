package reader

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// FileColumn is the column LoadMultiple adds with the source path of each
// row.
const FileColumn = "_file"

// maxFiles limits how many files one pattern may load.
const maxFiles = 1000

// LoadMultiple loads every file matching pattern into one Dataset. Patterns
// support doublestar syntax:
//   - * matches any sequence of non-separator characters
//   - ** matches any number of directories
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//   - {a,b} matches either a or b
//
// A pattern without wildcards loads that single file unchanged. Otherwise
// all files must have identical headers and each row gets a FileColumn cell
// naming its file. Column types declared by the files are taken from the
// first file.
func LoadMultiple(pattern string, opts Options) (*Dataset, error) {
	if !isGlob(pattern) {
		return Load(pattern, opts)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}
	slices.Sort(matches)

	var merged *Dataset
	for _, path := range matches {
		ds, err := Load(path, opts)
		if err != nil {
			return nil, err
		}

		if merged == nil {
			merged = &Dataset{
				Headers: append(slices.Clone(ds.Headers), FileColumn),
				Columns: ds.Columns,
			}
		} else if !slices.Equal(merged.Headers[:len(merged.Headers)-1], ds.Headers) {
			return nil, fmt.Errorf("%w: %s has %v, expected %v",
				ErrHeaderMismatch, path, ds.Headers, merged.Headers[:len(merged.Headers)-1])
		}

		for _, row := range ds.Rows {
			merged.Rows = append(merged.Rows, append(slices.Clip(row), path))
		}
	}

	return merged, nil
}

func isGlob(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
