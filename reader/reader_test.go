package reader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data.csv", FormatDelimited, false},
		{"DATA.TSV", FormatDelimited, false},
		{"data.csv.gz", FormatDelimited, false},
		{"data.tsv.zst", FormatDelimited, false},
		{"book.xlsx", FormatXLSX, false},
		{"rows.parquet", FormatParquet, false},
		{"rows.parquet.br", FormatParquet, false},
		{"notes.md", 0, true},
		{"archive.gz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Delimited(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		opts        Options
		wantHeaders []string
		wantRows    [][]string
	}{
		{
			name:        "csv",
			file:        "a.csv",
			content:     "name,age\nAlice,30\n\"Smith, J\",41\n",
			wantHeaders: []string{"name", "age"},
			wantRows:    [][]string{{"Alice", "30"}, {"Smith, J", "41"}},
		},
		{
			name:        "tsv by extension",
			file:        "a.tsv",
			content:     "name\tage\nAlice\t30\n",
			wantHeaders: []string{"name", "age"},
			wantRows:    [][]string{{"Alice", "30"}},
		},
		{
			name:        "explicit delimiter",
			file:        "a.txt",
			content:     "name;age\nBob;25\n",
			opts:        Options{Delimiter: ';'},
			wantHeaders: []string{"name", "age"},
			wantRows:    [][]string{{"Bob", "25"}},
		},
		{
			name:        "ragged rows are squared",
			file:        "a.csv",
			content:     "a,b,c\n1\n1,2,3,4\n",
			wantHeaders: []string{"a", "b", "c"},
			wantRows:    [][]string{{"1", "", ""}, {"1", "2", "3"}},
		},
		{
			name:        "blank headers",
			file:        "a.csv",
			content:     "name,,age, \nx,y,z,w\n",
			wantHeaders: []string{"name", "unnamed_a", "age", "unnamed_b"},
			wantRows:    [][]string{{"x", "y", "z", "w"}},
		},
		{
			name:        "no header row",
			file:        "a.csv",
			content:     "1,2\n3,4,5\n",
			opts:        Options{NoHeaderRow: true},
			wantHeaders: []string{"unnamed_a", "unnamed_b", "unnamed_c"},
			wantRows:    [][]string{{"1", "2", ""}, {"3", "4", "5"}},
		},
		{
			name:        "lazy quotes",
			file:        "a.csv",
			content:     "q\nsay \"hi\"\n",
			wantHeaders: []string{"q"},
			wantRows:    [][]string{{`say "hi"`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, []byte(tt.content))
			ds, err := Load(path, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeaders, ds.Headers)
			assert.Equal(t, tt.wantRows, ds.Rows)
			assert.Empty(t, ds.Columns)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", nil)
	ds, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Empty(t, ds.Headers)
	assert.Empty(t, ds.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "age"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Alice", 30}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Bob"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, ds.Headers)
	assert.Equal(t, [][]string{{"Alice", "30"}, {"Bob", ""}}, ds.Rows)
}

func TestLoad_XLSXUnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, Options{Sheet: "Nope"})
	assert.Error(t, err)
}

func TestNormalizeHeaders(t *testing.T) {
	got := NormalizeHeaders(append([]string{"id"}, make([]string, 28)...))
	assert.Equal(t, "id", got[0])
	assert.Equal(t, "unnamed_a", got[1])
	assert.Equal(t, "unnamed_z", got[26])
	assert.Equal(t, "unnamed_aa", got[27])
	assert.Equal(t, "unnamed_ab", got[28])
}

func TestReadDelimited(t *testing.T) {
	records, err := ReadDelimited(strings.NewReader("a|b\n1|2\n"), '|')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, records)
}
