package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/tabview/config"
	"github.com/vegasq/tabview/output"
)

const peopleCSV = "name,age,joined\nAlice,9,03.02.2021\nBob,25,15.01.2020\nAlbert,10,01.12.2022\n"

const peopleConfig = `
timezone: UTC
columns:
  - name: age
    type: number
  - name: joined
    type: date
    format: DD.MM.YYYY
`

type fixture struct {
	dir    string
	data   string
	config string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		data:   filepath.Join(dir, "people.csv"),
		config: filepath.Join(dir, "tabview.yaml"),
	}
	require.NoError(t, os.WriteFile(f.data, []byte(peopleCSV), 0o644))
	require.NoError(t, os.WriteFile(f.config, []byte(peopleConfig), 0o644))
	return f
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_QueryAndSort(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "number column sorts numerically",
			args: []string{"-q", "name:^al", "-s", "age", "--desc"},
			want: "name,age,joined\nAlbert,10,01.12.2022\nAlice,9,03.02.2021\n",
		},
		{
			name: "date column sorts by date",
			args: []string{"-s", "joined"},
			want: "name,age,joined\nBob,25,15.01.2020\nAlice,9,03.02.2021\nAlbert,10,01.12.2022\n",
		},
		{
			name: "date inequality",
			args: []string{"-q", "joined:>2021"},
			want: "name,age,joined\nAlice,9,03.02.2021\nAlbert,10,01.12.2022\n",
		},
		{
			name: "limit",
			args: []string{"--limit", "1"},
			want: "name,age,joined\nAlice,9,03.02.2021\n",
		},
		{
			name: "show and hide",
			args: []string{"--show", "name,age", "--hide", "age", "-q", "bob"},
			want: "name\nBob\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-f", "csv", "--config", f.config}, tt.args...)
			stdout, _, err := execute(t, "", append(args, f.data)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRoot_FormatFromEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv("TABVIEW_FORMAT", "json")

	stdout, _, err := execute(t, "", "--config", f.config, "-q", "bob", f.data)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Bob","age":"25","joined":"15.01.2020"}`+"\n", stdout)
}

func TestRoot_FlagBeatsEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv("TABVIEW_FORMAT", "json")

	stdout, _, err := execute(t, "", "--config", f.config, "-f", "csv", "-q", "bob", f.data)
	require.NoError(t, err)
	assert.Equal(t, "name,age,joined\nBob,25,15.01.2020\n", stdout)
}

func TestRoot_TableOutput(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := execute(t, "", "--config", f.config, f.data)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Albert")
	assert.Contains(t, stdout, "joined")
}

func TestRoot_Interactive(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := execute(t, "name:bob\n:q\n", "-i", "-f", "csv", "--config", f.config, f.data)
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 of 3 rows")
	assert.Contains(t, stdout, "name,age,joined\nBob,25,15.01.2020\n1 of 3 rows")
}

func TestRoot_Schema(t *testing.T) {
	type row struct {
		ID   int64  `parquet:"id"`
		Name string `parquet:"name"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "rows.parquet")
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := parquet.NewGenericWriter[row](file)
	_, err = writer.Write([]row{{ID: 1, Name: "Alice"}})
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	stdout, _, err := execute(t, "", "--schema", "-f", "csv", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name,type,physical_type,logical_type,column,required,optional,repeated\n")
	var id string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "id,") {
			id = line
		}
	}
	assert.Contains(t, id, ",INT64,")
	assert.True(t, strings.HasSuffix(id, ",number,true,false,false"), id)
}

func TestRoot_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "negative limit", args: []string{"--limit", "-1", f.data}, wantMsg: "--limit must be non-negative"},
		{name: "schema with query", args: []string{"--schema", "-q", "x", f.data}, wantMsg: "cannot be used together"},
		{name: "unknown format", args: []string{"-f", "xml", f.data}, wantErr: output.ErrUnknownFormat},
		{name: "unknown sort column", args: []string{"-s", "nope", f.data}, wantErr: config.ErrUnknownColumn},
		{name: "unknown shown column", args: []string{"--show", "nope", f.data}, wantErr: config.ErrUnknownColumn},
		{name: "long delimiter", args: []string{"--delimiter", ";;", f.data}, wantMsg: "single character"},
		{name: "bad timezone", args: []string{"--timezone", "Nowhere/Else", f.data}, wantMsg: "invalid timezone"},
		{name: "no files", args: []string{filepath.Join(f.dir, "*.tsv")}, wantMsg: "no files match"},
		{name: "missing argument", args: nil, wantMsg: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", f.config}, tt.args...)
			_, _, err := execute(t, "", args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRoot_DebugLogging(t *testing.T) {
	f := newFixture(t)

	_, stderr, err := execute(t, "", "--config", f.config, "--log-level", "debug", "--log-format", "json", f.data)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"loaded"`)
	assert.Contains(t, stderr, `"message":"done"`)
}
