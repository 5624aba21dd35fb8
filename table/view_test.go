package table

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/tabview/schema"
)

func sampleView(opts ...Option) *View {
	headers := []string{"name", "age", "joined"}
	rows := [][]string{
		{"Alice", "30", "2021-03-04"},
		{"Bob", "25", "2019-11-30"},
		{"Albert", "35", "unknown"},
		{"Carol", "n/a", "2020-07-15"},
	}
	cols := schema.Columns{
		1: {Type: schema.TypeNumber, Unit: "y"},
		2: {Type: schema.TypeDate, Format: "YYYY-MM-DD", ToString: "DD Mmm YYYY"},
	}
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return NewView(headers, rows, cols, opts...)
}

func indices(rows []Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Index
	}
	return out
}

func TestView_RenderDefaults(t *testing.T) {
	v := sampleView()
	assert.Equal(t, []int{0, 1, 2, 3}, indices(v.Render()))
	assert.Equal(t, Stats{Total: 4, Matched: 4}, v.Stats())
	assert.Nil(t, v.AST())
}

func TestView_SetQueryCachesAST(t *testing.T) {
	v := sampleView()

	assert.True(t, v.SetQuery("name:^al"))
	first := v.AST()
	require.NotNil(t, first)

	assert.False(t, v.SetQuery("name:^al"))
	assert.Same(t, first, v.AST())

	assert.Equal(t, []int{0, 2}, indices(v.Render()))
	assert.Equal(t, Stats{Total: 4, Matched: 2}, v.Stats())

	assert.True(t, v.SetQuery(""))
	assert.Nil(t, v.AST())
	assert.Len(t, v.Render(), 4)
}

func TestView_FilterThenSort(t *testing.T) {
	v := sampleView()
	v.SetQuery("age:>=25")
	v.ToggleSort(1)

	assert.Equal(t, []int{1, 0, 2}, indices(v.Render()))

	v.ToggleSort(1)
	assert.Equal(t, SortState{Column: 1, Ascending: false}, v.SortState())
	assert.Equal(t, []int{2, 0, 1}, indices(v.Render()))
}

func TestView_SortDates(t *testing.T) {
	v := sampleView()

	v.SortBy(2, true)
	assert.Equal(t, []int{1, 3, 0, 2}, indices(v.Render()))

	v.SortBy(2, false)
	assert.Equal(t, []int{0, 3, 1, 2}, indices(v.Render()))

	v.ClearSort()
	assert.Equal(t, []int{0, 1, 2, 3}, indices(v.Render()))
}

func TestView_SortIgnoresUnknownColumn(t *testing.T) {
	v := sampleView()
	v.ToggleSort(7)
	v.SortBy(-3, true)
	assert.Equal(t, Unsorted(), v.SortState())
}

func TestView_HiddenColumnsLeaveScanScope(t *testing.T) {
	v := sampleView()
	v.SetQuery("2021")
	assert.Equal(t, []int{0}, indices(v.Render()))

	v.HideColumn(2)
	assert.Equal(t, []int{0, 1}, v.Visible())
	assert.Empty(t, v.Render())

	v.ShowColumn(2)
	assert.Equal(t, []int{0}, indices(v.Render()))
}

func TestView_Display(t *testing.T) {
	v := sampleView()
	v.HideColumn(0)

	headers, cells := v.Display(v.Render())
	assert.Equal(t, []string{"age", "joined"}, headers)
	assert.Equal(t, [][]string{
		{"30y", "04 Mar 2021"},
		{"25y", "30 Nov 2019"},
		{"35y", "unknown"},
		{"n/ay", "15 Jul 2020"},
	}, cells)
}

func TestView_QueryMatchesDisplayedDates(t *testing.T) {
	v := sampleView()
	v.SetQuery("joined:mar")
	assert.Equal(t, []int{0}, indices(v.Render()))
}

func TestView_Logger(t *testing.T) {
	var buf bytes.Buffer
	v := sampleView(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	v.SetQuery("bob")
	v.Render()

	assert.Contains(t, buf.String(), `"message":"query compiled"`)
	assert.Contains(t, buf.String(), `"matched":1`)
}

func TestView_ColumnIndex(t *testing.T) {
	v := sampleView()
	i, ok := v.ColumnIndex("AGE")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}
