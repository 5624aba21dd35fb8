package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaders_Index(t *testing.T) {
	headers := Headers{"Name", "age", "name"}

	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"name", 0, true},
		{"NAME", 0, true},
		{"Age", 1, true},
		{"city", -1, false},
		{"", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := headers.Index(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 2))
	assert.Equal(t, "", Cell(row, -1))
	assert.Equal(t, "", Cell(nil, 0))
}

func TestVisibleSet(t *testing.T) {
	v := AllVisible(3)
	assert.Equal(t, []int{0, 1, 2}, v.Positions())

	v.Hide(1)
	v.Hide(7)
	assert.Equal(t, []int{0, 2}, v.Positions())
	assert.False(t, v.Contains(1))

	v.Show(1)
	assert.True(t, v.Contains(1))
	assert.Equal(t, 3, v.Len())

	assert.Equal(t, []int{2, 5}, NewVisibleSet(5, 2, 5).Positions())
}

func TestVisibleSet_ZeroValue(t *testing.T) {
	var v VisibleSet
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Positions())

	v.Hide(0)
	v.Show(4)
	assert.True(t, v.Contains(4))
	assert.Equal(t, []int{4}, v.Positions())
}

func TestVisibleSet_Nil(t *testing.T) {
	var v *VisibleSet
	assert.False(t, v.Contains(0))
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Positions())
	assert.NotPanics(t, func() { v.Hide(0) })
}
