package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{
			name: "zero value gets defaults",
			in:   PageRequest{},
			want: PageRequest{Number: 0, Size: 10, SortField: FieldID, SortDir: SortAsc},
		},
		{
			name: "negative page clamps to zero",
			in:   PageRequest{Number: -3, Size: 20},
			want: PageRequest{Number: 0, Size: 20, SortField: FieldID, SortDir: SortAsc},
		},
		{
			name: "oversized page caps at 100",
			in:   PageRequest{Size: 5000},
			want: PageRequest{Number: 0, Size: 100, SortField: FieldID, SortDir: SortAsc},
		},
		{
			name: "explicit sort survives",
			in:   PageRequest{Number: 2, Size: 5, SortField: FieldName, SortDir: SortDesc},
			want: PageRequest{Number: 2, Size: 5, SortField: FieldName, SortDir: SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestNewPage(t *testing.T) {
	req := PageRequest{Number: 1, Size: 2}.Normalize()
	page := NewPage([]string{"c", "d"}, req, 5)

	assert.Equal(t, []string{"c", "d"}, page.Content)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.False(t, page.First)
	assert.False(t, page.Last)
}

func TestNewPage_Empty(t *testing.T) {
	req := PageRequest{}.Normalize()
	page := NewPage[string](nil, req, 0)

	assert.NotNil(t, page.Content, "content is an empty slice, never null on the wire")
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestNewPage_LastPage(t *testing.T) {
	req := PageRequest{Number: 2, Size: 2}.Normalize()
	page := NewPage([]string{"e"}, req, 5)

	assert.True(t, page.Last)
	assert.False(t, page.First)
	assert.Equal(t, 3, page.TotalPages)
}

func TestMapPage(t *testing.T) {
	req := PageRequest{Number: 0, Size: 2}.Normalize()
	page := NewPage([]int{1, 2}, req, 4)

	mapped := MapPage(page, func(v int) int { return v * 10 })

	assert.Equal(t, []int{10, 20}, mapped.Content)
	assert.Equal(t, page.PageNumber, mapped.PageNumber)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
	assert.Equal(t, page.TotalElements, mapped.TotalElements)
}
