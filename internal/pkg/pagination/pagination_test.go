package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Run("page count is ceil(n/p)", func(t *testing.T) {
		cases := []struct {
			total      int64
			size       int
			totalPages int
		}{
			{0, 10, 1},
			{1, 10, 1},
			{10, 10, 1},
			{11, 10, 2},
			{13, 10, 2},
			{20, 10, 2},
			{21, 10, 3},
			{7, 3, 3},
		}
		for _, c := range cases {
			page := Paginate(c.total, 1, c.size)
			assert.Equal(t, c.totalPages, page.TotalPages, "total=%d size=%d", c.total, c.size)
			assert.Equal(t, c.total, page.TotalItems)
		}
	})

	t.Run("concatenated pages reproduce the sequence", func(t *testing.T) {
		seq := make([]int, 23)
		for i := range seq {
			seq[i] = i
		}

		size := 5
		first := Paginate(int64(len(seq)), 1, size)

		var got []int
		for n := 1; n <= first.TotalPages; n++ {
			p := Paginate(int64(len(seq)), n, size)
			start, end := p.SliceBounds(len(seq))
			got = append(got, seq[start:end]...)
		}
		assert.Equal(t, seq, got)
	})

	t.Run("page beyond last clamps to last page", func(t *testing.T) {
		page := Paginate(13, 99, 10)
		assert.Equal(t, 2, page.Number)
		assert.Equal(t, 3, 13-page.Offset())
		assert.True(t, page.HasPrevious)
		assert.False(t, page.HasNext)
	})

	t.Run("empty sequence yields one empty page", func(t *testing.T) {
		page := Paginate(0, 1, 10)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrevious)

		start, end := page.SliceBounds(0)
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})

	t.Run("invalid page and size fall back to defaults", func(t *testing.T) {
		page := Paginate(30, -4, 0)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, DefaultPageSize, page.Size)
		assert.True(t, page.HasNext)
	})

	t.Run("navigation booleans", func(t *testing.T) {
		middle := Paginate(30, 2, 10)
		assert.True(t, middle.HasPrevious)
		assert.True(t, middle.HasNext)

		last := Paginate(30, 3, 10)
		assert.True(t, last.HasPrevious)
		assert.False(t, last.HasNext)
	})
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}
