package paginator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestNumPagesAndReconstruction(t *testing.T) {
	for _, perPage := range []int{1, 2, 3, 7, 10, 25} {
		for _, count := range []int{1, 2, 9, 10, 11, 20, 21, 100} {
			items := seq(count)
			p := New(count, perPage)
			want := (count + perPage - 1) / perPage
			require.Equal(t, want, p.NumPages(), "count=%d perPage=%d", count, perPage)

			var joined []int
			for n := 1; n <= p.NumPages(); n++ {
				w := Paginate(items, strconv.Itoa(n), perPage)
				assert.Equal(t, n, w.Page.Number)
				joined = append(joined, w.Items...)
			}
			assert.Equal(t, items, joined, "count=%d perPage=%d", count, perPage)
		}
	}
}

func TestElevenPostsPageSizeTen(t *testing.T) {
	items := seq(11)

	first := Paginate(items, "", 10)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 1, first.Page.Number)
	assert.True(t, first.Page.HasNext())
	assert.False(t, first.Page.HasPrevious())

	second := Paginate(items, "2", 10)
	assert.Equal(t, []int{10}, second.Items)
	assert.False(t, second.Page.HasNext())

	third := Paginate(items, "3", 10)
	assert.Equal(t, second, third)
}

func TestPageNumberParsing(t *testing.T) {
	p := New(30, 10)
	cases := map[string]int{
		"":      1,
		"abc":   1,
		"1.5":   1,
		"0":     1,
		"-4":    1,
		" 2 ":   2,
		"3":     3,
		"99999": 3,

		"99999999999999999999":  3,
		"-99999999999999999999": 1,
		"+99999999999999999999": 3,
	}
	for raw, want := range cases {
		assert.Equal(t, want, p.GetPage(raw).Number, "raw=%q", raw)
	}
}

func TestEmptySequence(t *testing.T) {
	w := Paginate([]string{}, "5", 10)
	assert.Empty(t, w.Items)
	assert.Equal(t, 1, w.Page.Number)
	assert.Equal(t, 1, w.Page.NumPages)
	assert.Equal(t, 0, w.Page.Limit)
	assert.False(t, w.Page.HasOtherPages())
}

func TestOffsetLimit(t *testing.T) {
	page := New(25, 10).Page(3)
	assert.Equal(t, 20, page.Offset)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 2, page.PreviousNumber())
}

func TestPerPageBelowOneIsOne(t *testing.T) {
	p := New(3, 0)
	assert.Equal(t, 1, p.PerPage)
	assert.Equal(t, 3, p.NumPages())
}

func TestIdempotent(t *testing.T) {
	items := seq(42)
	assert.Equal(t, Paginate(items, "4", 10), Paginate(items, "4", 10))
}
