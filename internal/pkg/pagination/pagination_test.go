package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := map[int64]int{0: 0, 1: 1, 5: 1, 6: 2, 10: 2, 11: 3}
	for items, want := range cases {
		p := New(1, 5)
		p.SetNumItems(items)
		assert.Equal(t, want, p.TotalPages(), "items=%d", items)
	}
}

func TestNewClampsToFirstPage(t *testing.T) {
	assert.Equal(t, 1, New(0, 5).Number)
	assert.Equal(t, 1, New(-3, 5).Number)
	assert.Equal(t, 0, New(1, 5).Offset())
	assert.Equal(t, 10, New(3, 5).Offset())
}

func TestBoundaryFlags(t *testing.T) {
	p := New(2, 5)
	p.SetNumItems(11)
	assert.True(t, p.HasPrevious())
	assert.True(t, p.HasNext())

	last := New(3, 5)
	last.SetNumItems(11)
	assert.False(t, last.HasNext())

	beyond := New(9, 5)
	beyond.SetNumItems(11)
	assert.True(t, beyond.HasPrevious())
	assert.False(t, beyond.HasNext())
	assert.True(t, beyond.PastEnd())
	assert.False(t, last.PastEnd())

	empty := New(1, 5)
	assert.True(t, empty.PastEnd())
}

func TestOffsetSaturates(t *testing.T) {
	huge := New(math.MaxInt/5+2, 5)
	assert.Equal(t, math.MaxInt, huge.Offset())

	assert.Equal(t, math.MaxInt, New(math.MaxInt, 5).Offset())
	assert.Equal(t, 0, Page{Number: 4, Size: 0}.Offset())
}
