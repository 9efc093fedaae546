package pagination

import "math"

// Page describes a 1-based page request over NumItems results.
// Requests past the last page are kept as-is; callers get an empty slice.
type Page struct {
	Number   int
	Size     int
	NumItems int64
}

// New normalises the page number (anything below 1 becomes 1).
func New(number, size int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, Size: size}
}

func (p *Page) SetNumItems(number int64) {
	p.NumItems = number
}

// Offset is the number of rows to skip. It saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Size <= 0 || p.Number <= 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// PastEnd reports whether the page starts after the last item.
func (p Page) PastEnd() bool {
	return p.Number > p.TotalPages()
}

// TotalPages is ceil(NumItems / Size), 0 when there are no items.
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.NumItems) / float64(p.Size)))
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages()
}
