package views

// Paginator tracks a cursor over a list shown one page at a time. The page
// shown is always the one holding the cursor.
type Paginator struct {
	size   int
	cursor int
	total  int
}

// NewPaginator returns a paginator with the given rows per page (10 if size <= 0)
func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = 10
	}
	return &Paginator{size: size}
}

// SetPageSize changes the rows per page. Non-positive sizes are ignored.
func (p *Paginator) SetPageSize(size int) {
	if size > 0 {
		p.size = size
	}
}

// PageSize returns the number of rows per page
func (p *Paginator) PageSize() int {
	return p.size
}

// SetTotal sets the list length and clamps the cursor into it
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to [0, total)
func (p *Paginator) SetCursor(pos int) {
	if pos >= p.total {
		pos = p.total - 1
	}
	p.cursor = max(pos, 0)
}

// CursorUp moves up one row and reports whether it moved
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// CursorDown moves down one row and reports whether it moved
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	return true
}

// PageOffset returns the index of the first row on the current page
func (p *Paginator) PageOffset() int {
	return (p.cursor / p.size) * p.size
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.PageOffset()
	return start, min(start+p.size, p.total)
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.PageOffset()/p.size + 1
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	next := p.PageOffset() + p.size
	if next >= p.total {
		return false
	}
	p.cursor = next
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	offset := p.PageOffset()
	if offset == 0 {
		return false
	}
	p.cursor = offset - p.size
	return true
}
