package listquery

// Pager derives the page controls of a list that reports no total count. The
// end of the list is inferred from a short page.
type Pager struct {
	Page     int
	PageSize int
	Fetched  int
}

func (p Pager) HasPrev() bool {
	return p.Page > 1
}

func (p Pager) HasNext() bool {
	return p.PageSize > 0 && p.Fetched == p.PageSize
}

// Visible reports whether any control is useful.
func (p Pager) Visible() bool {
	return p.HasPrev() || p.HasNext()
}

func (p Pager) Prev() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

func (p Pager) Next() int {
	if !p.HasNext() {
		return p.Page
	}
	return p.Page + 1
}
