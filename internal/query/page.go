package query

// Meta is the pagination block of a Page. From and To are 1-based inclusive
// bounds of Data within the filtered collection, both 0 when Data is empty.
type Meta struct {
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	From        int `json:"from"`
	To          int `json:"to"`
	LastPage    int `json:"lastPage"`
	Total       int `json:"total"`
}

// Page is one slice of a filtered, sorted collection.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// LastPage returns max(1, ceil(total/pageSize)).
func LastPage(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage bounds page into [1, lastPage].
func ClampPage(page, lastPage int) int {
	if page > lastPage {
		page = lastPage
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate slices items for page/pageSize. A page past the end yields empty
// Data with the metadata still describing the whole collection; the caller
// decides whether to clamp.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	meta := Meta{
		CurrentPage: page,
		PerPage:     pageSize,
		LastPage:    LastPage(total, pageSize),
		Total:       total,
	}

	if page > meta.LastPage || total == 0 {
		return Page[T]{Data: []T{}, Meta: meta}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	data := make([]T, end-start)
	copy(data, items[start:end])
	meta.From = start + 1
	meta.To = end
	return Page[T]{Data: data, Meta: meta}
}

// MapPage converts the records of a page, keeping its metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := Page[U]{Data: make([]U, len(p.Data)), Meta: p.Meta}
	for i, rec := range p.Data {
		out.Data[i] = fn(rec)
	}
	return out
}
