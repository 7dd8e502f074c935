package repository

// SortDirection orders search results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageRequest selects one zero-based page of a sorted result set.
type PageRequest struct {
	Number    int
	Size      int
	SortField string
	SortDir   SortDirection
}

// Normalize fills in defaults: page 0, size 10 (capped at 100), sort by id
// ascending.
func (p PageRequest) Normalize() PageRequest {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.SortField == "" {
		p.SortField = FieldID
	}
	if p.SortDir != SortDesc {
		p.SortDir = SortAsc
	}
	return p
}

// Offset returns the number of records preceding the requested page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page wraps one slice of results with pagination metadata. Page numbers are
// zero-based on the wire.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPage assembles the envelope for one page of content. The request must
// already be normalized.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int((total + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Content:       content,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalPages:    totalPages,
		TotalElements: total,
		First:         req.Number == 0,
		Last:          req.Number+1 >= totalPages,
	}
}

// MapPage converts page content while preserving the pagination metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[U]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		First:         p.First,
		Last:          p.Last,
	}
}
