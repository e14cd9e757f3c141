package pageable

// Page is the paged response envelope returned by the rococo gateway.
// T is the content payload, usually a slice of DTOs.
type Page[T any] struct {
	Content T    `json:"content"`
	Page    Meta `json:"page"`
}

// Meta carries pagination metadata. Number is zero-based.
type Meta struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// IsFirst reports whether this is the first page.
func (m Meta) IsFirst() bool {
	return m.Number <= 0
}

// IsLast reports whether no page follows this one.
func (m Meta) IsLast() bool {
	return m.Number >= m.TotalPages-1
}

// HasNext reports whether a following page exists.
func (m Meta) HasNext() bool {
	return !m.IsLast()
}

// HasPrevious reports whether a preceding page exists.
func (m Meta) HasPrevious() bool {
	return !m.IsFirst()
}
