package pageable

// Legacy is the Spring Data page envelope the gateway emitted before
// pagination metadata moved under "page".
type Legacy[T any] struct {
	Content          T        `json:"content"`
	Pageable         Pageable `json:"pageable"`
	TotalPages       int      `json:"totalPages"`
	TotalElements    int64    `json:"totalElements"`
	Last             bool     `json:"last"`
	Size             int      `json:"size"`
	Number           int      `json:"number"`
	Sort             SortInfo `json:"sort"`
	NumberOfElements int      `json:"numberOfElements"`
	First            bool     `json:"first"`
	Empty            bool     `json:"empty"`
}

// Pageable echoes the request that produced a Legacy page.
type Pageable struct {
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	Sort       SortInfo `json:"sort"`
	Offset     int64    `json:"offset"`
	Paged      bool     `json:"paged"`
	Unpaged    bool     `json:"unpaged"`
}

// SortInfo describes whether a Legacy page was sorted.
type SortInfo struct {
	Empty    bool `json:"empty"`
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
}

// Page converts the legacy envelope into the current one.
func (l Legacy[T]) Page() Page[T] {
	return Page[T]{
		Content: l.Content,
		Page: Meta{
			Number:        l.Number,
			Size:          l.Size,
			TotalElements: l.TotalElements,
			TotalPages:    l.TotalPages,
		},
	}
}
