package paging

// PagedResponse is the envelope returned by paginated list endpoints.
// TotalRecords counts every match before pagination, not the page itself.
type PagedResponse[T any] struct {
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
	Data         []T `json:"data"`
}

func NewPagedResponse[T any](data []T, pageNumber, pageSize int, totalRecords int64) PagedResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalRecords + int64(pageSize) - 1) / int64(pageSize))
	}
	if data == nil {
		data = []T{}
	}
	return PagedResponse[T]{
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalRecords: int(totalRecords),
		Data:         data,
	}
}
