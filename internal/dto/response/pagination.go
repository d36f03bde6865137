package response

type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewPaginatedResponse[T any](results []T, total int64, next, previous *string) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}

	return &PaginatedResponse[T]{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}
