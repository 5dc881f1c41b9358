package domain

// SearchStatus — фаза цикла поиска: idle → loading → {success | failed} → idle.
type SearchStatus string

const (
	SearchIdle    SearchStatus = "idle"
	SearchLoading SearchStatus = "loading"
)

// SearchView — публикуемое состояние поиска: текущая страница результатов,
// исходный (ненормализованный) текст запроса, пагинация и человекочитаемая
// ошибка. Именно это состояние видит транспорт.
type SearchView struct {
	Results    []Product    `json:"results"`
	Query      string       `json:"query"`
	Status     SearchStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
	Pagination Pagination   `json:"pagination"`
}

// EmptySearchView — начальное состояние.
func EmptySearchView() SearchView {
	return SearchView{
		Results:    []Product{},
		Status:     SearchIdle,
		Pagination: DefaultPagination(),
	}
}
