package projector

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// Projector — чистое проецирование: полный разрешённый список →
// отсортированная страница фиксированного размера. Исходный слайс
// не мутируется; сортировка стабильна.
type Projector struct {
	collator *collate.Collator
}

// NewProjector — конструктор; компаратор строк locale-aware.
func NewProjector() *Projector {
	return &Projector{collator: collate.New(language.Und)}
}

// Page — срез выдачи вместе с производным состоянием пагинации.
type Page struct {
	Items      []domain.Product
	Pagination domain.Pagination
}

// Project — применяет сортировку и пагинацию. spec == nil сохраняет
// порядок ранжирования; page вне диапазона зажимается в [1, totalPages].
func (p *Projector) Project(items []domain.Product, page int, spec *domain.SortSpec) Page {
	working := append([]domain.Product(nil), items...)
	if spec != nil {
		p.sortItems(working, spec)
	}

	total := len(working)
	totalPages := (total + domain.PageSize - 1) / domain.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * domain.PageSize
	end := start + domain.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items: working[start:end],
		Pagination: domain.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalResults: total,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}
}

// sortItems — стабильная сортировка по именованному полю. Записи без
// значения поля идут в хвост при любом направлении; desc инвертирует
// только сравнение присутствующих значений.
func (p *Projector) sortItems(items []domain.Product, spec *domain.SortSpec) {
	desc := spec.Direction == domain.SortDesc
	sort.SliceStable(items, func(i, j int) bool {
		a, aok := items[i].FieldValue(spec.Field)
		b, bok := items[j].FieldValue(spec.Field)
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		}

		cmp := p.compare(a, b)
		if desc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func (p *Projector) compare(a, b domain.SortValue) int {
	if a.IsNum && b.IsNum {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return p.collator.CompareString(a.Str, b.Str)
}
