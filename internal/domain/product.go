package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Money — денежное значение из каталога. Приходит как число или
// "грязная" строка ("$12.99", "12,99"); некорректное/отсутствующее
// значение считается absent (present=false).
type Money struct {
	value   float64
	present bool
}

// NewMoney — конструктор присутствующего значения.
func NewMoney(v float64) Money { return Money{value: v, present: true} }

// ParseMoney — приводит произвольное значение к Money.
// Из строк вырезаются все символы, кроме цифр и точки.
func ParseMoney(raw any) Money {
	switch v := raw.(type) {
	case nil:
		return Money{}
	case float64:
		return NewMoney(v)
	case int:
		return NewMoney(float64(v))
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, v)
		num, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Money{}
		}
		return NewMoney(num)
	default:
		return Money{}
	}
}

// Present — true, если значение удалось разобрать.
func (m Money) Present() bool { return m.present }

// Value — значение и флаг присутствия (для сравнений).
func (m Money) Value() (float64, bool) { return m.value, m.present }

// Or — значение либо дефолт (для денежных сумм absent = 0).
func (m Money) Or(def float64) float64 {
	if !m.present {
		return def
	}
	return m.value
}

// UnmarshalJSON — принимает число, строку или null.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = ParseMoney(raw)
	return nil
}

// MarshalJSON — present → число, absent → null.
func (m Money) MarshalJSON() ([]byte, error) {
	if !m.present {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// Product — запись каталога. Для этой подсистемы важны идентификатор,
// сортируемые поля и цены; остальное прозрачно проксируется клиенту.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         Money    `json:"price"`
	DiscountPrice Money    `json:"discountPrice"`
	Rating        *float64 `json:"rating,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
}

// UnitPrice — цена за единицу: скидочная, иначе базовая, иначе 0.
func (p *Product) UnitPrice() float64 {
	if p.DiscountPrice.Present() {
		return p.DiscountPrice.Or(0)
	}
	return p.Price.Or(0)
}

// OriginalPrice — базовая цена; при её отсутствии — UnitPrice.
func (p *Product) OriginalPrice() float64 {
	if p.Price.Present() {
		return p.Price.Or(0)
	}
	return p.UnitPrice()
}

// SortValue — значение именованного поля для сортировки.
// ok=false означает absent: такое значение всегда сортируется последним.
type SortValue struct {
	Num   float64
	Str   string
	IsNum bool
}

// FieldValue — достаёт сортируемое поле по имени.
func (p *Product) FieldValue(field string) (SortValue, bool) {
	switch field {
	case "price":
		if v, ok := p.Price.Value(); ok {
			return SortValue{Num: v, IsNum: true}, true
		}
		return SortValue{}, false
	case "discountPrice":
		if v, ok := p.DiscountPrice.Value(); ok {
			return SortValue{Num: v, IsNum: true}, true
		}
		return SortValue{}, false
	case "rating":
		if p.Rating != nil {
			return SortValue{Num: *p.Rating, IsNum: true}, true
		}
		return SortValue{}, false
	case "title":
		if p.Title != "" {
			return SortValue{Str: p.Title}, true
		}
		return SortValue{}, false
	case "brand":
		if p.Brand != "" {
			return SortValue{Str: p.Brand}, true
		}
		return SortValue{}, false
	case "category":
		if p.Category != "" {
			return SortValue{Str: p.Category}, true
		}
		return SortValue{}, false
	default:
		return SortValue{}, false
	}
}

// SortDirection — направление сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec — запрошенная сортировка; nil означает «сохранить исходный порядок».
type SortSpec struct {
	Field     string
	Direction SortDirection
}

// PageSize — фиксированный размер страницы выдачи.
const PageSize = 12

// Pagination — состояние пагинации, полностью выводимое из
// (totalResults, PageSize, requestedPage).
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalResults int  `json:"totalResults"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// DefaultPagination — безопасное пустое состояние.
func DefaultPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1}
}

// CacheEntry — закэшированный результат разрешения: полный (несортированный)
// список записей и время создания. После записи не изменяется,
// только заменяется целиком.
type CacheEntry struct {
	Items     []Product `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone — копия записи; кэш отдаёт и принимает только копии.
func (e *CacheEntry) Clone() CacheEntry {
	out := CacheEntry{CreatedAt: e.CreatedAt}
	if e.Items != nil {
		out.Items = append([]Product(nil), e.Items...)
	}
	return out
}

// NormalizeQuery — канонизирует поисковый запрос в ключ кэша:
// обрезка пробелов + нижний регистр. Чистая и тотальная функция.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
