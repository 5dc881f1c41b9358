package httpx

import (
	"strconv"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePage — читает page из query; нечисловое/неположительное → 1.
// Верхней границы нет: прижатие к totalPages делает проектор.
func ParsePage(c *gin.Context) int {
	v, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// ParseSort — читает sort/order из query.
// Пустой sort → nil (исходный порядок); order по умолчанию desc.
func ParseSort(c *gin.Context) *domain.SortSpec {
	field := c.Query("sort")
	if field == "" {
		return nil
	}
	dir := domain.SortDesc
	if c.DefaultQuery("order", "desc") == "asc" {
		dir = domain.SortAsc
	}
	return &domain.SortSpec{Field: field, Direction: dir}
}
