//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeProduct — мини-генератор валидной записи каталога.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	id := "prod-" + UniqSuffix()
	rating := 4.2

	var price, discount domain.Money
	_ = json.Unmarshal([]byte(`"99.90"`), &price)
	_ = json.Unmarshal([]byte(`"79.90"`), &discount)

	p := domain.Product{
		ID:            id,
		Title:         "Widget " + UniqSuffix(),
		Brand:         "brand",
		Category:      "widgets",
		Price:         price,
		DiscountPrice: discount,
		Rating:        &rating,
		Thumbnail:     "https://img.example/" + id + ".png",
	}

	for _, fn := range opts {
		fn(&p)
	}
	return p
}

// WithTitle — переопределить название в тесте.
func WithTitle(title string) func(*domain.Product) {
	return func(p *domain.Product) { p.Title = title }
}

// MakeCartLine — позиция корзины со свежим продуктом.
func MakeCartLine(qty int) domain.CartLine {
	p := MakeProduct()
	return domain.CartLine{
		ID:        "line-" + UniqSuffix(),
		ProductID: p.ID,
		Quantity:  qty,
		Product:   &p,
	}
}

// MakeCacheEntry — запись кэша с n продуктами.
func MakeCacheEntry(n int) domain.CacheEntry {
	items := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, MakeProduct(WithTitle(fmt.Sprintf("Widget %02d", i))))
	}
	return domain.CacheEntry{Items: items}
}
