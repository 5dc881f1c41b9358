package domain

// CartLine — одна позиция корзины: ссылка на продукт и количество.
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// Product — развёрнутая запись каталога, если корзинный сервис её отдаёт.
	Product *Product `json:"product,omitempty"`
}

// CartTotals — агрегаты по корзине.
// Absent-цены при суммировании считаются нулём.
type CartTotals struct {
	TotalItems    int     `json:"totalItems"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalOriginal float64 `json:"totalOriginal"`
	TotalSavings  float64 `json:"totalSavings"`
}

// ComputeTotals — суммы по позициям: к оплате, без скидок и экономия.
func ComputeTotals(lines []CartLine) CartTotals {
	var t CartTotals
	for i := range lines {
		line := &lines[i]
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}
		t.TotalItems += qty
		if line.Product == nil {
			continue
		}
		t.TotalAmount += line.Product.UnitPrice() * float64(qty)
		t.TotalOriginal += line.Product.OriginalPrice() * float64(qty)
	}
	t.TotalSavings = t.TotalOriginal - t.TotalAmount
	return t
}

// CartProductIDs — множество продуктов, уже лежащих в корзине.
// Используется для фильтрации рекомендаций.
func CartProductIDs(lines []CartLine) map[string]struct{} {
	ids := make(map[string]struct{}, len(lines))
	for i := range lines {
		if lines[i].ProductID != "" {
			ids[lines[i].ProductID] = struct{}{}
		}
	}
	return ids
}

// LineRecommendations — состояние рекомендаций для одной позиции корзины.
type LineRecommendations struct {
	Items              []Product `json:"items"`
	Loading            bool      `json:"loading"`
	LastFetchAttempted bool      `json:"lastFetchAttempted"`
}
