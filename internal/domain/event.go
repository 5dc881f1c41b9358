package domain

// CartUpdateEvent — событие изменения состава корзины (топик cart-updates).
// Несёт полный актуальный список позиций, а не дельту.
type CartUpdateEvent struct {
	CartID string     `json:"cart_id"`
	Lines  []CartLine `json:"lines"`
}
