package models

// CartEntry is a food item snapshot plus a quantity, held in client-local
// storage only. Identity is the item ID; a cart holds at most one entry per ID.
type CartEntry struct {
	Item     FoodItem `json:"item"`
	Quantity int      `json:"quantity"` // always >= 1
}

// Subtotal is the entry's contribution to the cart total.
func (e CartEntry) Subtotal() float64 {
	return e.Item.Price * float64(e.Quantity)
}

// Card holds the mock payment form fields. Validation is presence-only; this
// is not a real payment instrument.
type Card struct {
	Number string `json:"cardNumber" validate:"required"`
	Expiry string `json:"cardExpiry" validate:"required"`
	CVV    string `json:"cardCVV" validate:"required"`
}
