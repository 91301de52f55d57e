package models

// CartLine is one entry in a visitor's cart. Name and price are snapshots
// taken at add time so a later catalog edit does not rewrite an open cart.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Price  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest carries no validation on purpose: any quantity,
// zero and negative included, flows through to the store and is clamped
// there rather than rejected.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	LineCount int        `json:"line_count"`
}
