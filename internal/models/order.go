package models

import "time"

// OrderPlacedEvent is published when a visitor hands an order off to
// WhatsApp. Delivery of the chat message itself is the visitor's browser;
// the event is the back office's only record of the checkout.
type OrderPlacedEvent struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	LineCount int        `json:"line_count"`
	Text      string     `json:"text"`
	PlacedAt  time.Time  `json:"placed_at"`
}
