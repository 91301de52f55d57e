package models

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultCurrency = "KSH"

// Price is a normalized monetary value. Legacy catalog rows stored prices as
// pre-formatted strings ("KSH 450"); those are parsed once at the catalog
// boundary so nothing downstream has to branch on the price shape.
type Price struct {
	Amount   int64  `bson:"amount" json:"amount"`
	Currency string `bson:"currency" json:"currency"`
}

// Format renders the price the way it appears in the storefront and in
// outgoing order messages, e.g. "KSH 450".
func (p Price) Format() string {
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%s %d", currency, p.Amount)
}

func (p Price) IsZero() bool {
	return p.Amount == 0 && p.Currency == ""
}

// ParsePrice accepts either a bare amount ("450") or a formatted legacy
// value ("KSH 450") and returns the normalized price.
func ParsePrice(s string) (Price, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		amount, err := parseAmount(fields[0])
		if err != nil {
			return Price{}, err
		}
		return Price{Amount: amount, Currency: DefaultCurrency}, nil
	case 2:
		amount, err := parseAmount(fields[1])
		if err != nil {
			return Price{}, err
		}
		return Price{Amount: amount, Currency: strings.ToUpper(fields[0])}, nil
	default:
		return Price{}, fmt.Errorf("invalid price %q", s)
	}
}

func parseAmount(s string) (int64, error) {
	// tolerate decimal input, prices are whole shillings
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price amount %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative price amount %q", s)
	}
	return int64(f), nil
}
