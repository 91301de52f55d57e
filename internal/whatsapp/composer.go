// Package whatsapp turns a cart snapshot into the order message a visitor
// hands off to the nursery's WhatsApp line.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/pkg/tmplx"
)

const DefaultBaseURL = "https://wa.me"

// orderTemplate is the greeting/sign-off contract around the order rows.
// The wording is load-bearing: the shop staff recognize orders by it.
var orderTemplate = tmplx.MustParse("order", `Hi

I would like to place an order for the following seedlings:

{{.Rows}}

Please confirm availability and let me know`)

// Order is a composed checkout hand-off: the plain-text summary and the
// ready-to-open deep link carrying it.
type Order struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Composer binds the configured recipient so callers only supply lines.
type Composer struct {
	recipient string
	baseURL   string
}

func NewComposer(recipient, baseURL string) *Composer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Composer{recipient: recipient, baseURL: baseURL}
}

func (c *Composer) ComposeOrder(lines []models.CartLine) (*Order, bool) {
	return Compose(lines, c.recipient, c.baseURL)
}

// Compose builds the order message for the given cart lines. An empty cart
// yields (nil, false): not an error, just nothing to send. Callers must
// check before navigating.
func Compose(lines []models.CartLine, recipient, baseURL string) (*Order, bool) {
	if len(lines) == 0 {
		return nil, false
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, fmt.Sprintf("- %d x %s (%s each)",
			line.Quantity, line.Name, line.UnitPrice.Format()))
	}

	buf, err := orderTemplate.Render(map[string]any{
		"Rows": strings.Join(rows, "\n"),
	})
	if err != nil {
		// the template is static and the data a plain string; a render
		// failure here is a programming error
		panic(err)
	}

	text := buf.String()
	return &Order{
		Text: text,
		URL:  fmt.Sprintf("%s/%s?text=%s", baseURL, recipient, encodeComponent(text)),
	}, true
}

// encodeComponent percent-encodes the way the browser's encodeURIComponent
// does for the characters that matter here: spaces become %20, never +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
