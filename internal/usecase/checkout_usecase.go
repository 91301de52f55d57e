package usecase

import (
	"context"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/littleforest/storefront/internal/cart"
	"github.com/littleforest/storefront/internal/kafka"
	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/whatsapp"
)

// CheckoutUseCase turns a cart into a WhatsApp hand-off. There is no payment
// step: the composed message is the order, the chat is the fulfilment.
type CheckoutUseCase struct {
	carts     *cart.Manager
	composer  *whatsapp.Composer
	publisher kafka.Publisher
}

func NewCheckoutUseCase(carts *cart.Manager, composer *whatsapp.Composer, publisher kafka.Publisher) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:     carts,
		composer:  composer,
		publisher: publisher,
	}
}

// Checkout composes the order message for the session's cart. The cart is
// cleared and the session dropped once the hand-off is composed: the source
// of truth moves to the chat thread.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sessionID string) (*whatsapp.Order, error) {
	sessionID, store := uc.carts.Acquire(sessionID)

	lines := store.Lines()
	order, ok := uc.composer.ComposeOrder(lines)
	if !ok {
		return nil, models.ErrEmptyCart
	}

	event := models.OrderPlacedEvent{
		SessionID: sessionID,
		Lines:     lines,
		LineCount: len(lines),
		Text:      order.Text,
		PlacedAt:  time.Now(),
	}
	// Fire and forget: a broker hiccup must not block the hand-off.
	if err := uc.publisher.PublishOrderPlaced(ctx, event); err != nil {
		log.Errorw(ctx, "failed to publish order event",
			"error", err,
			"session_id", sessionID,
		)
	}

	store.Clear()
	uc.carts.Drop(sessionID)

	return order, nil
}
