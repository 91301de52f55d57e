package usecase

import (
	"context"
	"fmt"

	"github.com/littleforest/storefront/internal/cart"
	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

// CartUseCase binds the session manager to the catalog: adding to a cart
// snapshots the product as it is right now.
type CartUseCase struct {
	carts    *cart.Manager
	products mongodb.ProductRepository
}

func NewCartUseCase(carts *cart.Manager, products mongodb.ProductRepository) *CartUseCase {
	return &CartUseCase{
		carts:    carts,
		products: products,
	}
}

func (uc *CartUseCase) Get(ctx context.Context, sessionID string) *models.CartResponse {
	sessionID, store := uc.carts.Acquire(sessionID)
	return cartResponse(sessionID, store)
}

// AddItem looks the product up and merges it into the session's cart. An
// unknown product id surfaces as models.ErrNotFound.
func (uc *CartUseCase) AddItem(ctx context.Context, sessionID string, req models.AddCartItemRequest) (*models.CartResponse, error) {
	product, err := uc.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	sessionID, store := uc.carts.Acquire(sessionID)
	store.AddItem(*product, req.Quantity)
	return cartResponse(sessionID, store), nil
}

func (uc *CartUseCase) UpdateItem(ctx context.Context, sessionID, productID string, quantity int) *models.CartResponse {
	sessionID, store := uc.carts.Acquire(sessionID)
	store.UpdateQuantity(productID, quantity)
	return cartResponse(sessionID, store)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID string) *models.CartResponse {
	sessionID, store := uc.carts.Acquire(sessionID)
	store.RemoveItem(productID)
	return cartResponse(sessionID, store)
}

func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) *models.CartResponse {
	sessionID, store := uc.carts.Acquire(sessionID)
	store.Clear()
	return cartResponse(sessionID, store)
}

func cartResponse(sessionID string, store *cart.Store) *models.CartResponse {
	return &models.CartResponse{
		SessionID: sessionID,
		Lines:     store.Lines(),
		LineCount: store.LineCount(),
	}
}
