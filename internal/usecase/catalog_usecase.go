package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

// CatalogUseCase covers both the public product listing and the back-office
// catalog management.
type CatalogUseCase struct {
	products mongodb.ProductRepository
}

func NewCatalogUseCase(products mongodb.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ListQuery is the public browse surface: optional category and featured
// filters. Out-of-stock products are still listed so visitors can see the
// full range.
type ListQuery struct {
	Category string
	Featured *bool
}

func (uc *CatalogUseCase) List(ctx context.Context, query ListQuery) ([]models.Product, error) {
	return uc.products.List(ctx, mongodb.ListProductsFilter{
		Category: query.Category,
		Featured: query.Featured,
	})
}

func (uc *CatalogUseCase) Get(ctx context.Context, id string) (*models.Product, error) {
	return uc.products.GetByID(ctx, id)
}

func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.products.Categories(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(categories)
	return categories, nil
}

func (uc *CatalogUseCase) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (uc *CatalogUseCase) Update(ctx context.Context, id string, input models.ProductInput) (*models.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	return uc.products.Update(ctx, id, *product)
}

// SyncStock is the inventory integration hook: it writes the pushed quantity
// and derives the availability status from it.
func (uc *CatalogUseCase) SyncStock(ctx context.Context, id string, input models.StockSyncInput) (*models.Product, error) {
	status := models.ProductStatusAvailable
	if input.StockQuantity <= 0 {
		status = models.ProductStatusOutOfStock
	}
	if err := uc.products.SetStock(ctx, id, input.StockQuantity, status); err != nil {
		return nil, err
	}
	return uc.products.GetByID(ctx, id)
}

func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

func productFromInput(input models.ProductInput) (*models.Product, error) {
	price, err := models.ParsePrice(input.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", input.Price, err)
	}

	status := models.ProductStatus(input.Status)
	if status == "" {
		status = models.ProductStatusAvailable
	}
	if input.StockQuantity <= 0 {
		status = models.ProductStatusOutOfStock
	}

	return &models.Product{
		Name:          input.Name,
		Category:      input.Category,
		Price:         price,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Status:        status,
		Featured:      input.Featured,
		StockQuantity: input.StockQuantity,
	}, nil
}
