package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
)

// ListProductsFilter narrows the public catalog listing. Zero values mean
// "no constraint".
type ListProductsFilter struct {
	Category string
	Featured *bool
	Status   models.ProductStatus
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, product models.Product) (*models.Product, error)
	SetStock(ctx context.Context, id string, quantity int, status models.ProductStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, entities []models.Product, opts ...*options.InsertManyOptions) ([]string, error)
}

type productRepo struct {
	baseRepo[models.Product]
}

func NewProductRepository(db *DB) ProductRepository {
	return &productRepo{
		baseRepo: newBaseRepo[models.Product](db.Database),
	}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	id, err := r.Insert(ctx, *product)
	if err != nil {
		return err
	}
	product.ID = models.ObjectID(id)
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *productRepo) List(ctx context.Context, filter ListProductsFilter) ([]models.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		if *filter.Featured {
			query["featured"] = true
		} else {
			query["featured"] = bson.M{"$ne": true}
		}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return r.Find(ctx, query, opts)
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	return r.Distinct(ctx, "category", bson.M{})
}

func (r *productRepo) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	docID, err := parseDocID(id)
	if err != nil {
		return nil, err
	}
	return r.UpdateOne(ctx, bson.M{"_id": docID}, product)
}

// SetStock writes quantity and status explicitly so a sync down to zero
// is not dropped by omitempty.
func (r *productRepo) SetStock(ctx context.Context, id string, quantity int, status models.ProductStatus) error {
	return r.SetByID(ctx, id, bson.M{
		"stock_quantity": quantity,
		"status":         status,
		"updated_at":     time.Now(),
	})
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.DeleteByID(ctx, id)
}
