package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
)

type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, id string) (*models.Content, error)
	GetByType(ctx context.Context, contentType string) (*models.Content, error)
	List(ctx context.Context, publishedOnly bool) ([]models.Content, error)
	Update(ctx context.Context, id string, content models.Content) (*models.Content, error)
	UpsertByType(ctx context.Context, content models.Content) (*models.Content, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, entities []models.Content, opts ...*options.InsertManyOptions) ([]string, error)
}

type contentRepo struct {
	baseRepo[models.Content]
}

func NewContentRepository(db *DB) ContentRepository {
	return &contentRepo{
		baseRepo: newBaseRepo[models.Content](db.Database),
	}
}

func (r *contentRepo) Create(ctx context.Context, content *models.Content) error {
	content.CreatedAt = time.Now()
	content.UpdatedAt = content.CreatedAt

	id, err := r.Insert(ctx, *content)
	if err != nil {
		return err
	}
	content.ID = models.ObjectID(id)
	return nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*models.Content, error) {
	return r.FindByID(ctx, id)
}

func (r *contentRepo) GetByType(ctx context.Context, contentType string) (*models.Content, error) {
	return r.FindOne(ctx, bson.M{
		"type":   contentType,
		"status": models.ContentStatusPublished,
	})
}

func (r *contentRepo) List(ctx context.Context, publishedOnly bool) ([]models.Content, error) {
	query := bson.M{}
	if publishedOnly {
		query["status"] = models.ContentStatusPublished
	}
	opts := options.Find().SetSort(bson.D{{Key: "type", Value: 1}})
	return r.Find(ctx, query, opts)
}

func (r *contentRepo) Update(ctx context.Context, id string, content models.Content) (*models.Content, error) {
	docID, err := parseDocID(id)
	if err != nil {
		return nil, err
	}
	return r.UpdateOne(ctx, bson.M{"_id": docID}, content)
}

// UpsertByType lets the back office save a block without caring whether the
// type exists yet.
func (r *contentRepo) UpsertByType(ctx context.Context, content models.Content) (*models.Content, error) {
	updates := content.GetUpdates().(models.Content)
	return r.UpsertOne(ctx, bson.M{"type": content.Type}, updates, UpsertOpts[models.Content]{
		SetOnInsert: bson.M{"created_at": time.Now()},
	})
}

func (r *contentRepo) Delete(ctx context.Context, id string) error {
	return r.DeleteByID(ctx, id)
}
