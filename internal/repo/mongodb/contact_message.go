package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	List(ctx context.Context, status models.ContactMessageStatus, limit, skip int64) (*PaginateWithTotal[models.ContactMessage], error)
	SetStatus(ctx context.Context, id string, status models.ContactMessageStatus) error
	Delete(ctx context.Context, id string) error
}

type contactMessageRepo struct {
	baseRepo[models.ContactMessage]
}

func NewContactMessageRepository(db *DB) ContactMessageRepository {
	return &contactMessageRepo{
		baseRepo: newBaseRepo[models.ContactMessage](db.Database),
	}
}

func (r *contactMessageRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	message.Status = models.ContactMessageStatusNew
	message.CreatedAt = time.Now()
	message.UpdatedAt = message.CreatedAt

	id, err := r.Insert(ctx, *message)
	if err != nil {
		return err
	}
	message.ID = models.ObjectID(id)
	return nil
}

func (r *contactMessageRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	return r.FindByID(ctx, id)
}

func (r *contactMessageRepo) List(ctx context.Context, status models.ContactMessageStatus, limit, skip int64) (*PaginateWithTotal[models.ContactMessage], error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.PaginateWithTotal(ctx, query, limit, skip, opts)
}

func (r *contactMessageRepo) SetStatus(ctx context.Context, id string, status models.ContactMessageStatus) error {
	return r.SetByID(ctx, id, bson.M{
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (r *contactMessageRepo) Delete(ctx context.Context, id string) error {
	return r.DeleteByID(ctx, id)
}
