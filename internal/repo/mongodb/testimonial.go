package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	List(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error)
	Update(ctx context.Context, id string, testimonial models.Testimonial) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, entities []models.Testimonial, opts ...*options.InsertManyOptions) ([]string, error)
}

type testimonialRepo struct {
	baseRepo[models.Testimonial]
}

func NewTestimonialRepository(db *DB) TestimonialRepository {
	return &testimonialRepo{
		baseRepo: newBaseRepo[models.Testimonial](db.Database),
	}
}

func (r *testimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = testimonial.CreatedAt

	id, err := r.Insert(ctx, *testimonial)
	if err != nil {
		return err
	}
	testimonial.ID = models.ObjectID(id)
	return nil
}

func (r *testimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	return r.FindByID(ctx, id)
}

func (r *testimonialRepo) List(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error) {
	query := bson.M{}
	if publishedOnly {
		query["status"] = models.ContentStatusPublished
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.Find(ctx, query, opts)
}

func (r *testimonialRepo) Update(ctx context.Context, id string, testimonial models.Testimonial) (*models.Testimonial, error) {
	docID, err := parseDocID(id)
	if err != nil {
		return nil, err
	}
	return r.UpdateOne(ctx, bson.M{"_id": docID}, testimonial)
}

func (r *testimonialRepo) Delete(ctx context.Context, id string) error {
	return r.DeleteByID(ctx, id)
}
