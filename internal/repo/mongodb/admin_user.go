package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error)
}

type adminUserRepo struct {
	baseRepo[models.AdminUser]
}

func NewAdminUserRepository(db *DB) AdminUserRepository {
	return &adminUserRepo{
		baseRepo: newBaseRepo[models.AdminUser](db.Database),
	}
}

func (r *adminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	id, err := r.Insert(ctx, *user)
	if err != nil {
		return err
	}
	user.ID = models.ObjectID(id)
	return nil
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	return r.FindByID(ctx, id)
}

func (r *adminUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}
