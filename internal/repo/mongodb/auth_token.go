package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/littleforest/storefront/internal/models"
)

type AuthTokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.AuthToken, error)
	RevokeToken(ctx context.Context, tokenHash string) error
	RevokeUserTokens(ctx context.Context, userID models.ObjectID) error
	DeleteExpiredTokens(ctx context.Context) error
}

type authTokenRepo struct {
	baseRepo[models.AuthToken]
}

func NewAuthTokenRepository(db *DB) AuthTokenRepository {
	return &authTokenRepo{
		baseRepo: newBaseRepo[models.AuthToken](db.Database),
	}
}

func (r *authTokenRepo) Create(ctx context.Context, token *models.AuthToken) error {
	token.CreatedAt = time.Now()

	id, err := r.Insert(ctx, *token)
	if err != nil {
		return err
	}
	token.ID = models.ObjectID(id)
	return nil
}

func (r *authTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.AuthToken, error) {
	return r.FindOne(ctx, bson.M{"token_hash": tokenHash})
}

func (r *authTokenRepo) RevokeToken(ctx context.Context, tokenHash string) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"token_hash": tokenHash},
		bson.M{"$set": bson.M{"is_revoked": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *authTokenRepo) RevokeUserTokens(ctx context.Context, userID models.ObjectID) error {
	return r.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_revoked": false},
		bson.M{"$set": bson.M{"is_revoked": true}},
	)
}

func (r *authTokenRepo) DeleteExpiredTokens(ctx context.Context) error {
	_, err := r.DeleteMany(ctx, bson.M{
		"$or": []bson.M{
			{"expires_at": bson.M{"$lt": time.Now()}},
			{"is_revoked": true},
		},
	})
	return err
}
