package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/littleforest/storefront/internal/config"
	"github.com/littleforest/storefront/internal/models"
)

type fakeAdminUserRepo struct {
	users map[string]*models.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[string]*models.AdminUser)}
}

func (r *fakeAdminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	user.ID = models.NewObjectID()
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeAdminUserRepo) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeAdminUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeAdminUserRepo) Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeAuthTokenRepo struct {
	tokens map[string]*models.AuthToken
}

func newFakeAuthTokenRepo() *fakeAuthTokenRepo {
	return &fakeAuthTokenRepo{tokens: make(map[string]*models.AuthToken)}
}

func (r *fakeAuthTokenRepo) Create(ctx context.Context, token *models.AuthToken) error {
	token.ID = models.NewObjectID()
	token.CreatedAt = time.Now()
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeAuthTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.AuthToken, error) {
	if token, ok := r.tokens[tokenHash]; ok {
		return token, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeAuthTokenRepo) RevokeToken(ctx context.Context, tokenHash string) error {
	token, ok := r.tokens[tokenHash]
	if !ok {
		return models.ErrNotFound
	}
	token.IsRevoked = true
	return nil
}

func (r *fakeAuthTokenRepo) RevokeUserTokens(ctx context.Context, userID models.ObjectID) error {
	for _, token := range r.tokens {
		if token.UserID == userID {
			token.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeAuthTokenRepo) DeleteExpiredTokens(ctx context.Context) error {
	for hash, token := range r.tokens {
		if token.IsRevoked || token.ExpiresAt.Before(time.Now()) {
			delete(r.tokens, hash)
		}
	}
	return nil
}

func newAuthFixture(t *testing.T, emails ...string) (*AuthUseCase, *fakeAdminUserRepo, *fakeAuthTokenRepo) {
	t.Helper()

	users := newFakeAdminUserRepo()
	tokens := newFakeAuthTokenRepo()
	conf := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			AdminEmails: emails,
			TokenTTL:    time.Hour,
		},
	}
	return NewAuthUseCase(users, tokens, conf), users, tokens
}

func seedAdmin(t *testing.T, users *fakeAdminUserRepo, email, password string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid credentials issue a working token", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")

		resp, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "correct horse",
		}, "test-agent", "127.0.0.1")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		validated, err := uc.ValidateToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "owner@littleforest.co.ke", validated.Email)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")

		_, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "wrong horse",
		}, "", "")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("valid password but not on allow-list is rejected", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		seedAdmin(t, users, "intruder@example.com", "correct horse")

		_, err := uc.Login(ctx, models.LoginRequest{
			Email:    "intruder@example.com",
			Password: "correct horse",
		}, "", "")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown account is rejected the same way", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t, "owner@littleforest.co.ke")

		_, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "anything",
		}, "", "")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("email matching is case insensitive", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "Owner@LittleForest.co.ke")
		seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")

		_, err := uc.Login(ctx, models.LoginRequest{
			Email:    "OWNER@littleforest.co.ke",
			Password: "correct horse",
		}, "", "")
		assert.NoError(t, err)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("revoked token stops working", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")

		resp, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "correct horse",
		}, "", "")
		require.NoError(t, err)

		require.NoError(t, uc.RevokeToken(ctx, resp.Token))

		_, err = uc.ValidateToken(ctx, resp.Token)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		_, err := uc.ValidateToken(ctx, "not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("validly signed token with missing claims is rejected", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t, "owner@littleforest.co.ke")

		// signed with the right secret but without user_id/email claims
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
			"iat": time.Now().Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = uc.ValidateToken(ctx, signed)
		assert.Error(t, err)
	})

	t.Run("mistyped claims are rejected", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t, "owner@littleforest.co.ke")

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 12345,
			"email":   "owner@littleforest.co.ke",
			"exp":     time.Now().Add(time.Hour).Unix(),
			"iat":     time.Now().Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = uc.ValidateToken(ctx, signed)
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")
		resp, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "correct horse",
		}, "", "")
		require.NoError(t, err)

		other, _, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		other.cfg.JWTSecret = "different-secret"
		_, err = other.ValidateToken(ctx, resp.Token)
		assert.Error(t, err)
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		uc, users, _ := newAuthFixture(t, "owner@littleforest.co.ke")
		user := seedAdmin(t, users, "owner@littleforest.co.ke", "correct horse")

		resp, err := uc.Login(ctx, models.LoginRequest{
			Email:    "owner@littleforest.co.ke",
			Password: "correct horse",
		}, "", "")
		require.NoError(t, err)

		user.IsActive = false
		_, err = uc.ValidateToken(ctx, resp.Token)
		assert.Error(t, err)
	})
}
