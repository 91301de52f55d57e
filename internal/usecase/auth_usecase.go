package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/littleforest/storefront/internal/config"
	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
	"github.com/littleforest/storefront/pkg/util"
)

type AuthUseCase struct {
	userRepo  mongodb.AdminUserRepository
	tokenRepo mongodb.AuthTokenRepository
	cfg       config.AuthConfig
}

func NewAuthUseCase(userRepo mongodb.AdminUserRepository, tokenRepo mongodb.AuthTokenRepository, conf *config.Config) *AuthUseCase {
	cfg := conf.Auth
	cfg.AdminEmails = util.ConvertList(cfg.AdminEmails, func(email string) string {
		return strings.ToLower(strings.TrimSpace(email))
	})

	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// Login verifies credentials against the stored bcrypt hash. The email must
// also be on the configured allow-list; a valid password alone is not enough.
func (uc *AuthUseCase) Login(ctx context.Context, req models.LoginRequest, userAgent, ipAddress string) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !uc.isAllowed(email) {
		return nil, models.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive {
		return nil, models.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrUnauthorized
	}

	token, expiresAt, err := uc.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	// Store token hash in database
	authToken := &models.AuthToken{
		UserID:    user.ID,
		TokenHash: uc.hashToken(token),
		ExpiresAt: expiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}
	if err := uc.tokenRepo.Create(ctx, authToken); err != nil {
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		User:      *user,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (*models.AdminUser, error) {
	claims, err := uc.parseJWT(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	// Check if token exists and is not revoked
	authToken, err := uc.tokenRepo.GetByTokenHash(ctx, uc.hashToken(tokenString))
	if err != nil {
		return nil, fmt.Errorf("token not found: %w", err)
	}

	if authToken.IsRevoked {
		return nil, errors.New("token has been revoked")
	}

	if authToken.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if !user.IsActive {
		return nil, errors.New("user account is deactivated")
	}

	// Allow-list changes take effect on the next request, not the next login.
	if !uc.isAllowed(user.Email) {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

func (uc *AuthUseCase) RevokeToken(ctx context.Context, tokenString string) error {
	return uc.tokenRepo.RevokeToken(ctx, uc.hashToken(tokenString))
}

func (uc *AuthUseCase) RevokeUserTokens(ctx context.Context, userID models.ObjectID) error {
	return uc.tokenRepo.RevokeUserTokens(ctx, userID)
}

func (uc *AuthUseCase) CleanupExpiredTokens(ctx context.Context) error {
	return uc.tokenRepo.DeleteExpiredTokens(ctx)
}

func (uc *AuthUseCase) isAllowed(email string) bool {
	return util.SliceIncludes(uc.cfg.AdminEmails, strings.ToLower(strings.TrimSpace(email)))
}

func (uc *AuthUseCase) generateJWT(user *models.AdminUser) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.cfg.TokenTTL)

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (uc *AuthUseCase) parseJWT(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(uc.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	// A validly signed token from another build may carry different claims;
	// treat missing or mistyped ones as invalid, not as a panic.
	userID, okUserID := claims["user_id"].(string)
	email, okEmail := claims["email"].(string)
	exp, okExp := claims["exp"].(float64)
	iat, okIat := claims["iat"].(float64)
	if !okUserID || !okEmail || !okExp || !okIat {
		return nil, errors.New("invalid token claims")
	}

	return &models.JWTClaims{
		UserID: userID,
		Email:  email,
		Exp:    int64(exp),
		Iat:    int64(iat),
	}, nil
}

func (uc *AuthUseCase) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
