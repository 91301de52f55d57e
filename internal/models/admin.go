package models

import (
	"time"
)

// AdminUser is a back-office account. Authorization is enforced server side:
// a bcrypt hash in the datastore plus a configured email allow-list.
type AdminUser struct {
	ID           ObjectID  `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email,omitempty" json:"email"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at,omitempty" json:"updated_at"`
}

func (AdminUser) CollectionName() string {
	return "admin_users"
}

func (u AdminUser) GetObjectID() ObjectID {
	return u.ID
}

func (u AdminUser) GetUpdates() any {
	u.ID = ""
	u.CreatedAt = time.Time{}
	u.UpdatedAt = time.Now()
	return u
}

// AuthToken records issued admin tokens for revocation checks.
type AuthToken struct {
	ID        ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    ObjectID  `bson:"user_id,omitempty" json:"user_id"`
	TokenHash string    `bson:"token_hash,omitempty" json:"-"`
	ExpiresAt time.Time `bson:"expires_at,omitempty" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at"`
	IsRevoked bool      `bson:"is_revoked" json:"is_revoked"`
	UserAgent string    `bson:"user_agent,omitempty" json:"user_agent"`
	IPAddress string    `bson:"ip_address,omitempty" json:"ip_address"`
}

func (AuthToken) CollectionName() string {
	return "auth_tokens"
}

func (t AuthToken) GetObjectID() ObjectID {
	return t.ID
}

func (t AuthToken) GetUpdates() any {
	t.ID = ""
	t.CreatedAt = time.Time{}
	return t
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	User      AdminUser `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Exp    int64  `json:"exp"`
	Iat    int64  `json:"iat"`
}
