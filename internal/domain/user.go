package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by the bearer token. TenantID is nil only
// for platform administrators.
type Claims struct {
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email"`
	RoleID    int    `json:"role_id"`
	TenantID  *int64 `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}
