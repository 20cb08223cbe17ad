package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Identity is the authenticated caller as carried in JWT claims. Token
// issuance belongs to the auth system; this package only verifies tokens
// and extracts the identity the portal core needs.
type Identity struct {
	StaffID string
	Name    string
	Role    staff.Role
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAccessToken(staffID string, name string, role staff.Role) (token string, expiresAt int64, err error)
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(staffID string, name string, role staff.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"staff_id": staffID,
		"name":     name,
		"role":     string(role),
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

// IdentityFromContext extracts the caller identity from verified JWT claims.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return Identity{}, fmt.Errorf("staff_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, fmt.Errorf("role claim is missing or invalid")
	}

	name, _ := claims["name"].(string)

	return Identity{
		StaffID: staffID,
		Name:    name,
		Role:    staff.Role(roleStr),
	}, nil
}
