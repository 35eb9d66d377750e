package userjwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	userdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/user/domain"
)

// arenaClaims represents the JWT claims structure. The subject carries the
// username.
type arenaClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// provider implements the Provider interface.
type provider struct {
	secret []byte
}

// NewProvider creates a new JWT provider.
func NewProvider(secret string) Provider {
	return &provider{
		secret: []byte(secret),
	}
}

// GenerateToken creates a signed HS256 token from the given claims.
func (p *provider) GenerateToken(domainClaims *userdomain.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &arenaClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   domainClaims.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(domainClaims.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a token and returns the domain claims if valid.
func (p *provider) ValidateToken(tokenString string) (*userdomain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &arenaClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return p.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*arenaClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	domainClaims := &userdomain.Claims{
		Username: claims.Subject,
		Role:     userdomain.Role(claims.Role),
	}
	if claims.ExpiresAt != nil {
		domainClaims.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		domainClaims.IssuedAt = claims.IssuedAt.Time
	}

	return domainClaims, nil
}
