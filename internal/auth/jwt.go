package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
)

const DefaultTokenTTL = 30 * time.Minute

// clockSkewLeeway is how far a verifier's clock may lag the issuer's before
// an otherwise valid token is rejected.
const clockSkewLeeway = 30 * time.Second

// TokenManager issues and verifies stateless HS256 bearer tokens. The signing
// secret is set once at construction and never mutated afterwards.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

func (m *TokenManager) Issue(accountID uint) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": accountID,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the account ID the token was
// issued for. Every failure collapses to the same AuthenticationError so the
// caller cannot tell which check rejected the token.
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithLeeway(clockSkewLeeway), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return 0, apperrors.Authentication("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return 0, apperrors.Authentication("invalid or expired token")
	}

	accountIDFloat, ok := claims["user_id"].(float64)

	if !ok {
		return 0, apperrors.Authentication("invalid or expired token")
	}

	return uint(accountIDFloat), nil
}
