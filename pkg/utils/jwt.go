package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the payload of both access and refresh tokens; TokenType
// keeps one from being accepted in place of the other.
type TokenClaims struct {
	TokenType TokenType `json:"token_type"`
	UserID    uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string
	Refresh string
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(config JWTConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(config.Secret),
		accessTTL:  config.AccessTTL,
		refreshTTL: config.RefreshTTL,
		now:        time.Now,
	}
}

// IssuePair returns a fresh access/refresh pair for userID.
func (t *TokenIssuer) IssuePair(userID uuid.UUID) (TokenPair, error) {
	access, err := t.sign(userID, AccessToken, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := t.sign(userID, RefreshToken, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (t *TokenIssuer) IssueAccess(userID uuid.UUID) (string, error) {
	return t.sign(userID, AccessToken, t.accessTTL)
}

// Parse verifies raw and checks that it is a token of the wanted type.
// Every failure wraps ErrInvalidToken.
func (t *TokenIssuer) Parse(raw string, want TokenType) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.TokenType != want {
		return nil, fmt.Errorf("%w: token type %q, want %q", ErrInvalidToken, claims.TokenType, want)
	}

	// a malformed user_id already fails decoding above
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}

	return claims, nil
}

func (t *TokenIssuer) sign(userID uuid.UUID, tokenType TokenType, ttl time.Duration) (string, error) {
	now := t.now().UTC()
	claims := TokenClaims{
		TokenType: tokenType,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}
