package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer(JWTConfig{
		Secret:     "secret",
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newTestIssuer()
	userID := uuid.New()

	pair, err := issuer.IssuePair(userID)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := issuer.Parse(pair.Access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	claims, err = issuer.Parse(pair.Refresh, RefreshToken)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenIssuer_RejectsWrongType(t *testing.T) {
	issuer := newTestIssuer()
	pair, err := issuer.IssuePair(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Parse(pair.Refresh, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse(pair.Access, RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.IssueAccess(uuid.New())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(token, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	other := NewTokenIssuer(JWTConfig{Secret: "other", AccessTTL: time.Minute, RefreshTTL: time.Hour})
	token, err := other.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = newTestIssuer().Parse(token, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	claims := TokenClaims{
		TokenType: AccessToken,
		UserID:    uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestIssuer().Parse(token, AccessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "a.b.c"} {
		_, err := newTestIssuer().Parse(raw, AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestTokenIssuer_RejectsBadUserClaim(t *testing.T) {
	for _, userID := range []any{"not-a-uuid", "", 42, nil} {
		claims := jwt.MapClaims{
			"token_type": string(AccessToken),
			"exp":        time.Now().Add(time.Minute).Unix(),
		}
		if userID != nil {
			claims["user_id"] = userID
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = newTestIssuer().Parse(token, AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken, userID)
	}
}
