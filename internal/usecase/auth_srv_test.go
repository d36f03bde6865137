package usecase

import (
	"context"
	"testing"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/testutil"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(store *testutil.Store) (AuthService, *utils.TokenIssuer) {
	tokens := utils.NewTokenIssuer(testutil.Config().JWT)
	return NewAuthService(store.Repository(), tokens, zap.NewNop()), tokens
}

func TestLogin_IssuesPairForUser(t *testing.T) {
	store := testutil.NewStore()
	user := store.SeedUser(t, "alice")
	svc, tokens := newAuthService(store)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: testutil.TestPassword})
	require.NoError(t, err)

	access, err := tokens.Parse(resp.Access, utils.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, access.UserID)

	refresh, err := tokens.Parse(resp.Refresh, utils.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refresh.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := testutil.NewStore()
	store.SeedUser(t, "alice")
	store.SeedUser(t, "ghost", testutil.Inactive())
	svc, _ := newAuthService(store)

	for _, req := range []request.LoginRequest{
		{Username: "alice", Password: "nope"},
		{Username: "bob", Password: testutil.TestPassword},
		{Username: "ghost", Password: testutil.TestPassword},
	} {
		_, err := svc.Login(context.Background(), &req)
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials, req.Username)
	}
}

func TestRefresh(t *testing.T) {
	store := testutil.NewStore()
	user := store.SeedUser(t, "alice")
	ghost := store.SeedUser(t, "ghost", testutil.Inactive())
	svc, tokens := newAuthService(store)

	pair, err := tokens.IssuePair(user.ID)
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: pair.Refresh})
	require.NoError(t, err)
	claims, err := tokens.Parse(resp.Access, utils.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	t.Run("access token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: pair.Access})
		assert.ErrorIs(t, err, utils.ErrInvalidToken)
	})

	t.Run("inactive user", func(t *testing.T) {
		ghostPair, err := tokens.IssuePair(ghost.ID)
		require.NoError(t, err)
		_, err = svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: ghostPair.Refresh})
		assert.ErrorIs(t, err, utils.ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		orphan, err := tokens.IssuePair(uuid.New())
		require.NoError(t, err)
		_, err = svc.Refresh(context.Background(), &request.RefreshRequest{Refresh: orphan.Refresh})
		assert.ErrorIs(t, err, utils.ErrInvalidToken)
	})
}
