package usecase

import (
	"context"
	"testing"
	"time"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/testutil"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateReview(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	restore := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = restore })

	store := testutil.NewStore()
	critic := store.SeedUser(t, "roger", testutil.Critic())
	movie := store.SeedMovie(t, "Heat", critic)
	svc := NewReviewService(store.Repository(), testutil.Config(), zap.NewNop())

	stars := 5
	resp, err := svc.CreateReview(context.Background(), critic.ID, movie, &request.CreateReviewRequest{
		Stars:    &stars,
		Review:   "Masterpiece.",
		Spoilers: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Stars)
	assert.True(t, resp.Spoilers)
	assert.Equal(t, movie.ID.String(), resp.MovieID)
	assert.Equal(t, critic.ID.String(), resp.Critic.ID)
	assert.Equal(t, "Roger", resp.Critic.FirstName)

	page, err := svc.ListReviews(context.Background(), movie, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, resp.ID, page.Items[0].ID)
}

func TestCreateReview_UnknownCritic(t *testing.T) {
	store := testutil.NewStore()
	owner := store.SeedUser(t, "owner")
	movie := store.SeedMovie(t, "Heat", owner)
	svc := NewReviewService(store.Repository(), testutil.Config(), zap.NewNop())

	stars := 3
	_, err := svc.CreateReview(context.Background(), uuid.New(), movie, &request.CreateReviewRequest{Stars: &stars, Review: "x"})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListReviews_ScopedToMovie(t *testing.T) {
	store := testutil.NewStore()
	critic := store.SeedUser(t, "roger", testutil.Critic())
	heat := store.SeedMovie(t, "Heat", critic)
	up := store.SeedMovie(t, "Up", critic)
	for i := 1; i <= 5; i++ {
		store.SeedReview(t, heat, critic, i)
	}
	store.SeedReview(t, up, critic, 2)
	svc := NewReviewService(store.Repository(), testutil.Config(), zap.NewNop())

	page, err := svc.ListReviews(context.Background(), heat, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Items[0].Stars)

	page, err = svc.ListReviews(context.Background(), up, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	empty := store.SeedMovie(t, "Empty", critic)
	page, err = svc.ListReviews(context.Background(), empty, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = svc.ListReviews(context.Background(), empty, 2)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}
