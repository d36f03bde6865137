package response

import (
	"testing"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "01:50:00", FormatDuration(110*time.Minute))
	assert.Equal(t, "00:00:00", FormatDuration(0))
	assert.Equal(t, "1 02:03:04", FormatDuration(26*time.Hour+3*time.Minute+4*time.Second))
	assert.Equal(t, "00:00:01.500000", FormatDuration(1500*time.Millisecond))
}

func TestMovieToResponse(t *testing.T) {
	movie := &entity.Movie{
		Base:     entity.NewBase(time.Now()),
		Title:    "The Godfather",
		Duration: 175 * time.Minute,
		Premiere: time.Date(1972, 3, 24, 0, 0, 0, 0, time.UTC),
		Budget:   decimal.RequireFromString("6000000"),
		UserID:   uuid.New(),
		Genres: []*entity.Genre{
			{BaseSimple: entity.NewBaseSimple(time.Now()), Name: "Crime"},
		},
	}

	resp := MovieToResponse(movie)
	assert.Equal(t, movie.ID.String(), resp.ID)
	assert.Equal(t, "02:55:00", resp.Duration)
	assert.Equal(t, "1972-03-24", resp.Premiere)
	assert.Equal(t, "6000000.00", resp.Budget)
	assert.Nil(t, resp.Overview)
	assert.Equal(t, []GenreResponse{{ID: movie.Genres[0].ID.String(), Name: "Crime"}}, resp.Genres)
}

func TestReviewToResponse_CriticProjection(t *testing.T) {
	critic := &entity.User{Base: entity.NewBase(time.Now()), FirstName: "Roger", LastName: "Ebert", Email: "r@e.com"}
	review := &entity.Review{
		BaseSimple: entity.NewBaseSimple(time.Now()),
		Stars:      4,
		Review:     "Great",
		MovieID:    uuid.New(),
		CriticID:   critic.ID,
		Critic:     critic,
	}

	resp := ReviewToResponse(review)
	assert.Equal(t, CriticResponse{ID: critic.ID.String(), FirstName: "Roger", LastName: "Ebert"}, resp.Critic)
	assert.Equal(t, review.MovieID.String(), resp.MovieID)
}

func TestNewPaginatedResponse_EmptyResults(t *testing.T) {
	page := NewPaginatedResponse[MovieResponse](nil, 0, nil, nil)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}
