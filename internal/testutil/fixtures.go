package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	TestSecret   = "test-secret"
	TestPassword = "s3cret-pass"
)

// Config returns a valid configuration for tests.
func Config() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:       "movie-reviews-test",
			Port:       "0",
			PageSize:   4,
			BcryptCost: bcrypt.MinCost,
		},
		JWT: utils.JWTConfig{
			Secret:     TestSecret,
			AccessTTL:  5 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		},
	}
}

// UserOption adjusts a seeded user.
type UserOption func(*entity.User)

func Critic() UserOption { return func(u *entity.User) { u.IsCritic = true } }
func Admin() UserOption  { return func(u *entity.User) { u.IsSuperuser = true } }
func Inactive() UserOption {
	return func(u *entity.User) { u.IsActive = false }
}

// SeedUser stores a user whose password is TestPassword.
func (s *Store) SeedUser(t testing.TB, username string, opts ...UserOption) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(TestPassword, bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.NewBase(time.Now().UTC()),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		LastName:     "Tester",
		IsActive:     true,
	}
	for _, opt := range opts {
		opt(user)
	}

	s.mu.Lock()
	s.users = append(s.users, copyUser(user))
	s.mu.Unlock()
	return user
}

// SeedMovie stores a movie owned by owner, linked to the given genre names.
func (s *Store) SeedMovie(t testing.TB, title string, owner *entity.User, genres ...string) *entity.Movie {
	t.Helper()

	now := time.Now().UTC()
	movie := &entity.Movie{
		Base:     entity.NewBase(now),
		Title:    title,
		Duration: 110 * time.Minute,
		Premiere: time.Date(1972, 9, 10, 0, 0, 0, 0, time.UTC),
		Budget:   decimal.RequireFromString("13000000.00"),
		UserID:   owner.ID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = append(s.movies, movie)
	for _, name := range genres {
		var genre *entity.Genre
		for _, g := range s.genres {
			if g.Name == name {
				genre = g
			}
		}
		if genre == nil {
			genre = &entity.Genre{BaseSimple: entity.NewBaseSimple(now), Name: name}
			s.genres = append(s.genres, genre)
		}
		movie.Genres = append(movie.Genres, genre)
		s.links = append(s.links, &entity.MovieGenre{
			BaseSimple: entity.NewBaseSimple(now),
			MovieID:    movie.ID,
			GenreID:    genre.ID,
		})
	}
	return movie
}

// SeedReview stores a review of movie by critic.
func (s *Store) SeedReview(t testing.TB, movie *entity.Movie, critic *entity.User, stars int) *entity.Review {
	t.Helper()

	review := &entity.Review{
		BaseSimple: entity.NewBaseSimple(time.Now().UTC()),
		Stars:      stars,
		Review:     fmt.Sprintf("%d stars for %s", stars, movie.Title),
		MovieID:    movie.ID,
		CriticID:   critic.ID,
	}

	s.mu.Lock()
	s.reviews = append(s.reviews, review)
	s.mu.Unlock()
	return review
}

// AccessToken issues a valid access token for user.
func AccessToken(t testing.TB, config *utils.Config, user *entity.User) string {
	t.Helper()

	token, err := utils.NewTokenIssuer(config.JWT).IssueAccess(user.ID)
	require.NoError(t, err)
	return token
}

// NewRequest builds a JSON request, authenticated when token is not empty.
func NewRequest(method, target, body, token string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
