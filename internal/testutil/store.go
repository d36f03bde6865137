// Package testutil provides in-memory repositories with the same
// uniqueness, ordering and get-or-create behavior as the Postgres ones.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"

	"github.com/google/uuid"
)

// Store is the shared in-memory database behind every fake repository.
type Store struct {
	mu sync.Mutex

	users   []*entity.User
	movies  []*entity.Movie
	genres  []*entity.Genre
	links   []*entity.MovieGenre
	reviews []*entity.Review

	// FailWith, when set, is returned by every repository call.
	FailWith error
}

func NewStore() *Store {
	return &Store{}
}

// Repository returns a repository set backed by s.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Tx:         txRunner{},
		User:       &userRepo{s},
		Movie:      &movieRepo{s},
		Genre:      &genreRepo{s},
		MovieGenre: &movieGenreRepo{s},
		Review:     &reviewRepo{s},
	}
}

type txRunner struct{}

func (txRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

// ---------------- users ----------------

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return &repository.ErrDuplicate{Constraint: repository.ConstraintUsersUsername}
		}
		if u.Email == user.Email {
			return &repository.ErrDuplicate{Constraint: repository.ConstraintUsersEmail}
		}
	}
	r.s.users = append(r.s.users, copyUser(user))
	return nil
}

func (r *userRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	for _, u := range r.s.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *userRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make(map[uuid.UUID]*entity.User, len(ids))
	for _, u := range r.s.users {
		if wanted[u.ID] {
			out[u.ID] = copyUser(u)
		}
	}
	return out, nil
}

func (r *userRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	sorted := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		sorted = append(sorted, copyUser(u))
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Username < sorted[j].Username })
	return page(sorted, limit, offset), nil
}

func (r *userRepo) CountAll(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	return int64(len(r.s.users)), nil
}

// ---------------- movies ----------------

type movieRepo struct{ s *Store }

func (r *movieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}

	c := *movie
	c.Genres = nil
	r.s.movies = append(r.s.movies, &c)
	return nil
}

func (r *movieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	for _, m := range r.s.movies {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *movieRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	all := make([]*entity.Movie, 0, len(r.s.movies))
	for _, m := range r.s.movies {
		c := *m
		all = append(all, &c)
	}
	return page(all, limit, offset), nil
}

func (r *movieRepo) CountAll(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	return int64(len(r.s.movies)), nil
}

// ---------------- genres ----------------

type genreRepo struct{ s *Store }

func (r *genreRepo) FindOrCreate(_ context.Context, name string) (*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	for _, g := range r.s.genres {
		if g.Name == name {
			c := *g
			return &c, nil
		}
	}

	genre := &entity.Genre{BaseSimple: entity.NewBaseSimple(time.Now()), Name: name}
	r.s.genres = append(r.s.genres, genre)
	c := *genre
	return &c, nil
}

func (r *genreRepo) FindByMovieIDs(_ context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}

	byID := make(map[uuid.UUID]*entity.Genre, len(r.s.genres))
	for _, g := range r.s.genres {
		byID[g.ID] = g
	}
	wanted := make(map[uuid.UUID]bool, len(movieIDs))
	for _, id := range movieIDs {
		wanted[id] = true
	}

	out := make(map[uuid.UUID][]*entity.Genre, len(movieIDs))
	for _, link := range r.s.links {
		if !wanted[link.MovieID] {
			continue
		}
		c := *byID[link.GenreID]
		out[link.MovieID] = append(out[link.MovieID], &c)
	}
	for _, genres := range out {
		sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	}
	return out, nil
}

// GenreCount reports how many genre rows exist.
func (s *Store) GenreCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.genres)
}

// ---------------- movie genres ----------------

type movieGenreRepo struct{ s *Store }

func (r *movieGenreRepo) CreateBatch(_ context.Context, links []*entity.MovieGenre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}

	for _, link := range links {
		duplicate := false
		for _, existing := range r.s.links {
			if existing.MovieID == link.MovieID && existing.GenreID == link.GenreID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			c := *link
			r.s.links = append(r.s.links, &c)
		}
	}
	return nil
}

// ---------------- reviews ----------------

type reviewRepo struct{ s *Store }

func (r *reviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}

	c := *review
	c.Critic = nil
	r.s.reviews = append(r.s.reviews, &c)
	return nil
}

func (r *reviewRepo) forMovie(movieID uuid.UUID) []*entity.Review {
	var out []*entity.Review
	for _, review := range r.s.reviews {
		if review.MovieID == movieID {
			c := *review
			out = append(out, &c)
		}
	}
	return out
}

func (r *reviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	return page(r.forMovie(movieID), limit, offset), nil
}

func (r *reviewRepo) CountByMovieID(_ context.Context, movieID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return 0, r.s.FailWith
	}
	return int64(len(r.forMovie(movieID))), nil
}
