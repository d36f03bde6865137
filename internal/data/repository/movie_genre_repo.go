package repository

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieGenreRepository interface {
	CreateBatch(ctx context.Context, links []*entity.MovieGenre) error
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

// CreateBatch inserts all links with one statement.
func (r *movieGenreRepository) CreateBatch(ctx context.Context, links []*entity.MovieGenre) error {
	if len(links) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(links))
	movieIDs := make([]uuid.UUID, len(links))
	genreIDs := make([]uuid.UUID, len(links))
	createdAt := make([]time.Time, len(links))
	for i, link := range links {
		ids[i] = link.ID
		movieIDs[i] = link.MovieID
		genreIDs[i] = link.GenreID
		createdAt[i] = link.CreatedAt
	}

	query := `
		INSERT INTO movie_genres (id, movie_id, genre_id, created_at)
		SELECT * FROM unnest($1::uuid[], $2::uuid[], $3::uuid[], $4::timestamptz[])
		ON CONFLICT (movie_id, genre_id) DO NOTHING
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, ids, movieIDs, genreIDs, createdAt)
	if err != nil {
		r.log.Error("Failed to create movie genres",
			zap.Error(err),
			zap.Int("count", len(links)),
		)
		return fmt.Errorf("create movie genres: %w", err)
	}

	return nil
}
