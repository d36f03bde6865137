package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	FindOrCreate(ctx context.Context, name string) (*entity.Genre, error)
	FindByMovieIDs(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

// FindOrCreate returns the genre with exactly this name, inserting it first
// when it does not exist. Concurrent callers end up with the same row.
func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*entity.Genre, error) {
	conn := database.Conn(ctx, r.db)

	insert := `
		INSERT INTO genres (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, created_at
	`

	var genre entity.Genre
	err := conn.QueryRow(ctx, insert, uuid.New(), name, time.Now()).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)
	if err == nil {
		r.log.Debug("Genre created", zap.String("name", name))
		return &genre, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error("Failed to insert genre", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("insert genre %q: %w", name, err)
	}

	// conflict, the genre already exists
	err = conn.QueryRow(ctx, `SELECT id, name, created_at FROM genres WHERE name = $1`, name).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to find genre by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find genre %q: %w", name, err)
	}

	return &genre, nil
}

// FindByMovieIDs returns the genres of each movie ordered by name.
func (r *genreRepository) FindByMovieIDs(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	genres := make(map[uuid.UUID][]*entity.Genre, len(movieIDs))
	if len(movieIDs) == 0 {
		return genres, nil
	}

	query := `
		SELECT mg.movie_id, g.id, g.name, g.created_at
		FROM genres g
		INNER JOIN movie_genres mg ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY g.name
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to find genres by movie IDs",
			zap.Error(err),
			zap.Int("movies", len(movieIDs)),
		)
		return nil, fmt.Errorf("find genres by movie ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			movieID uuid.UUID
			genre   entity.Genre
		)
		if err := rows.Scan(&movieID, &genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres[movieID] = append(genres[movieID], &genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
