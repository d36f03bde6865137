package repository

import (
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx         database.Transactor
	User       UserRepository
	Movie      MovieRepository
	Genre      GenreRepository
	MovieGenre MovieGenreRepository
	Review     ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:         database.NewTransactor(db),
		User:       NewUserRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}
