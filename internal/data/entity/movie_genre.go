package entity

import (
	"github.com/google/uuid"
)

// MovieGenre links a movie to one of its genres.
type MovieGenre struct {
	BaseSimple
	MovieID uuid.UUID `db:"movie_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
