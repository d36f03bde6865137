package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	Stars    int       `db:"stars"` // 1-5
	Review   string    `db:"review"`
	Spoilers bool      `db:"spoilers"`
	MovieID  uuid.UUID `db:"movie_id"`
	CriticID uuid.UUID `db:"critic_id"`

	Critic *User `db:"-"`
}
