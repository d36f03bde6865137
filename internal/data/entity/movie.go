package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Movie struct {
	Base
	Title    string          `db:"title"`
	Duration time.Duration   `db:"duration"` // stored as whole seconds
	Premiere time.Time       `db:"premiere"`
	Budget   decimal.Decimal `db:"budget"`
	Overview *string         `db:"overview"`
	UserID   uuid.UUID       `db:"user_id"`

	Genres []*Genre `db:"-"`
}
