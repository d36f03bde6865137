package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// Constraint names from the schema, used to map duplicates to fields.
const (
	ConstraintUsersUsername = "users_username_key"
	ConstraintUsersEmail    = "users_email_key"
)

// ErrDuplicate reports a unique constraint violation.
type ErrDuplicate struct {
	Constraint string
}

func (e *ErrDuplicate) Error() string {
	return fmt.Sprintf("duplicate value violates %s", e.Constraint)
}

// AsDuplicate returns the violated constraint when err is a unique violation.
func AsDuplicate(err error) (string, bool) {
	var dup *ErrDuplicate
	if errors.As(err, &dup) {
		return dup.Constraint, true
	}
	return "", false
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &ErrDuplicate{Constraint: pgErr.ConstraintName}
	}
	return err
}
