package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const touchSQL = "UPDATE movies SET updated_at = now()"

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func touch(ctx context.Context, db Querier) error {
	_, err := Conn(ctx, db).Exec(ctx, touchSQL)
	return err
}

func TestWithinTx_Commits(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := NewTransactor(mock).WithinTx(context.Background(), func(ctx context.Context) error {
		return touch(ctx, mock)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectRollback()

	err := NewTransactor(mock).WithinTx(context.Background(), func(ctx context.Context) error {
		if err := touch(ctx, mock); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackFailureIsJoined(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("boom")
	rbErr := errors.New("conn closed")
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(rbErr)

	err := NewTransactor(mock).WithinTx(context.Background(), func(context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, rbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := NewTransactor(mock).WithinTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_NestedJoinsOuter(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	tx := NewTransactor(mock)
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			return touch(ctx, mock)
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_OutsideTxUsesPool(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(touchSQL)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, touch(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
