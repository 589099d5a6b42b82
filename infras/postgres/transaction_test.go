package postgres_test

import (
	"context"
	"errors"
	"testing"

	"forest/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTransaction(t *testing.T) (postgres.Transaction, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewTransactionWithDB(sqlx.NewDb(db, "postgres")), mock
}

func TestTransaction_WithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		trx, mock := newMockTransaction(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM carts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := trx.WithTx(context.Background(), func(tx *sqlx.Tx) error {
			_, err := tx.Exec("DELETE FROM carts WHERE id = $1", "cart-1")

			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the callback error", func(t *testing.T) {
		trx, mock := newMockTransaction(t)
		wantErr := errors.New("stale pricing")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := trx.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		trx, mock := newMockTransaction(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false
		err := trx.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			called = true

			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		trx, mock := newMockTransaction(t)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

		err := trx.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			return nil
		})

		assert.ErrorContains(t, err, "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
