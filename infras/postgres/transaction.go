package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Transaction runs a unit of work inside one serializable transaction.
type Transaction interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type transactionImpl struct {
	db *sqlx.DB
}

func NewTransaction(conn *Connection) Transaction {
	return &transactionImpl{
		db: conn.Write,
	}
}

// NewTransactionWithDB is used where only a raw handle is available, such as sqlmock tests.
func NewTransactionWithDB(db *sqlx.DB) Transaction {
	return &transactionImpl{
		db: db,
	}
}

// WithTx commits when fn returns nil and rolls back otherwise. fn's error is returned unwrapped.
func (t *transactionImpl) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
