package mocks

import (
	"context"

	"forest/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactionImpl struct {
}

// WithTx implements postgres.Transaction. fn receives a nil transaction.
func (t *transactionImpl) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransaction() postgres.Transaction {
	return &transactionImpl{}
}
