package service

import (
	"context"

	"basegraph.app/surveys/core/db"
	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/store"
)

// StoreProvider exposes the stores used by the survey services. *store.Stores
// satisfies it both inside and outside a transaction.
type StoreProvider interface {
	Templates() store.TemplateStore
	Questions() store.QuestionStore
	Runs() store.RunStore
	Instances() store.InstanceStore
	Recipients() store.RecipientStore
	Responses() store.ResponseStore
	ChangeLogs() store.ChangeLogStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}
