package gorm

import (
	"context"

	"github.com/larderly/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager implements outbound.TransactionManager on a GORM
// connection. The transaction handle travels in the context, so repositories
// created from the same *gorm.DB automatically join an open transaction.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) outbound.TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction runs fn inside one database transaction. A nested call
// joins the outer transaction rather than opening a second one.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx
}

// conn resolves the database handle for a context: the open transaction when
// one is present, the base connection otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
