// Package adapters provides the GORM repository implementations for the
// snapshot feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stockcalendar/internal/feature/snapshot/usecase"
)

// txKey carries the active transaction handle through the context so every
// repository call inside a WithinTx block joins the same transaction.
type txKey struct{}

// TxManager implements usecase.TxManager on top of gorm transactions.
type TxManager struct {
	db *gorm.DB
}

// Compile-time check that TxManager implements usecase.TxManager.
var _ usecase.TxManager = (*TxManager)(nil)

// NewTxManager creates a new TxManager for the given connection.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn inside a single transaction. The transaction rolls back
// when fn returns an error and commits otherwise.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction from the context when one is active, the
// plain connection otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
