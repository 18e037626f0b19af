// Package service defines the interfaces between the engine's hosting
// commands and their collaborators.
package service

import (
	"context"
	"time"

	"github.com/sidecash/sidecash/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Direction *model.TransactionDirection
	Limit     int
}

// Storage defines the contract for the persistence layer. The engine itself
// never touches storage; the CLI host reads a batch, runs the engine, and
// renders the result.
type Storage interface {
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (saved int, err error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	CountTransactions(ctx context.Context) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}
