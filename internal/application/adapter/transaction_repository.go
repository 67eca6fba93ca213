// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// TransactionRepository defines access to the transactions collection.
// The collection is insertion-ordered and unique by ID; every mutation is
// written through to the "transactions" slot before it returns.
type TransactionRepository interface {
	// All returns a snapshot of the whole collection in insertion order.
	All(ctx context.Context) ([]*entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrTransactionNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Append adds a new transaction at the end of the collection.
	Append(ctx context.Context, transaction *entity.Transaction) error

	// Replace swaps the transaction whose ID matches, keeping its position.
	// Returns domainerror.ErrTransactionNotFound when absent.
	Replace(ctx context.Context, transaction *entity.Transaction) error

	// Remove deletes the transaction with the given ID.
	// Returns domainerror.ErrTransactionNotFound when absent.
	Remove(ctx context.Context, id uuid.UUID) error

	// UnlinkGoal clears GoalID on every transaction referencing the goal and
	// returns how many were unlinked. Transactions themselves are kept.
	UnlinkGoal(ctx context.Context, goalID uuid.UUID) (int, error)
}
