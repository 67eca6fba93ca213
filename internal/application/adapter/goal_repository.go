// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// GoalRepository defines access to the goals collection.
// Every mutation is written through to the "goals" slot before it returns.
type GoalRepository interface {
	// All returns a snapshot of the whole collection in insertion order.
	All(ctx context.Context) ([]*entity.Goal, error)

	// FindByID retrieves a goal by its ID.
	// Returns domainerror.ErrGoalNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// Append adds a new goal at the end of the collection.
	Append(ctx context.Context, goal *entity.Goal) error

	// Replace swaps the goal whose ID matches, keeping its position.
	// Returns domainerror.ErrGoalNotFound when absent.
	Replace(ctx context.Context, goal *entity.Goal) error

	// Remove deletes the goal with the given ID.
	// Returns domainerror.ErrGoalNotFound when absent.
	Remove(ctx context.Context, id uuid.UUID) error
}
