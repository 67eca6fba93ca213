// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// CategoryRepository defines read access to the categories collection.
// Categories are seeded with the default set on first use and are read-only
// to the core; no mutation operations exist for them.
type CategoryRepository interface {
	// All returns a snapshot of the whole collection in insertion order.
	All(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	// Returns domainerror.ErrCategoryNotFoundForTransaction when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
