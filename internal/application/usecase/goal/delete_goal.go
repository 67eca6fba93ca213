// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Success  bool
	Unlinked int // Transactions whose goal reference was cleared
}

// DeleteGoalUseCase handles goal deletion logic. Transactions linked to the
// goal are unlinked, never deleted.
type DeleteGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the goal deletion and clears the goal reference on every
// linked transaction. Both collections are persisted. Deleting an unknown ID
// is an error, not a silent no-op.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	if err := uc.goalRepo.Remove(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	unlinked, err := uc.transactionRepo.UnlinkGoal(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlink transactions from goal: %w", err)
	}

	if unlinked > 0 {
		slog.Info("Unlinked transactions from deleted goal",
			"goal_id", input.GoalID,
			"count", unlinked,
		)
	}

	return &DeleteGoalOutput{
		Success:  true,
		Unlinked: unlinked,
	}, nil
}
