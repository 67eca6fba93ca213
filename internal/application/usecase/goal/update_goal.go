// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left untouched.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update. Updating an unknown ID is an error,
// not a silent no-op.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeEmptyGoalName,
				"goal name must not be blank",
				domainerror.ErrEmptyGoalName,
			)
		}
		goal.Name = *input.Name
	}

	if input.Description != nil {
		goal.Description = *input.Description
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if err := uc.goalRepo.Replace(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
