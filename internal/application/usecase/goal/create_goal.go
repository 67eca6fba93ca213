// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name         string
	Description  string
	TargetAmount decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic. Creation and update are
// deliberately separate operations; there is no create-or-update dispatch.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalName,
			"goal name must not be blank",
			domainerror.ErrEmptyGoalName,
		)
	}

	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewGoal(input.Name, input.Description, input.TargetAmount)

	if err := uc.goalRepo.Append(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
