// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct{}

// ListGoalsOutput represents the output of listing goals.
// Progress maps each goal to the ARS amount saved towards it across all time.
type ListGoalsOutput struct {
	Goals    []*entity.Goal
	Progress map[uuid.UUID]decimal.Decimal
}

// ListGoalsUseCase lists all goals together with their saved progress.
type ListGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the goals and computes their progress.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, _ ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	transactions, err := uc.transactionRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &ListGoalsOutput{
		Goals:    goals,
		Progress: report.GoalProgress(transactions, goals),
	}, nil
}
