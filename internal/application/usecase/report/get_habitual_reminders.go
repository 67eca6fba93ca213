package report

import (
	"context"
	"fmt"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// GetHabitualRemindersInput represents the input for the habitual reminders check.
type GetHabitualRemindersInput struct {
	Month Month
}

// GetHabitualRemindersOutput represents the output of the habitual reminders check.
// Missing holds the previous month's habitual transactions with no matching
// description in the reference month.
type GetHabitualRemindersOutput struct {
	Month   Month
	Missing []*entity.Transaction
}

// GetHabitualRemindersUseCase surfaces recurring expenses that have not been
// recorded yet in the reference month.
type GetHabitualRemindersUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetHabitualRemindersUseCase creates a new GetHabitualRemindersUseCase instance.
func NewGetHabitualRemindersUseCase(transactionRepo adapter.TransactionRepository) *GetHabitualRemindersUseCase {
	return &GetHabitualRemindersUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the carry-over list for the requested month.
func (uc *GetHabitualRemindersUseCase) Execute(ctx context.Context, input GetHabitualRemindersInput) (*GetHabitualRemindersOutput, error) {
	all, err := uc.transactionRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetHabitualRemindersOutput{
		Month:   input.Month,
		Missing: HabitualCarryOver(all, input.Month),
	}, nil
}
