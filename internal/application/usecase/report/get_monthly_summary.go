package report

import (
	"context"
	"fmt"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	Month Month
}

// GetMonthlySummaryOutput represents the output of the monthly summary.
type GetMonthlySummaryOutput struct {
	Month        Month
	Transactions []*entity.Transaction
	Totals       Totals
}

// GetMonthlySummaryUseCase computes the month view: the filtered, date-sorted
// transactions plus their totals. Derived state is recomputed from scratch on
// every call; at this data volume a cache buys nothing.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the requested month.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	all, err := uc.transactionRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	monthTransactions := MonthTransactions(all, input.Month)

	return &GetMonthlySummaryOutput{
		Month:        input.Month,
		Transactions: monthTransactions,
		Totals:       MonthlyTotals(monthTransactions),
	}, nil
}
