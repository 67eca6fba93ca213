// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mairuba/finanzas-backend/internal/application/usecase/report"
)

// TotalsResponse represents the monthly aggregates in API responses.
type TotalsResponse struct {
	Income     string `json:"income"`
	Expense    string `json:"expense"`
	SavingsARS string `json:"savingsArs"`
	SavingsUSD string `json:"savingsUsd"`
	Balance    string `json:"balance"`
}

// MonthlySummaryResponse represents the response for the monthly summary.
type MonthlySummaryResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// HabitualRemindersResponse represents the response for the habitual reminders check.
type HabitualRemindersResponse struct {
	Month   string                `json:"month"`
	Missing []TransactionResponse `json:"missing"`
}

// ToMonthlySummaryResponse converts the monthly summary output to its API representation.
func ToMonthlySummaryResponse(output *report.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:        output.Month.String(),
		Transactions: ToTransactionListResponse(output.Transactions).Transactions,
		Totals: TotalsResponse{
			Income:     output.Totals.Income.String(),
			Expense:    output.Totals.Expense.String(),
			SavingsARS: output.Totals.SavingsARS.String(),
			SavingsUSD: output.Totals.SavingsUSD.String(),
			Balance:    output.Totals.Balance.String(),
		},
	}
}

// ToHabitualRemindersResponse converts the reminders output to its API representation.
func ToHabitualRemindersResponse(output *report.GetHabitualRemindersOutput) HabitualRemindersResponse {
	return HabitualRemindersResponse{
		Month:   output.Month.String(),
		Missing: ToTransactionListResponse(output.Missing).Transactions,
	}
}
