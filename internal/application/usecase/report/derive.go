package report

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// Totals aggregates a month's transactions by type and currency.
// Savings are kept per currency; ARS and USD amounts are never converted
// or mixed. Balance is income minus expenses.
type Totals struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	SavingsARS decimal.Decimal
	SavingsUSD decimal.Decimal
	Balance    decimal.Decimal
}

// MonthTransactions returns the transactions dated within the given month,
// ordered by date descending. The sort is stable, so transactions sharing a
// date keep their insertion order.
func MonthTransactions(all []*entity.Transaction, month Month) []*entity.Transaction {
	var result []*entity.Transaction
	for _, t := range all {
		if month.Contains(t.Date) {
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// MonthlyTotals sums the given month transactions by type and currency.
func MonthlyTotals(monthTransactions []*entity.Transaction) Totals {
	totals := Totals{
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		SavingsARS: decimal.Zero,
		SavingsUSD: decimal.Zero,
	}

	for _, t := range monthTransactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		case entity.TransactionTypeSaving:
			if t.Currency == entity.CurrencyUSD {
				totals.SavingsUSD = totals.SavingsUSD.Add(t.Amount)
			} else {
				totals.SavingsARS = totals.SavingsARS.Add(t.Amount)
			}
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// GoalProgress sums, per goal, the SAVING transactions linked to it.
// USD savings are excluded: goal targets are ARS-denominated.
// Every goal gets an entry, zero when nothing is linked.
func GoalProgress(all []*entity.Transaction, goals []*entity.Goal) map[uuid.UUID]decimal.Decimal {
	progress := make(map[uuid.UUID]decimal.Decimal, len(goals))
	for _, g := range goals {
		progress[g.ID] = decimal.Zero
	}

	for _, t := range all {
		if t.Type != entity.TransactionTypeSaving || t.GoalID == nil || t.Currency == entity.CurrencyUSD {
			continue
		}
		if saved, ok := progress[*t.GoalID]; ok {
			progress[*t.GoalID] = saved.Add(t.Amount)
		}
	}
	return progress
}

// HabitualCarryOver returns the previous month's habitual transactions whose
// description does not reappear among the reference month's transactions.
// Descriptions are matched trimmed and lowercased; this is a heuristic, two
// differently worded recurring expenses are never correlated.
func HabitualCarryOver(all []*entity.Transaction, month Month) []*entity.Transaction {
	previous := month.Previous()

	var lastMonthHabitual []*entity.Transaction
	currentDescriptions := make(map[string]struct{})

	for _, t := range all {
		switch {
		case t.IsHabitual && previous.Contains(t.Date):
			lastMonthHabitual = append(lastMonthHabitual, t)
		case month.Contains(t.Date):
			currentDescriptions[normalizeDescription(t.Description)] = struct{}{}
		}
	}

	var missing []*entity.Transaction
	for _, t := range lastMonthHabitual {
		if _, present := currentDescriptions[normalizeDescription(t.Description)]; !present {
			missing = append(missing, t)
		}
	}
	return missing
}

// normalizeDescription produces the case- and whitespace-insensitive key used
// for habitual matching.
func normalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}
