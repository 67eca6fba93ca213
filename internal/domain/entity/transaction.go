// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income, expense or saving).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeSaving  TransactionType = "SAVING"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense || t == TransactionTypeSaving
}

// Currency represents the currency a transaction is denominated in.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// IsValid reports whether the currency is one of the known values.
func (c Currency) IsValid() bool {
	return c == CurrencyARS || c == CurrencyUSD
}

// Transaction represents a single income, expense or saving movement.
// Date carries a calendar day only; callers must construct it at midnight UTC.
// GoalID is meaningful only for SAVING transactions.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CategoryID  uuid.UUID
	Type        TransactionType
	IsHabitual  bool
	Currency    Currency
	GoalID      *uuid.UUID
}

// NewTransaction creates a new Transaction entity with a fresh identifier.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	date time.Time,
	categoryID uuid.UUID,
	transactionType TransactionType,
	isHabitual bool,
	currency Currency,
	goalID *uuid.UUID,
) *Transaction {
	if currency == "" {
		currency = CurrencyARS
	}

	return &Transaction{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        Day(date),
		CategoryID:  categoryID,
		Type:        transactionType,
		IsHabitual:  isHabitual,
		Currency:    currency,
		GoalID:      goalID,
	}
}

// Day truncates a time to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
