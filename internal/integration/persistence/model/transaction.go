// Package model defines storage models for the persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// dateLayout is the calendar-day form dates are persisted in. No time
// component, no timezone shift.
const dateLayout = "2006-01-02"

// TransactionRecord is the persisted form of a transaction inside the
// "transactions" slot payload.
type TransactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Type        string          `json:"type"`
	IsHabitual  bool            `json:"isHabitual"`
	Currency    string          `json:"currency,omitempty"`
	GoalID      *uuid.UUID      `json:"goalId,omitempty"`
}

// TransactionFromEntity creates a TransactionRecord from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date.Format(dateLayout),
		CategoryID:  t.CategoryID,
		Type:        string(t.Type),
		IsHabitual:  t.IsHabitual,
		Currency:    string(t.Currency),
		GoalID:      t.GoalID,
	}
}

// ToEntity converts a TransactionRecord to a domain Transaction entity.
func (r TransactionRecord) ToEntity() (*entity.Transaction, error) {
	date, err := time.ParseInLocation(dateLayout, r.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction date %q: %w", r.Date, err)
	}

	currency := entity.Currency(r.Currency)
	if currency == "" {
		currency = entity.CurrencyARS
	}

	return &entity.Transaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        date,
		CategoryID:  r.CategoryID,
		Type:        entity.TransactionType(r.Type),
		IsHabitual:  r.IsHabitual,
		Currency:    currency,
		GoalID:      r.GoalID,
	}, nil
}

// TransactionsFromEntities converts a collection of transactions to records,
// preserving order.
func TransactionsFromEntities(transactions []*entity.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, t := range transactions {
		records[i] = TransactionFromEntity(t)
	}
	return records
}

// TransactionsToEntities converts a collection of records to transactions,
// preserving order.
func TransactionsToEntities(records []TransactionRecord) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, len(records))
	for i, r := range records {
		t, err := r.ToEntity()
		if err != nil {
			return nil, err
		}
		transactions[i] = t
	}
	return transactions, nil
}
