// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CategoryID  uuid.UUID
	Type        entity.TransactionType
	IsHabitual  bool
	Currency    entity.Currency // Optional, defaults to ARS
	GoalID      *uuid.UUID      // Only valid for SAVING transactions
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	goalRepo        adapter.GoalRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		goalRepo:        goalRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME', 'EXPENSE' or 'SAVING'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.CurrencyARS
	}
	if !currency.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCurrency,
			"currency must be 'ARS' or 'USD'",
			domainerror.ErrInvalidTransactionCurrency,
		)
	}

	if err := validateCategory(ctx, uc.categoryRepo, input.CategoryID, input.Type); err != nil {
		return nil, err
	}

	if err := validateGoalLink(ctx, uc.goalRepo, input.GoalID, input.Type); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Description,
		input.Amount,
		input.Date,
		input.CategoryID,
		input.Type,
		input.IsHabitual,
		currency,
		input.GoalID,
	)

	if err := uc.transactionRepo.Append(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
