// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Date          *time.Time
	CategoryID    *uuid.UUID
	Type          *entity.TransactionType
	IsHabitual    *bool
	Currency      *entity.Currency
	GoalID        *uuid.UUID
	ClearGoal     bool // Set to true to unlink the goal
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	goalRepo        adapter.GoalRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		goalRepo:        goalRepo,
	}
}

// Execute performs the transaction update. Updating an unknown ID is an
// error, not a silent no-op.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		transaction.Description = *input.Description
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *input.Amount
	}

	if input.Date != nil {
		transaction.Date = entity.Day(*input.Date)
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'INCOME', 'EXPENSE' or 'SAVING'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Currency != nil {
		if !input.Currency.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionCurrency,
				"currency must be 'ARS' or 'USD'",
				domainerror.ErrInvalidTransactionCurrency,
			)
		}
		transaction.Currency = *input.Currency
	}

	if input.IsHabitual != nil {
		transaction.IsHabitual = *input.IsHabitual
	}

	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}
	// Revalidate the category whenever the category or the type changed.
	if input.CategoryID != nil || input.Type != nil {
		if err := validateCategory(ctx, uc.categoryRepo, transaction.CategoryID, transaction.Type); err != nil {
			return nil, err
		}
	}

	if input.ClearGoal {
		transaction.GoalID = nil
	} else if input.GoalID != nil {
		transaction.GoalID = input.GoalID
	} else if transaction.Type != entity.TransactionTypeSaving {
		// A type change away from SAVING drops any lingering goal link.
		transaction.GoalID = nil
	}
	if err := validateGoalLink(ctx, uc.goalRepo, transaction.GoalID, transaction.Type); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Replace(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
