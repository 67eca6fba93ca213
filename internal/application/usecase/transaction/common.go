// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
	domainerror "github.com/mairuba/finanzas-backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// validateDescription checks that the description is non-blank and within bounds.
func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be blank",
			domainerror.ErrEmptyTransactionDescription,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

// validateAmount checks that the amount is strictly positive.
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// validateCategory checks that the category exists and may hold transactions
// of the given type.
func validateCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	categoryID uuid.UUID,
	transactionType entity.TransactionType,
) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFoundForTransaction) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	if category.Type != transactionType {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %q accepts %s transactions only", category.Name, category.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}
	return nil
}

// validateGoalLink checks that a goal reference is only carried by SAVING
// transactions and points at an existing goal.
func validateGoalLink(
	ctx context.Context,
	goalRepo adapter.GoalRepository,
	goalID *uuid.UUID,
	transactionType entity.TransactionType,
) error {
	if goalID == nil {
		return nil
	}

	if transactionType != entity.TransactionTypeSaving {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeGoalLinkNotAllowed,
			"only saving transactions may reference a goal",
			domainerror.ErrGoalLinkNotAllowed,
		)
	}

	if _, err := goalRepo.FindByID(ctx, *goalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}
	return nil
}
