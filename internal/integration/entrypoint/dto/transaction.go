// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	IsHabitual  bool    `json:"isHabitual,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	GoalID      *string `json:"goalId,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Type        *string  `json:"type,omitempty"`
	IsHabitual  *bool    `json:"isHabitual,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	GoalID      *string  `json:"goalId,omitempty"`
	ClearGoal   bool     `json:"clearGoal,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	CategoryID  string  `json:"categoryId"`
	Type        string  `json:"type"`
	IsHabitual  bool    `json:"isHabitual"`
	Currency    string  `json:"currency"`
	GoalID      *string `json:"goalId,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction entity to its API representation.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.String(),
		Date:        t.Date.Format(dateLayout),
		CategoryID:  t.CategoryID.String(),
		Type:        string(t.Type),
		IsHabitual:  t.IsHabitual,
		Currency:    string(t.Currency),
	}
	if t.GoalID != nil {
		goalID := t.GoalID.String()
		response.GoalID = &goalID
	}
	return response
}

// ToTransactionListResponse converts transaction entities to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, ToTransactionResponse(t))
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
