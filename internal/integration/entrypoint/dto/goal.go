// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description,omitempty"`
	TargetAmount float64 `json:"targetAmount" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	TargetAmount *float64 `json:"targetAmount,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TargetAmount string `json:"targetAmount"`
	SavedAmount  string `json:"savedAmount"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// DeleteGoalResponse represents the response for goal deletion.
type DeleteGoalResponse struct {
	Unlinked int `json:"unlinkedTransactions"`
}

// ToGoalResponse converts a goal entity to its API representation.
func ToGoalResponse(g *entity.Goal, saved decimal.Decimal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		Description:  g.Description,
		TargetAmount: g.TargetAmount.String(),
		SavedAmount:  saved.String(),
	}
}

// ToGoalListResponse converts goal entities and their progress to a list response.
func ToGoalListResponse(goals []*entity.Goal, progress map[uuid.UUID]decimal.Decimal) GoalListResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToGoalResponse(g, progress[g.ID]))
	}
	return GoalListResponse{
		Goals: responses,
	}
}
