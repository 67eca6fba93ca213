// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a named savings target. Targets are ARS-denominated;
// progress is tracked through SAVING transactions linked via Transaction.GoalID.
type Goal struct {
	ID           uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
}

// NewGoal creates a new Goal entity with a fresh identifier.
func NewGoal(name, description string, targetAmount decimal.Decimal) *Goal {
	return &Goal{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		TargetAmount: targetAmount,
	}
}
