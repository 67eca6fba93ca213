// Package model defines storage models for the persistence layer.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// GoalRecord is the persisted form of a goal inside the "goals" slot payload.
type GoalRecord struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

// GoalFromEntity creates a GoalRecord from a domain Goal entity.
func GoalFromEntity(g *entity.Goal) GoalRecord {
	return GoalRecord{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		TargetAmount: g.TargetAmount,
	}
}

// ToEntity converts a GoalRecord to a domain Goal entity.
func (r GoalRecord) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		TargetAmount: r.TargetAmount,
	}
}

// GoalsFromEntities converts a collection of goals to records, preserving order.
func GoalsFromEntities(goals []*entity.Goal) []GoalRecord {
	records := make([]GoalRecord, len(goals))
	for i, g := range goals {
		records[i] = GoalFromEntity(g)
	}
	return records
}

// GoalsToEntities converts a collection of records to goals, preserving order.
func GoalsToEntities(records []GoalRecord) []*entity.Goal {
	goals := make([]*entity.Goal, len(records))
	for i, r := range records {
		goals[i] = r.ToEntity()
	}
	return goals
}
