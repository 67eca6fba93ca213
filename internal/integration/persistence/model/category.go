// Package model defines storage models for the persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// CategoryRecord is the persisted form of a category inside the
// "categories" slot payload.
type CategoryRecord struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// CategoryFromEntity creates a CategoryRecord from a domain Category entity.
func CategoryFromEntity(c *entity.Category) CategoryRecord {
	return CategoryRecord{
		ID:   c.ID,
		Name: c.Name,
		Type: string(c.Type),
	}
}

// ToEntity converts a CategoryRecord to a domain Category entity.
func (r CategoryRecord) ToEntity() *entity.Category {
	return &entity.Category{
		ID:   r.ID,
		Name: r.Name,
		Type: entity.TransactionType(r.Type),
	}
}

// CategoriesFromEntities converts a collection of categories to records,
// preserving order.
func CategoriesFromEntities(categories []*entity.Category) []CategoryRecord {
	records := make([]CategoryRecord, len(categories))
	for i, c := range categories {
		records[i] = CategoryFromEntity(c)
	}
	return records
}

// CategoriesToEntities converts a collection of records to categories,
// preserving order.
func CategoriesToEntities(records []CategoryRecord) []*entity.Category {
	categories := make([]*entity.Category, len(records))
	for i, r := range records {
		categories[i] = r.ToEntity()
	}
	return categories
}
