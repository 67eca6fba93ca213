// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mairuba/finanzas-backend/internal/domain/entity"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Type: string(c.Type),
		})
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
