package dto

import (
	"time"

	"github.com/google/uuid"
)

type CommonServiceInput struct {
	Name         string  `json:"name"`
	TypicalPrice float64 `json:"typicalPrice"`
	Duration     string  `json:"duration"`
}

type PriceRangeInput struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

type CreateCategoryRequest struct {
	Name           string               `json:"name" validate:"required"`
	Slug           string               `json:"slug"`
	Description    string               `json:"description"`
	Icon           string               `json:"icon"`
	PriceRange     *PriceRangeInput     `json:"priceRange"`
	CommonServices []CommonServiceInput `json:"commonServices"`
	RequiredSkills []string             `json:"requiredSkills"`
}

type UpdateCategoryRequest struct {
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	Description    *string              `json:"description"`
	Icon           *string              `json:"icon"`
	PriceRange     *PriceRangeInput     `json:"priceRange"`
	CommonServices []CommonServiceInput `json:"commonServices"`
	RequiredSkills []string             `json:"requiredSkills"`
}

type ListCategoriesQuery struct {
	ListQuery
	IsActive *bool `query:"isActive"`
}

type CategoryResponse struct {
	Id             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	Description    string               `json:"description,omitempty"`
	Icon           string               `json:"icon,omitempty"`
	PriceRange     PriceRangeInput      `json:"priceRange"`
	CommonServices []CommonServiceInput `json:"commonServices"`
	RequiredSkills []string             `json:"requiredSkills"`
	IsActive       bool                 `json:"isActive"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}
