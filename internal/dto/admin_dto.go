package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type SuspendProviderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ListProvidersQuery is the admin moderation listing filter.
type ListProvidersQuery struct {
	ListQuery
	IsActive    *bool `query:"isActive"`
	IsSuspended *bool `query:"isSuspended"`
}
