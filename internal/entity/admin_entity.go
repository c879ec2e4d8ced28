package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single moderation account. Registration is capped at one
// document; the cap is enforced in the service layer.
type Admin struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
