package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the customer's default service location.
type Address struct {
	Street    string
	City      string
	State     string
	Pincode   string
	Landmarks string
}

type Customer struct {
	Id             uuid.UUID
	Name           string
	Email          string
	Phone          string
	PasswordHash   string
	Address        Address
	ProfilePicture string
	IsActive       bool
	LastLogin      *time.Time
	DeactivatedAt  *time.Time
	// Reactivation token is single-use and time-boxed; both fields are
	// cleared on successful reactivation.
	ReactivationToken   *string
	ReactivationExpires *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WithinGracePeriod reports whether the account can still be reactivated at
// the given instant. A never-deactivated account has no grace window.
func (c *Customer) WithinGracePeriod(now time.Time, graceDays int) bool {
	if c.DeactivatedAt == nil {
		return false
	}
	return now.Sub(*c.DeactivatedAt) <= time.Duration(graceDays)*24*time.Hour
}
