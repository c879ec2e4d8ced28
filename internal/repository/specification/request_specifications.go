package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hsms-be/internal/constant"
)

// OwnedByCustomer scopes requests to their owning customer.
type OwnedByCustomer struct {
	CustomerID uuid.UUID
}

func (s OwnedByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

// AssignedToProvider scopes requests to the provider working them.
type AssignedToProvider struct {
	ProviderID uuid.UUID
}

func (s AssignedToProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_provider_id = ?", s.ProviderID)
}

// WithStatus filters by a single lifecycle state.
type WithStatus struct {
	Status constant.RequestStatus
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// WithStatusIn filters by a set of lifecycle states.
type WithStatusIn struct {
	Statuses []constant.RequestStatus
}

func (s WithStatusIn) Apply(db *gorm.DB) *gorm.DB {
	values := make([]string, len(s.Statuses))
	for i, st := range s.Statuses {
		values[i] = string(st)
	}
	return db.Where("status IN ?", values)
}

// NonTerminal keeps requests that still need work. Used to block category
// deletion and account deactivation.
type NonTerminal struct{}

func (s NonTerminal) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{
		string(constant.StatusRequested),
		string(constant.StatusAssigned),
		string(constant.StatusInProgress),
	})
}

// ReferencesCategory scopes requests to a service category.
type ReferencesCategory struct {
	CategoryID uuid.UUID
}

func (s ReferencesCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_category_id = ?", s.CategoryID)
}
