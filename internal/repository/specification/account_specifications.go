package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByReactivationToken matches an unexpired reactivation token at the given
// instant. Tokens are single-use; the caller clears them after a match.
type ByReactivationToken struct {
	Token string
	Now   time.Time
}

func (s ByReactivationToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reactivation_token = ? AND reactivation_expires > ?", s.Token, s.Now)
}

// DeactivatedBefore matches soft-deactivated accounts whose grace period
// expired before the cutoff. Used by the cleanup sweeps.
type DeactivatedBefore struct {
	Cutoff time.Time
}

func (s DeactivatedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND deactivated_at IS NOT NULL AND deactivated_at < ?", false, s.Cutoff)
}

// NotSuspended keeps providers that are not under moderation.
type NotSuspended struct{}

func (s NotSuspended) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_suspended = ?", false)
}

// IsSuspended filters on an explicit suspension flag value.
type IsSuspended struct {
	Value bool
}

func (s IsSuspended) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_suspended = ?", s.Value)
}

// ByAvailability filters providers by their self-reported status.
type ByAvailability struct {
	Status string
}

func (s ByAvailability) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("availability_status = ?", s.Status)
}

// ByPricingType filters providers by pricing model.
type ByPricingType struct {
	PricingType string
}

func (s ByPricingType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pricing_type = ?", s.PricingType)
}

// RatingBetween keeps providers inside an average-rating band. A zero Max
// means unbounded above.
type RatingBetween struct {
	Min float64
	Max float64
}

func (s RatingBetween) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("average_rating >= ?", s.Min)
	if s.Max > 0 {
		db = db.Where("average_rating <= ?", s.Max)
	}
	return db
}
