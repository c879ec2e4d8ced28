package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CommonService is a named, pre-priced offering nested under a category,
// e.g. "Sink unclog" under "Plumbing".
type CommonService struct {
	Name         string
	TypicalPrice float64
	Duration     string
}

// PriceRange bounds a category's pricing. Min < Max must hold when both are
// set; validated on create/update.
type PriceRange struct {
	Min  float64
	Max  float64
	Unit string
}

type ServiceCategory struct {
	Id             uuid.UUID
	Name           string
	Slug           string
	Description    string
	Icon           string
	PriceRange     PriceRange
	CommonServices []CommonService
	RequiredSkills []string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FindCommonService matches by name, case-insensitively. Returns nil when the
// category has no offering by that name.
func (c *ServiceCategory) FindCommonService(name string) *CommonService {
	for i := range c.CommonServices {
		if strings.EqualFold(c.CommonServices[i].Name, name) {
			return &c.CommonServices[i]
		}
	}
	return nil
}

// Midpoint is the fallback estimate when no common service matches.
func (r PriceRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}
