package entity

import (
	"time"

	"github.com/google/uuid"

	"hsms-be/internal/constant"
)

type Certification struct {
	Name           string
	IssuedBy       string
	Year           int
	CertificateURL string
}

// WorkingHours is a provider's weekly schedule window.
type WorkingHours struct {
	From    string
	To      string
	DaysOff []string
}

// ServiceArea lists the cities and areas a provider serves, lowercased.
type ServiceArea struct {
	Cities []string
	Areas  []string
}

type ServiceProvider struct {
	Id                  uuid.UUID
	Name                string
	Email               string
	Phone               string
	PasswordHash        string
	ProfilePicture      string
	Bio                 string
	Skills              []string
	ExperienceYears     int
	Certifications      []Certification
	PricingType         string
	AvailabilityStatus  constant.AvailabilityStatus
	WorkingHours        WorkingHours
	ServiceArea         ServiceArea
	AverageRating       float64
	TotalReviews        int
	TotalJobsCompleted  int
	IsActive            bool
	IsSuspended         bool
	SuspensionReason    *string
	LastLogin           *time.Time
	DeactivatedAt       *time.Time
	ReactivationToken   *string
	ReactivationExpires *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (p *ServiceProvider) WithinGracePeriod(now time.Time, graceDays int) bool {
	if p.DeactivatedAt == nil {
		return false
	}
	return now.Sub(*p.DeactivatedAt) <= time.Duration(graceDays)*24*time.Hour
}
