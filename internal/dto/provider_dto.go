package dto

import (
	"time"

	"github.com/google/uuid"
)

type CertificationInput struct {
	Name           string `json:"name" validate:"required"`
	IssuedBy       string `json:"issuedBy" validate:"required"`
	Year           int    `json:"year" validate:"required"`
	CertificateURL string `json:"certificateUrl"`
}

type WorkingHoursInput struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	DaysOff []string `json:"daysOff"`
}

type ServiceAreaInput struct {
	Cities []string `json:"cities"`
	Areas  []string `json:"areas"`
}

type RegisterProviderRequest struct {
	Name            string               `json:"name" validate:"required"`
	Email           string               `json:"email" validate:"required,email"`
	Phone           string               `json:"phone"`
	Password        string               `json:"password" validate:"required,min=6"`
	Bio             string               `json:"bio"`
	Skills          []string             `json:"skills"`
	ExperienceYears int                  `json:"experienceYears"`
	Certifications  []CertificationInput `json:"certifications" validate:"omitempty,dive"`
	PricingType     string               `json:"pricingType"`
	WorkingHours    *WorkingHoursInput   `json:"workingHours"`
	ServiceArea     *ServiceAreaInput    `json:"serviceArea"`
	ProfilePicture  string               `json:"profilePicture"`
}

type UpdateProviderRequest struct {
	Name            string               `json:"name"`
	Email           string               `json:"email" validate:"omitempty,email"`
	Phone           string               `json:"phone"`
	Password        string               `json:"password" validate:"omitempty,min=6"`
	Bio             string               `json:"bio"`
	Skills          []string             `json:"skills"`
	ExperienceYears *int                 `json:"experienceYears"`
	Certifications  []CertificationInput `json:"certifications" validate:"omitempty,dive"`
	PricingType     string               `json:"pricingType"`
	WorkingHours    *WorkingHoursInput   `json:"workingHours"`
	ServiceArea     *ServiceAreaInput    `json:"serviceArea"`
	ProfilePicture  string               `json:"profilePicture"`
}

type ToggleAvailabilityRequest struct {
	Status string `json:"status" validate:"required"`
}

// SearchProvidersQuery is the public provider search surface.
type SearchProvidersQuery struct {
	ListQuery
	Skill              string  `query:"skill"`
	City               string  `query:"city"`
	Area               string  `query:"area"`
	MinRating          float64 `query:"minRating"`
	MaxRating          float64 `query:"maxRating"`
	PricingType        string  `query:"pricingType"`
	AvailabilityStatus string  `query:"availabilityStatus"`
}

// ProviderResponse is the provider profile with credentials and moderation
// fields stripped.
type ProviderResponse struct {
	Id                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Phone              string               `json:"phone,omitempty"`
	ProfilePicture     string               `json:"profilePicture,omitempty"`
	Bio                string               `json:"bio,omitempty"`
	Skills             []string             `json:"skills"`
	ExperienceYears    int                  `json:"experienceYears"`
	Certifications     []CertificationInput `json:"certifications,omitempty"`
	PricingType        string               `json:"pricingType"`
	AvailabilityStatus string               `json:"availabilityStatus"`
	WorkingHours       *WorkingHoursInput   `json:"workingHours,omitempty"`
	ServiceArea        *ServiceAreaInput    `json:"serviceArea,omitempty"`
	AverageRating      float64              `json:"averageRating"`
	TotalReviews       int                  `json:"totalReviews"`
	TotalJobsCompleted int                  `json:"totalJobsCompleted"`
	IsActive           bool                 `json:"isActive"`
	CreatedAt          time.Time            `json:"createdAt"`
}
