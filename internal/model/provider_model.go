package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Certification struct {
	Name           string `json:"name"`
	IssuedBy       string `json:"issuedBy"`
	Year           int    `json:"year"`
	CertificateURL string `json:"certificateUrl,omitempty"`
}

type WorkingHours struct {
	From    string                      `gorm:"type:varchar(10)" json:"from"`
	To      string                      `gorm:"type:varchar(10)" json:"to"`
	DaysOff datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"daysOff"`
}

type ServiceProvider struct {
	Id                  uuid.UUID                          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string                             `gorm:"type:varchar(255);not null"`
	Email               string                             `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone               string                             `gorm:"type:varchar(20)"`
	PasswordHash        string                             `gorm:"type:varchar(255);not null"`
	ProfilePicture      string                             `gorm:"type:text"`
	Bio                 string                             `gorm:"type:text"`
	Skills              datatypes.JSONSlice[string]        `gorm:"type:jsonb"`
	ExperienceYears     int                                `gorm:"default:0"`
	Certifications      datatypes.JSONSlice[Certification] `gorm:"type:jsonb"`
	PricingType         string                             `gorm:"type:varchar(20);default:'per-visit'"`
	AvailabilityStatus  string                             `gorm:"type:varchar(20);not null;default:'available';index"`
	WorkingHours        WorkingHours                       `gorm:"embedded;embeddedPrefix:working_hours_"`
	ServiceAreaCities   datatypes.JSONSlice[string]        `gorm:"type:jsonb"`
	ServiceAreaAreas    datatypes.JSONSlice[string]        `gorm:"type:jsonb"`
	AverageRating       float64                            `gorm:"default:0"`
	TotalReviews        int                                `gorm:"default:0"`
	TotalJobsCompleted  int                                `gorm:"default:0"`
	IsActive            bool                               `gorm:"not null;default:true;index"`
	IsSuspended         bool                               `gorm:"not null;default:false;index"`
	SuspensionReason    *string                            `gorm:"type:text"`
	LastLogin           *time.Time
	DeactivatedAt       *time.Time `gorm:"index"`
	ReactivationToken   *string    `gorm:"type:varchar(64);index"`
	ReactivationExpires *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (ServiceProvider) TableName() string {
	return "service_providers"
}
