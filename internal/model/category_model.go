package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CommonService struct {
	Name         string  `json:"name"`
	TypicalPrice float64 `json:"typicalPrice"`
	Duration     string  `json:"duration"`
}

type PriceRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `gorm:"type:varchar(20)" json:"unit"`
}

type ServiceCategory struct {
	Id             uuid.UUID                          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string                             `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug           string                             `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description    string                             `gorm:"type:text"`
	Icon           string                             `gorm:"type:text"`
	PriceRange     PriceRange                         `gorm:"embedded;embeddedPrefix:price_"`
	CommonServices datatypes.JSONSlice[CommonService] `gorm:"type:jsonb"`
	RequiredSkills datatypes.JSONSlice[string]        `gorm:"type:jsonb"`
	IsActive       bool                               `gorm:"not null;default:true;index"`
	CreatedAt      time.Time                          `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                          `gorm:"autoUpdateTime"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}
