package model

import (
	"time"

	"github.com/google/uuid"
)

// Address columns are embedded with a prefix so the customer stays a single
// row; per-document write atomicity is all the concurrency model relies on.
type Address struct {
	Street    string `gorm:"type:varchar(255)" json:"street"`
	City      string `gorm:"type:varchar(100)" json:"city"`
	State     string `gorm:"type:varchar(100)" json:"state"`
	Pincode   string `gorm:"type:varchar(20)" json:"pincode"`
	Landmarks string `gorm:"type:varchar(255)" json:"landmarks"`
}

type Customer struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone               string    `gorm:"type:varchar(20)"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	Address             Address   `gorm:"embedded;embeddedPrefix:address_"`
	ProfilePicture      string    `gorm:"type:text"`
	IsActive            bool      `gorm:"not null;default:true;index"`
	LastLogin           *time.Time
	DeactivatedAt       *time.Time `gorm:"index"`
	ReactivationToken   *string    `gorm:"type:varchar(64);index"`
	ReactivationExpires *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}
