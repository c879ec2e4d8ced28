package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Schedule struct {
	Date          time.Time `gorm:"not null;index" json:"date"`
	TimeSlot      string    `gorm:"type:varchar(20);not null" json:"timeSlot"`
	PreferredTime string    `gorm:"type:varchar(50)" json:"preferredTime"`
}

type PricingDetails struct {
	BaseCharge       float64 `json:"baseCharge"`
	AdditionalCharge float64 `json:"additionalCharge"`
	Breakdown        string  `gorm:"type:text" json:"breakdown"`
}

// StatusEntry rows live inside the request document as a JSONB array so the
// history appends in the same write as the status change.
type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	UpdatedBy string    `json:"updatedBy"`
}

type RecurringPattern struct {
	Frequency       string     `json:"frequency"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	NextServiceDate *time.Time `json:"nextServiceDate,omitempty"`
}

type ServiceRequest struct {
	Id                 uuid.UUID                        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId         uuid.UUID                        `gorm:"type:uuid;not null;index"`
	ServiceProviderId  *uuid.UUID                       `gorm:"type:uuid;index"`
	ServiceType        string                           `gorm:"type:varchar(100);not null"`
	ServiceCategoryId  uuid.UUID                        `gorm:"type:uuid;not null;index"`
	ServiceTitle       string                           `gorm:"type:varchar(255);not null"`
	ServiceDescription string                           `gorm:"type:text"`
	Schedule           Schedule                         `gorm:"embedded;embeddedPrefix:schedule_"`
	ServiceAddress     Address                          `gorm:"embedded;embeddedPrefix:address_"`
	BeforeImages       datatypes.JSONSlice[string]      `gorm:"type:jsonb"`
	AfterImages        datatypes.JSONSlice[string]      `gorm:"type:jsonb"`
	EstimatedPrice     float64                          `gorm:"default:0"`
	FinalPrice         float64                          `gorm:"default:0"`
	PricingDetails     PricingDetails                   `gorm:"embedded;embeddedPrefix:pricing_"`
	PaymentStatus      string                           `gorm:"type:varchar(20);default:'pending'"`
	PaymentMethod      string                           `gorm:"type:varchar(50)"`
	Status             string                           `gorm:"type:varchar(20);not null;default:'requested';index"`
	StatusHistory      datatypes.JSONSlice[StatusEntry] `gorm:"type:jsonb"`
	CancellationReason string                           `gorm:"type:text"`
	CancelledBy        string                           `gorm:"type:varchar(20)"`
	CancelledAt        *time.Time
	IsRecurring        bool                                  `gorm:"not null;default:false"`
	RecurringPattern   *datatypes.JSONType[RecurringPattern] `gorm:"type:jsonb"`
	ParentRequestId    *uuid.UUID                            `gorm:"type:uuid"`
	CompletedAt        *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
