package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleInput struct {
	Date          string `json:"date" validate:"required"`
	TimeSlot      string `json:"timeSlot" validate:"required"`
	PreferredTime string `json:"preferredTime"`
}

type CreateRequestRequest struct {
	ServiceType        string         `json:"serviceType" validate:"required"`
	ServiceCategoryId  uuid.UUID      `json:"serviceCategoryId" validate:"required"`
	ServiceTitle       string         `json:"serviceTitle" validate:"required"`
	ServiceDescription string         `json:"serviceDescription"`
	Schedule           *ScheduleInput `json:"schedule" validate:"required"`
	ServiceAddress     *AddressInput  `json:"serviceAddress" validate:"required"`
	BeforeImages       []string       `json:"beforeImages"`
	EstimatedPrice     float64        `json:"estimatedPrice"`
	CommonServiceName  string         `json:"commonServiceName"`
}

type CancelRequestRequest struct {
	Reason string `json:"reason"`
}

type RescheduleRequestRequest struct {
	Date          string `json:"date" validate:"required"`
	TimeSlot      string `json:"timeSlot" validate:"required"`
	PreferredTime string `json:"preferredTime"`
}

type CompleteRequestRequest struct {
	FinalPrice       float64  `json:"finalPrice"`
	AdditionalCharge float64  `json:"additionalCharge"`
	AfterImages      []string `json:"afterImages"`
	Note             string   `json:"note"`
}

type ListRequestsQuery struct {
	ListQuery
	Status string `query:"status"`
}

type ScheduleResponse struct {
	Date          time.Time `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	PreferredTime string    `json:"preferredTime,omitempty"`
}

type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
}

type RequestResponse struct {
	Id                 uuid.UUID             `json:"id"`
	CustomerId         uuid.UUID             `json:"customerId"`
	ServiceProviderId  *uuid.UUID            `json:"serviceProviderId,omitempty"`
	ServiceType        string                `json:"serviceType"`
	ServiceCategoryId  uuid.UUID             `json:"serviceCategoryId"`
	ServiceTitle       string                `json:"serviceTitle"`
	ServiceDescription string                `json:"serviceDescription,omitempty"`
	Schedule           ScheduleResponse      `json:"schedule"`
	ServiceAddress     AddressInput          `json:"serviceAddress"`
	BeforeImages       []string              `json:"beforeImages,omitempty"`
	AfterImages        []string              `json:"afterImages,omitempty"`
	EstimatedPrice     float64               `json:"estimatedPrice"`
	FinalPrice         float64               `json:"finalPrice"`
	PaymentStatus      string                `json:"paymentStatus,omitempty"`
	Status             string                `json:"status"`
	StatusHistory      []StatusEntryResponse `json:"statusHistory"`
	CancellationReason string                `json:"cancellationReason,omitempty"`
	IsRecurring        bool                  `json:"isRecurring"`
	CompletedAt        *time.Time            `json:"completedAt,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// CreateRequestResponse echoes the new request with the pricing and
// availability context computed during creation.
type CreateRequestResponse struct {
	Request      RequestResponse   `json:"request"`
	Pricing      RequestPricing    `json:"pricing"`
	Availability AvailabilityProbe `json:"availability"`
}

// RequestDetailResponse adds the derived timing/capability views.
type RequestDetailResponse struct {
	Request RequestResponse `json:"request"`
	Timing  RequestTiming   `json:"timing"`
	Status  StatusInfo      `json:"status"`
	Pricing RequestPricing  `json:"pricing"`
}

// RequestStatistics is the per-status breakdown returned alongside listings.
type RequestStatistics struct {
	Total      int64 `json:"total"`
	Requested  int64 `json:"requested"`
	Assigned   int64 `json:"assigned"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
}

// StatusInfo tells the customer what they can still do with a request.
type StatusInfo struct {
	Current       string `json:"current"`
	CanCancel     bool   `json:"canCancel"`
	CanModify     bool   `json:"canModify"`
	CanReschedule bool   `json:"canReschedule"`
	Message       string `json:"message"`
}

type RequestTiming struct {
	ScheduleDate  time.Time `json:"scheduleDate"`
	TimeSlot      string    `json:"timeSlot"`
	PreferredTime string    `json:"preferredTime,omitempty"`
	DaysRemaining int       `json:"daysRemaining"`
	IsUrgent      bool      `json:"isUrgent"`
	IsOverdue     bool      `json:"isOverdue"`
}

type RequestPricing struct {
	EstimatedPrice float64 `json:"estimatedPrice"`
	FinalPrice     float64 `json:"finalPrice"`
	PaymentStatus  string  `json:"paymentStatus,omitempty"`
	Breakdown      string  `json:"breakdown,omitempty"`
}

// AvailabilityProbe reports whether matching providers exist at creation time.
// Informational only; nothing is assigned automatically.
type AvailabilityProbe struct {
	HasAvailableProviders   bool   `json:"hasAvailableProviders"`
	AvailableProvidersCount int64  `json:"availableProvidersCount"`
	Message                 string `json:"message"`
}
