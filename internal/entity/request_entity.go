package entity

import (
	"time"

	"github.com/google/uuid"

	"hsms-be/internal/constant"
)

type Schedule struct {
	Date          time.Time
	TimeSlot      constant.TimeSlot
	PreferredTime string
}

type PricingDetails struct {
	BaseCharge       float64
	AdditionalCharge float64
	Breakdown        string
}

// StatusEntry is one line of a request's append-only audit trail. Entries are
// only ever appended, never edited or removed.
type StatusEntry struct {
	Status    constant.RequestStatus
	Timestamp time.Time
	Note      string
	UpdatedBy constant.Actor
}

type RecurringPattern struct {
	Frequency       string
	EndDate         *time.Time
	NextServiceDate *time.Time
}

type ServiceRequest struct {
	Id                 uuid.UUID
	CustomerId         uuid.UUID
	ServiceProviderId  *uuid.UUID
	ServiceType        string
	ServiceCategoryId  uuid.UUID
	ServiceTitle       string
	ServiceDescription string
	Schedule           Schedule
	ServiceAddress     Address
	BeforeImages       []string
	AfterImages        []string
	EstimatedPrice     float64
	FinalPrice         float64
	PricingDetails     PricingDetails
	PaymentStatus      string
	PaymentMethod      string
	Status             constant.RequestStatus
	StatusHistory      []StatusEntry
	CancellationReason string
	CancelledBy        constant.Actor
	CancelledAt        *time.Time
	IsRecurring        bool
	RecurringPattern   *RecurringPattern
	ParentRequestId    *uuid.UUID
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Transition moves the request to target after consulting the lifecycle table
// and appends the matching history entry. It is the only way status changes.
func (r *ServiceRequest) Transition(target constant.RequestStatus, actor constant.Actor, note string, now time.Time) error {
	if err := constant.CanTransition(r.Status, target); err != nil {
		return err
	}
	r.Status = target
	r.AppendHistory(target, actor, note, now)
	return nil
}

// AppendHistory records a lifecycle event. Reschedules append an entry with
// the unchanged status, so the trail covers every mutation, not just moves.
func (r *ServiceRequest) AppendHistory(status constant.RequestStatus, actor constant.Actor, note string, now time.Time) {
	r.StatusHistory = append(r.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: now,
		Note:      note,
		UpdatedBy: actor,
	})
}
