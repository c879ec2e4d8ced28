package constant

import (
	"fmt"
	"strings"
)

// Role is the closed set of authenticated account kinds. Dispatch on Role is
// done by exhaustive switch, never by raw string comparison on token fields.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "serviceProvider"
	RoleAdmin    Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleProvider:
		return RoleProvider, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// TimeSlot is the enumerated schedule window on a service request.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

func ParseTimeSlot(raw string) (TimeSlot, error) {
	s := TimeSlot(strings.TrimSpace(strings.ToLower(raw)))
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return s, nil
	}
	return "", fmt.Errorf("invalid time slot %q, must be one of: %s, %s, %s", raw, SlotMorning, SlotAfternoon, SlotEvening)
}

// AvailabilityStatus is a provider's self-reported availability.
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityBusy      AvailabilityStatus = "busy"
	AvailabilityOffline   AvailabilityStatus = "offline"
)

func ParseAvailability(raw string) (AvailabilityStatus, error) {
	s := AvailabilityStatus(strings.TrimSpace(strings.ToLower(raw)))
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline:
		return s, nil
	}
	return "", fmt.Errorf("invalid availability %q, must be one of: %s, %s, %s", raw, AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline)
}

// NotificationType mirrors the notification document's type enum.
type NotificationType string

const (
	NotifRequestCreated     NotificationType = "request_created"
	NotifRequestAssigned    NotificationType = "request_assigned"
	NotifRequestStarted     NotificationType = "request_started"
	NotifRequestCompleted   NotificationType = "request_completed"
	NotifRequestCancelled   NotificationType = "request_cancelled"
	NotifRequestRescheduled NotificationType = "request_rescheduled"
)

// GracePeriodDays is the window after deactivation during which an account can
// be reactivated before the cleanup sweep removes it.
const GracePeriodDays = 30
