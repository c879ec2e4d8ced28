package constant

import (
	"fmt"
	"strings"
)

// RequestStatus is the closed set of service-request states.
type RequestStatus string

const (
	StatusRequested  RequestStatus = "requested"
	StatusAssigned   RequestStatus = "assigned"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// Actor identifies who performed a status mutation.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorProvider Actor = "service_provider"
	ActorSystem   Actor = "system"
)

// transitions is the authoritative state machine for service requests.
// Every status mutation must pass through CanTransition; handlers never
// duplicate this allow-list inline.
var transitions = map[RequestStatus][]RequestStatus{
	StatusRequested:  {StatusAssigned, StatusInProgress, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// reschedulable are the source states from which a customer may cancel or
// reschedule. Both actions share the same gate.
var reschedulable = map[RequestStatus]bool{
	StatusRequested: true,
	StatusAssigned:  true,
}

func (s RequestStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s RequestStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether moving from s to target is a legal edge.
// The returned error names the actual blocking state so callers can echo it.
func CanTransition(s, target RequestStatus) error {
	allowed, ok := transitions[s]
	if !ok {
		return fmt.Errorf("unknown request status %q", s)
	}
	for _, t := range allowed {
		if t == target {
			return nil
		}
	}
	return fmt.Errorf("cannot move request from %q to %q", s, target)
}

// CanCancel reports whether a request in state s may be cancelled.
func CanCancel(s RequestStatus) bool {
	return reschedulable[s]
}

// CanReschedule reports whether a request in state s may be rescheduled.
func CanReschedule(s RequestStatus) bool {
	return reschedulable[s]
}

func ParseRequestStatus(raw string) (RequestStatus, error) {
	s := RequestStatus(strings.TrimSpace(strings.ToLower(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q, must be one of: %s", raw, strings.Join(RequestStatusNames(), ", "))
	}
	return s, nil
}

// RequestStatusNames returns the status set in lifecycle order.
func RequestStatusNames() []string {
	return []string{
		string(StatusRequested),
		string(StatusAssigned),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusCancelled),
	}
}
