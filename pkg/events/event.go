package events

import "time"

// Event type codes carried on the in-process bus.
const (
	TypeCustomerDeactivated = "CUSTOMER_DEACTIVATED"
	TypeProviderDeactivated = "PROVIDER_DEACTIVATED"
	TypeProviderSuspended   = "PROVIDER_SUSPENDED"
	TypeProviderUnsuspended = "PROVIDER_UNSUSPENDED"

	TypeRequestCreated     = "REQUEST_CREATED"
	TypeRequestAssigned    = "REQUEST_ASSIGNED"
	TypeRequestStarted     = "REQUEST_STARTED"
	TypeRequestCompleted   = "REQUEST_COMPLETED"
	TypeRequestCancelled   = "REQUEST_CANCELLED"
	TypeRequestRescheduled = "REQUEST_RESCHEDULED"
)

// Event is the contract for everything published on the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func NewBaseEvent(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = make(map[string]interface{})
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Envelope is the wire form of an Event on the pub/sub channel.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

func ToEnvelope(e Event) Envelope {
	return Envelope{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	}
}

func (env Envelope) ToEvent() BaseEvent {
	return BaseEvent{
		Type:       env.Type,
		Data:       env.Data,
		OccurredAt: env.OccurredAt,
	}
}
