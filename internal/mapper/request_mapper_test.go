package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
)

func TestRequestMapperRoundTrip(t *testing.T) {
	m := NewRequestMapper()

	providerId := uuid.New()
	cancelledAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	src := &entity.ServiceRequest{
		Id:                uuid.New(),
		CustomerId:        uuid.New(),
		ServiceProviderId: &providerId,
		ServiceType:       "plumbing",
		ServiceCategoryId: uuid.New(),
		ServiceTitle:      "Fix kitchen sink",
		Schedule: entity.Schedule{
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			TimeSlot:      constant.SlotMorning,
			PreferredTime: "09:00",
		},
		ServiceAddress: entity.Address{
			Street:  "12 MG Road",
			City:    "pune",
			State:   "maharashtra",
			Pincode: "411001",
		},
		EstimatedPrice: 500,
		PricingDetails: entity.PricingDetails{
			BaseCharge: 500,
			Breakdown:  "Standard Pipe Leakage Fix service (1 hour)",
		},
		PaymentStatus: "pending",
		Status:        constant.StatusCancelled,
		StatusHistory: []entity.StatusEntry{
			{Status: constant.StatusRequested, Timestamp: cancelledAt.Add(-time.Hour), Note: "Service request created", UpdatedBy: constant.ActorCustomer},
			{Status: constant.StatusCancelled, Timestamp: cancelledAt, Note: "Request cancelled by customer", UpdatedBy: constant.ActorCustomer},
		},
		CancellationReason: "Found another provider",
		CancelledBy:        constant.ActorCustomer,
		CancelledAt:        &cancelledAt,
	}

	got := m.ToEntity(m.ToModel(src))
	require.NotNil(t, got)

	assert.Equal(t, src.Id, got.Id)
	assert.Equal(t, src.CustomerId, got.CustomerId)
	require.NotNil(t, got.ServiceProviderId)
	assert.Equal(t, providerId, *got.ServiceProviderId)
	assert.Equal(t, constant.SlotMorning, got.Schedule.TimeSlot)
	assert.Equal(t, src.ServiceAddress, got.ServiceAddress)
	assert.Equal(t, src.PricingDetails, got.PricingDetails)
	assert.Equal(t, constant.StatusCancelled, got.Status)
	require.Len(t, got.StatusHistory, 2)
	assert.Equal(t, src.StatusHistory, got.StatusHistory)
	assert.Equal(t, constant.ActorCustomer, got.CancelledBy)
}

func TestRequestMapperNil(t *testing.T) {
	m := NewRequestMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
