package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to RequestStatus
	}{
		{StatusRequested, StatusAssigned},
		{StatusRequested, StatusInProgress},
		{StatusRequested, StatusCancelled},
		{StatusAssigned, StatusInProgress},
		{StatusAssigned, StatusCancelled},
		{StatusInProgress, StatusCompleted},
	}
	for _, tc := range allowed {
		assert.NoError(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	blocked := []struct {
		from, to RequestStatus
	}{
		{StatusRequested, StatusCompleted},
		{StatusAssigned, StatusRequested},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusRequested},
		{StatusCompleted, StatusRequested},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusRequested},
		{StatusCancelled, StatusAssigned},
	}
	for _, tc := range blocked {
		assert.Error(t, CanTransition(tc.from, tc.to), "%s -> %s should be blocked", tc.from, tc.to)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(RequestStatus("bogus"), StatusAssigned)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusRequested.Terminal())
	assert.False(t, StatusAssigned.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.False(t, RequestStatus("bogus").Terminal())
}

func TestCancelRescheduleGates(t *testing.T) {
	assert.True(t, CanCancel(StatusRequested))
	assert.True(t, CanCancel(StatusAssigned))
	assert.False(t, CanCancel(StatusInProgress))
	assert.False(t, CanCancel(StatusCompleted))
	assert.False(t, CanCancel(StatusCancelled))

	assert.True(t, CanReschedule(StatusRequested))
	assert.True(t, CanReschedule(StatusAssigned))
	assert.False(t, CanReschedule(StatusInProgress))
	assert.False(t, CanReschedule(StatusCompleted))
}

func TestParseRequestStatus(t *testing.T) {
	status, err := ParseRequestStatus("  In_Progress ")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseRequestStatus("done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requested")
}

func TestParseTimeSlot(t *testing.T) {
	slot, err := ParseTimeSlot(" MORNING ")
	require.NoError(t, err)
	assert.Equal(t, SlotMorning, slot)

	_, err = ParseTimeSlot("midnight")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("serviceProvider")
	require.NoError(t, err)
	assert.Equal(t, RoleProvider, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
