package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
)

func TestTransitionAppendsHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := &ServiceRequest{Status: constant.StatusRequested}
	r.AppendHistory(constant.StatusRequested, constant.ActorCustomer, "Service request created", now)

	err := r.Transition(constant.StatusAssigned, constant.ActorProvider, "Accepted", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, constant.StatusAssigned, r.Status)
	require.Len(t, r.StatusHistory, 2)
	assert.Equal(t, constant.StatusAssigned, r.StatusHistory[1].Status)
	assert.Equal(t, constant.ActorProvider, r.StatusHistory[1].UpdatedBy)
	assert.Equal(t, "Accepted", r.StatusHistory[1].Note)
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	now := time.Now()
	r := &ServiceRequest{Status: constant.StatusCompleted}

	err := r.Transition(constant.StatusCancelled, constant.ActorCustomer, "too late", now)
	require.Error(t, err)
	assert.Equal(t, constant.StatusCompleted, r.Status)
	assert.Empty(t, r.StatusHistory)
}

func TestAppendHistoryWithUnchangedStatus(t *testing.T) {
	now := time.Now()
	r := &ServiceRequest{Status: constant.StatusAssigned}

	r.AppendHistory(r.Status, constant.ActorCustomer, "Rescheduled from 2026-03-01 to 2026-03-05 (morning)", now)
	require.Len(t, r.StatusHistory, 1)
	assert.Equal(t, constant.StatusAssigned, r.StatusHistory[0].Status)
	assert.Equal(t, constant.StatusAssigned, r.Status)
}

func TestFindCommonService(t *testing.T) {
	c := &ServiceCategory{
		Name: "Plumbing",
		CommonServices: []CommonService{
			{Name: "Tap Repair", TypicalPrice: 250, Duration: "30 min"},
			{Name: "Pipe Leakage Fix", TypicalPrice: 500, Duration: "1 hour"},
		},
	}

	cs := c.FindCommonService("tap repair")
	require.NotNil(t, cs)
	assert.Equal(t, 250.0, cs.TypicalPrice)

	assert.Nil(t, c.FindCommonService("drain cleaning"))
}

func TestPriceRangeMidpoint(t *testing.T) {
	r := PriceRange{Min: 200, Max: 2000}
	assert.Equal(t, 1100.0, r.Midpoint())
}
