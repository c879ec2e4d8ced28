package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurgeCutoff(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cutoff := PurgeCutoff(now)

	assert.Equal(t, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), cutoff)

	deactivated29DaysAgo := now.AddDate(0, 0, -29)
	deactivated31DaysAgo := now.AddDate(0, 0, -31)

	// Still inside the grace window.
	assert.False(t, deactivated29DaysAgo.Before(cutoff))
	// Past the grace window, eligible for deletion.
	assert.True(t, deactivated31DaysAgo.Before(cutoff))
}

func TestNewCleanupServiceDefaults(t *testing.T) {
	svc := NewCleanupService(nil, nil, 0, 0).(*cleanupService)

	assert.Equal(t, 24*time.Hour, svc.interval)
	assert.Equal(t, 5*time.Second, svc.startupDelay)
}
