package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeList(t *testing.T) {
	got := normalizeList([]string{" Plumbing ", "ELECTRICAL", "", "  "})
	assert.Equal(t, []string{"plumbing", "electrical"}, got)

	assert.Empty(t, normalizeList(nil))
}

func TestProviderSortColumns(t *testing.T) {
	assert.Equal(t, "average_rating", providerSortColumns["rating"])
	assert.Equal(t, "experience_years", providerSortColumns["experience"])
	assert.Equal(t, "total_jobs_completed", providerSortColumns["jobs"])

	_, ok := providerSortColumns["password"]
	assert.False(t, ok)
}
