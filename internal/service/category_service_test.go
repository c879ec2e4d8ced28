package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "plumbing", slugify("Plumbing"))
	assert.Equal(t, "home-deep-cleaning", slugify("  Home   Deep Cleaning  "))
	assert.Equal(t, "", slugify("   "))
}

func TestCategorySortColumns(t *testing.T) {
	assert.Equal(t, "name", categorySortColumns["name"])
	assert.Equal(t, "created_at", categorySortColumns["createdAt"])

	_, ok := categorySortColumns["slug"]
	assert.False(t, ok)
}
