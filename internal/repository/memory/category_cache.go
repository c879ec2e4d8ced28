package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"hsms-be/internal/entity"
)

const activeCategoriesKey = "categories:active"

// CategoryCache holds the active category list between reads. The list is
// small and changes only through admin mutations, which call Invalidate.
type CategoryCache struct {
	cache *cache.Cache
}

func NewCategoryCache(ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := cache.New(ttl, 2*ttl)
	return &CategoryCache{
		cache: c,
	}
}

func (r *CategoryCache) SaveActive(categories []*entity.ServiceCategory) {
	r.cache.Set(activeCategoriesKey, categories, cache.DefaultExpiration)
}

func (r *CategoryCache) GetActive() ([]*entity.ServiceCategory, bool) {
	if x, found := r.cache.Get(activeCategoriesKey); found {
		return x.([]*entity.ServiceCategory), true
	}
	return nil, false
}

func (r *CategoryCache) Invalidate() {
	r.cache.Delete(activeCategoriesKey)
}
