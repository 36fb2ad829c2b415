package reference

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tamilansjob/jobportal/internal/domain"
)

// Cache keys. Categories are cached per sector filter.
const (
	cacheKeyDistricts      = "districts"
	cacheKeyQualifications = "qualifications"
	cacheKeyCategories     = "categories:" // + sector ("" for all)
)

// DefaultCacheSize bounds the number of cached reference lists; there are only
// a handful of distinct keys so the bound mostly exists for the sector variants.
const DefaultCacheSize = 16

// DefaultCacheTTL keeps reference lists fresh enough that a newly created
// record shows up quickly even if an invalidation is missed.
const DefaultCacheTTL = 30 * time.Second

// listCache is an in-memory cache for reference lists. Reference data changes
// rarely and is read on nearly every page load, so even a short TTL absorbs
// most of the read traffic.
type listCache struct {
	lru *expirable.LRU[string, any]
}

func newListCache(size int, ttl time.Duration) *listCache {
	return &listCache{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *listCache) getDistricts() ([]domain.District, bool) {
	v, found := c.lru.Get(cacheKeyDistricts)
	if !found {
		return nil, false
	}
	items, ok := v.([]domain.District)
	return items, ok
}

func (c *listCache) setDistricts(items []domain.District) {
	c.lru.Add(cacheKeyDistricts, items)
}

func (c *listCache) getQualifications() ([]domain.Qualification, bool) {
	v, found := c.lru.Get(cacheKeyQualifications)
	if !found {
		return nil, false
	}
	items, ok := v.([]domain.Qualification)
	return items, ok
}

func (c *listCache) setQualifications(items []domain.Qualification) {
	c.lru.Add(cacheKeyQualifications, items)
}

func (c *listCache) getCategories(sector string) ([]domain.Category, bool) {
	v, found := c.lru.Get(cacheKeyCategories + sector)
	if !found {
		return nil, false
	}
	items, ok := v.([]domain.Category)
	return items, ok
}

func (c *listCache) setCategories(sector string, items []domain.Category) {
	c.lru.Add(cacheKeyCategories+sector, items)
}

// clear drops every cached list. Called after any write so readers never see
// a list older than the TTL after a create or seed.
func (c *listCache) clear() {
	c.lru.Purge()
}
