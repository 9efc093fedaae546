package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	CategoriesKey = "blog:categories"
	CategoriesTTL = 10 * time.Minute
)

// Categories caches the category list of published posts in the shared
// cache. While the cache is disabled every call is a miss.
type Categories struct {
	ttl time.Duration
}

func NewCategories(ttl time.Duration) *Categories {
	return &Categories{ttl: ttl}
}

func (c *Categories) GetCategories() ([]string, bool) {
	raw, err := Get(CategoriesKey)
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, ErrDisabled) {
			log.Warnf("Error reading cached categories: %v", err)
		}
		return nil, false
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		log.Warnf("Discarding malformed cached categories: %v", err)
		return nil, false
	}
	return categories, true
}

func (c *Categories) SetCategories(categories []string) {
	if categories == nil {
		categories = []string{}
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := Set(CategoriesKey, raw, c.ttl); err != nil && !errors.Is(err, ErrDisabled) {
		log.Warnf("Error caching categories: %v", err)
	}
}

func (c *Categories) InvalidateCategories() {
	if err := Delete(CategoriesKey); err != nil && !errors.Is(err, ErrDisabled) {
		log.Warnf("Error invalidating cached categories: %v", err)
	}
}
