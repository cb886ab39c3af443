package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const catalogCountKey = "catalog:product_count"

// CatalogClient reads product counts from the external catalog service.
// Lookups are read-through with a time-bounded redis cache; the cache is
// optional and the TTL keeps a stale catalog from lingering.
type CatalogClient struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
	ttl     time.Duration
}

func NewCatalogClient(baseURL string, cache *redis.Client, ttl time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		ttl:     ttl,
	}
}

func (c *CatalogClient) ProductCount(ctx context.Context) (int, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, catalogCountKey).Result()
		if err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := c.fetchCount(ctx)
	if err != nil {
		return 0, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, catalogCountKey, strconv.Itoa(count), c.ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to cache catalog product count")
		}
	}
	return count, nil
}

func (c *CatalogClient) fetchCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/count", nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Count, nil
}
