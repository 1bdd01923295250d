package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobboard/pkg/circuitbreaker"
	"jobboard/pkg/logger"
)

// Cache key constants
const (
	JobPrefix        = "job"
	JobByIDKey       = "job:id:%d"
	JobListKey       = "job:list:all"
	JobByEmployerKey = "job:list:employer:%d"
)

// Cache expiration times
const (
	ShortExpiration  = 5 * time.Minute  // Frequently changing data
	MediumExpiration = 30 * time.Minute // Moderately changing data
	LongExpiration   = 2 * time.Hour    // Rarely changing data
)

// CacheStrategy defines different caching patterns
type CacheStrategy interface {
	// Read-through: Check cache first, if miss then fetch from source and cache it
	ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error

	// Write-through: Write to source first, then refresh the cache
	WriteThrough(ctx context.Context, key string, value interface{}, writeFunc func(value interface{}) error, expiration time.Duration) error
}

// CacheManager implements various caching strategies. Cache calls run
// behind a circuit breaker; while Redis is flapping the breaker stays open
// and reads go straight to the source.
type CacheManager struct {
	cache   Cache
	breaker *circuitbreaker.CircuitBreaker
	logger  logger.Logger
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cache Cache, logger logger.Logger) CacheStrategy {
	cb := circuitbreaker.New(circuitbreaker.Settings{
		Name:        "cache",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		IsSuccessful: func(err error) bool {
			return err == nil || err == ErrCacheMiss
		},
	})

	return &CacheManager{
		cache:   cache,
		breaker: cb,
		logger:  logger,
	}
}

// ReadThrough implements read-through caching pattern
func (cm *CacheManager) ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	_, err := cm.breaker.Execute(func() (interface{}, error) {
		return nil, cm.cache.Get(ctx, key, dest)
	})
	if err == nil {
		return nil
	}

	if err != ErrCacheMiss && err != circuitbreaker.ErrCircuitBreakerOpen && err != circuitbreaker.ErrTooManyRequests {
		cm.logger.Error("Cache error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Continue to fetch from source despite cache error
	}

	data, err := fetchFunc()
	if err != nil {
		return err
	}

	if _, setErr := cm.breaker.Execute(func() (interface{}, error) {
		return nil, cm.cache.Set(ctx, key, data, expiration)
	}); setErr != nil && setErr != circuitbreaker.ErrCircuitBreakerOpen && setErr != circuitbreaker.ErrTooManyRequests {
		cm.logger.Error("Cache set error in read-through", map[string]interface{}{
			"key":   key,
			"error": setErr.Error(),
		})
		// Don't fail the request if cache set fails
	}

	return copyData(data, dest)
}

// WriteThrough implements write-through caching pattern
func (cm *CacheManager) WriteThrough(ctx context.Context, key string, value interface{}, writeFunc func(value interface{}) error, expiration time.Duration) error {
	err := writeFunc(value)
	if err != nil {
		return err
	}

	if _, setErr := cm.breaker.Execute(func() (interface{}, error) {
		return nil, cm.cache.Set(ctx, key, value, expiration)
	}); setErr != nil && setErr != circuitbreaker.ErrCircuitBreakerOpen && setErr != circuitbreaker.ErrTooManyRequests {
		cm.logger.Error("Cache set error in write-through", map[string]interface{}{
			"key":   key,
			"error": setErr.Error(),
		})
		// Don't fail the request if cache set fails, source is already updated
	}

	return nil
}

// copyData moves fetched data into the caller's destination via JSON,
// matching what a cache hit would have produced.
func copyData(data interface{}, dest interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Helper functions for cache key generation
func JobCacheKey(jobID int64) string {
	return fmt.Sprintf(JobByIDKey, jobID)
}

func JobListCacheKey() string {
	return JobListKey
}

func JobListByEmployerCacheKey(employerID int64) string {
	return fmt.Sprintf(JobByEmployerKey, employerID)
}
