package cocktaildb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/redis"
	"github.com/drinkgo/drinkgo-backend/internal/redismutex"
)

//Source Where the returned data came from. The degraded state is explicit so the client can
//tell live data from a stale copy, instead of being silently served placeholders.
type Source string

const (
	//SourceLive Fresh data from the API.
	SourceLive Source = "live"
	//SourceStale Cached copy, the API was not reachable.
	SourceStale Source = "stale"
	//SourceUnavailable No data at all, the API was not reachable and nothing was cached.
	SourceUnavailable Source = "unavailable"
)

const freshKeyPrefix = "cocktaildb:fresh:"
const staleKeyPrefix = "cocktaildb:stale:"

//Cache Redis-backed cache of recipe API responses with explicit freshness.
type Cache struct {
	Redis    redis.Client
	Mutex    redismutex.MutexManager
	FreshTTL time.Duration
	StaleTTL time.Duration
}

//NewCache Creates cache with default TTLs.
func NewCache(redisClient redis.Client, mutexManager redismutex.MutexManager) *Cache {
	return &Cache{
		Redis:    redisClient,
		Mutex:    mutexManager,
		FreshTTL: 10 * time.Minute,
		StaleTTL: 24 * time.Hour,
	}
}

//GetOrFetch Fills dst from the fresh cache, or via fetch, or from the stale cache, in that
//order. The fetch callback must fill dst itself; the cache then remembers the marshalled
//value. Returns where the data came from.
func (c *Cache) GetOrFetch(ctx context.Context, key string, dst interface{}, fetch func() error) (Source, error) {
	logger := logging.FromContext(ctx).Named("cocktaildb.cache")

	if hit := c.tryKey(ctx, freshKeyPrefix+key, dst); hit {
		return SourceLive, nil
	}

	// Refresh under a distributed lock so concurrent misses don't hammer the API.
	mutex, err := c.Mutex.Lock("cocktaildb:refresh:" + key)
	if err != nil {
		logger.Warnf("Could not acquire refresh lock for %v: %v", key, err)
	} else if mutex != nil {
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				logger.Warnf("Could not release refresh lock for %v: %v", key, err)
			}
		}()

		// Somebody else may have refreshed while this instance waited for the lock.
		if hit := c.tryKey(ctx, freshKeyPrefix+key, dst); hit {
			return SourceLive, nil
		}
	}

	fetchErr := fetch()
	if fetchErr == nil {
		payload, err := json.Marshal(dst)
		if err != nil {
			return SourceLive, err
		}

		if err := c.Redis.Set(freshKeyPrefix+key, string(payload), c.FreshTTL); err != nil {
			logger.Warnf("Could not cache fresh %v: %v", key, err)
		}
		if err := c.Redis.Set(staleKeyPrefix+key, string(payload), c.StaleTTL); err != nil {
			logger.Warnf("Could not cache stale %v: %v", key, err)
		}

		return SourceLive, nil
	}

	logger.Warnf("Could not fetch %v: %v", key, fetchErr)

	if hit := c.tryKey(ctx, staleKeyPrefix+key, dst); hit {
		return SourceStale, nil
	}

	return SourceUnavailable, nil
}

func (c *Cache) tryKey(ctx context.Context, key string, dst interface{}) bool {
	logger := logging.FromContext(ctx).Named("cocktaildb.cache")

	value, err := c.Redis.Get(key)
	if err != nil {
		if !redis.IsNotFound(err) {
			logger.Warnf("Could not read cache key %v: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(value), dst); err != nil {
		logger.Warnf("Could not parse cache key %v: %v", key, err)
		return false
	}

	return true
}
