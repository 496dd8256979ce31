package cocktaildb

import (
	"context"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/redis"
	"github.com/drinkgo/drinkgo-backend/internal/redismutex"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Value string `json:"value"`
}

func newTestCache(redisClient *redis.MockClient) *Cache {
	return NewCache(redisClient, redismutex.MockManager{})
}

func TestGetOrFetchLive(t *testing.T) {

	redisClient := &redis.MockClient{}
	cache := newTestCache(redisClient)

	var dst payload

	source, err := cache.GetOrFetch(context.Background(), "k", &dst, func() error {
		dst = payload{Value: "fetched"}
		return nil
	})

	assert.Nil(t, err)
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, "fetched", dst.Value)

	// both freshness tiers must be populated
	assert.Equal(t, `{"value":"fetched"}`, redisClient.Store[freshKeyPrefix+"k"])
	assert.Equal(t, `{"value":"fetched"}`, redisClient.Store[staleKeyPrefix+"k"])
}

func TestGetOrFetchFreshHitSkipsFetch(t *testing.T) {

	redisClient := &redis.MockClient{
		Store: map[string]string{freshKeyPrefix + "k": `{"value":"cached"}`},
	}
	cache := newTestCache(redisClient)

	var dst payload

	source, err := cache.GetOrFetch(context.Background(), "k", &dst, func() error {
		t.Fatal("fetch must not run on a fresh hit")
		return nil
	})

	assert.Nil(t, err)
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, "cached", dst.Value)
}

func TestGetOrFetchStaleFallback(t *testing.T) {

	redisClient := &redis.MockClient{
		Store: map[string]string{staleKeyPrefix + "k": `{"value":"old"}`},
	}
	cache := newTestCache(redisClient)

	var dst payload

	source, err := cache.GetOrFetch(context.Background(), "k", &dst, func() error {
		return assert.AnError
	})

	assert.Nil(t, err)
	assert.Equal(t, SourceStale, source)
	assert.Equal(t, "old", dst.Value)
}

func TestGetOrFetchUnavailable(t *testing.T) {

	redisClient := &redis.MockClient{}
	cache := newTestCache(redisClient)

	var dst payload

	source, err := cache.GetOrFetch(context.Background(), "k", &dst, func() error {
		return assert.AnError
	})

	assert.Nil(t, err)
	assert.Equal(t, SourceUnavailable, source)
}
