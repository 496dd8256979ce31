package redis

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	redisclient "github.com/go-redis/redis/v8"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
)

var redisClient *Connection
var ctx context.Context

type lazyConnection func() *redisclient.Client

//Connection Contains lazy Redis connection
type Connection struct {
	inner lazyConnection
}

func init() {
	ctx = context.Background()

	connect := func() *redisclient.Client {
		logger := logging.FromContext(ctx).Named("redis.connect")

		logger.Debug("Connecting to Redis")

		addr, ok := os.LookupEnv("DRINKGO_REDIS_ADDR")
		if !ok {
			panic("DRINKGO_REDIS_ADDR env missing")
		}

		client := redisclient.NewClient(&redisclient.Options{
			Addr: addr,
			DB:   0,
		})

		_, err := client.Ping(ctx).Result()
		if err != nil {
			err := fmt.Errorf("Connection to Redis failed:%v", err)
			logger.Error(err)
			panic(err)
		}

		logger.Debugf("Connected to Redis at %v", addr)

		return client
	}

	var conn *redisclient.Client
	var once sync.Once

	initInner := func() *redisclient.Client {
		once.Do(func() {
			conn = connect()
		})
		return conn
	}

	redisClient = &Connection{
		inner: initInner,
	}
}

//Client Redis client abstraction
type Client interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, ttl time.Duration) error
}

//ClientImpl Real Redis client
type ClientImpl struct{}

//Get Get value from Redis
func (r ClientImpl) Get(key string) (string, error) {
	return redisClient.inner().Get(ctx, key).Result()
}

//Set Set value to Redis. TTL value 0 means forever.
func (r ClientImpl) Set(key string, value interface{}, ttl time.Duration) error {
	return redisClient.inner().Set(ctx, key, value, ttl).Err()
}

//IsNotFound Returns true when the error just means the key does not exist.
func IsNotFound(err error) bool {
	return err == redisclient.Nil
}

//MockClient In-memory Redis client for unit tests.
type MockClient struct {
	mu    sync.Mutex
	Store map[string]string
}

//Get Get value from memory
func (r *MockClient) Get(key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.Store[key]; ok {
		return v, nil
	}
	return "", redisclient.Nil
}

//Set Set value to memory, TTL is ignored
func (r *MockClient) Set(key string, value interface{}, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Store == nil {
		r.Store = make(map[string]string)
	}
	r.Store[key] = fmt.Sprintf("%v", value)
	return nil
}
