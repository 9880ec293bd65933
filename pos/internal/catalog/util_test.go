package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/farmasystem/pos/internal/backend"
	"github.com/farmasystem/pos/internal/config"
)

type (
	setupFunc    func(c context.Context, products []backend.Product) (*Service, *redis.Client, *testRedis.RedisContainer, *httptest.Server, *atomic.Int64)
	teardownFunc func(cache *redis.Client, redisContainer *testRedis.RedisContainer, server *httptest.Server)
)

func setup(t *testing.T) setupFunc {
	return func(c context.Context, products []backend.Product) (*Service, *redis.Client, *testRedis.RedisContainer, *httptest.Server, *atomic.Int64) {
		redisContainer, err := testRedis.Run(
			c,
			"redis:7.4.2-alpine3.21",
			testRedis.WithLogLevel(testRedis.LogLevelVerbose),
		)
		if err != nil {
			t.Fatalf("failed running redis container with error: %s", err)
		}

		redisConnStr, err := redisContainer.ConnectionString(c)
		if err != nil {
			t.Fatalf("failed getting redis connection string with error: %s", err)
		}

		redisOpt, err := redis.ParseURL(redisConnStr)
		if err != nil {
			t.Fatalf("failed parsing redis connection string with error: %s", err)
		}

		redisClient := redis.NewClient(redisOpt)
		if err = redisClient.Ping(c).Err(); err != nil {
			t.Fatalf("failed ping redis client with error: %s", err)
		}

		backendHits := &atomic.Int64{}
		server := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products", r.URL.Path)
				backendHits.Add(1)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(products)
			}),
		)

		backendClient := backend.NewClient(config.Backend{
			BaseURL:        server.URL,
			SubmitTimeout:  time.Second,
			RequestTimeout: time.Second,
		})
		catalogService := NewService(backendClient, redisClient, time.Hour)
		return catalogService, redisClient, redisContainer, server, backendHits
	}
}

func teardown(t *testing.T) teardownFunc {
	return func(cache *redis.Client, redisContainer *testRedis.RedisContainer, server *httptest.Server) {
		server.Close()
		_ = cache.Close()
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
}
