// Package redis caches per-symbol price series so repeated screening passes
// within the TTL skip both the database and the broker.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

const (
	defaultTTL = 5 * time.Minute

	// Breaker settings for shielding passes from a Redis outage.
	breakerMaxFailures  = 5
	breakerResetTimeout = 30 * time.Second
)

// CacheConfig configures the series cache.
type CacheConfig struct {
	Addr     string // Redis address, e.g. "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // entry lifetime, default 5m
}

// Cache is a read-through cache for daily price series. All methods are
// best-effort: a cache failure must never fail a screening pass.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
	cb     *CircuitBreaker
}

// Client returns the underlying Redis client for health checks.
func (c *Cache) Client() *goredis.Client { return c.client }

// New creates a series cache and pings the server.
func New(cfg CacheConfig) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	cb := NewCircuitBreaker(breakerMaxFailures, breakerResetTimeout)
	cb.OnStateChange = func(from, to State) {
		log.Printf("[redis] circuit breaker %s -> %s", from, to)
	}

	log.Printf("[redis] connected to %s", cfg.Addr)
	return &Cache{client: client, ttl: ttl, cb: cb}, nil
}

func seriesKey(symbol string, limit int) string {
	return fmt.Sprintf("series:%s:%d", symbol, limit)
}

// GetSeries returns the cached series for symbol, or nil on a miss.
// Corrupt entries are dropped and reported as a miss.
func (c *Cache) GetSeries(ctx context.Context, symbol string, limit int) []model.Candle {
	if c == nil {
		return nil
	}
	key := seriesKey(symbol, limit)
	var b []byte
	err := c.cb.Execute(func() error {
		var err error
		b, err = c.client.Get(ctx, key).Bytes()
		if err == goredis.Nil {
			// A miss is not a Redis failure.
			b = nil
			return nil
		}
		return err
	})
	if err != nil || len(b) == 0 {
		return nil
	}
	var candles []model.Candle
	if err := json.Unmarshal(b, &candles); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return nil
	}
	return candles
}

// SetSeries stores a series with the configured TTL. Best effort.
func (c *Cache) SetSeries(ctx context.Context, symbol string, limit int, candles []model.Candle) {
	if c == nil || len(candles) == 0 {
		return
	}
	b, err := json.Marshal(candles)
	if err != nil {
		return
	}
	err = c.cb.Execute(func() error {
		return c.client.Set(ctx, seriesKey(symbol, limit), b, c.ttl).Err()
	})
	if err != nil && err != ErrCircuitOpen {
		log.Printf("[redis] set %s: %v", symbol, err)
	}
}

// Close releases the client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
