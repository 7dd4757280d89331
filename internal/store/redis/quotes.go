// Package redis caches the latest quote per exchange and symbol so other
// processes can read prices without holding a feed connection.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"mltrading-systemv1/internal/marketdata"
)

const defaultQuoteTTL = 30 * time.Second

// Config configures the quote cache.
type Config struct {
	Addr     string // e.g. "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // 0 = defaultQuoteTTL
}

// QuoteCache mirrors the latest quotes into Redis with a TTL.
type QuoteCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// Client returns the underlying Redis client for health checks.
func (c *QuoteCache) Client() *goredis.Client { return c.client }

// New creates a quote cache and pings the server.
func New(cfg Config) (*QuoteCache, error) {
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
		ttl = defaultQuoteTTL
	}

	log.Printf("[redis] connected to %s", cfg.Addr)
	return &QuoteCache{client: client, ttl: ttl}, nil
}

func quoteKey(exchange, symbol string) string {
	return "quote:" + exchange + ":" + symbol
}

// Store writes the quote under quote:<exchange>:<symbol> with the cache
// TTL. Errors are logged, not returned; a cache miss downstream is the
// acceptable failure mode.
func (c *QuoteCache) Store(ctx context.Context, q marketdata.Quote) {
	data, err := json.Marshal(q)
	if err != nil {
		log.Printf("[redis] marshal quote %s/%s: %v", q.Exchange, q.Symbol, err)
		return
	}
	if err := c.client.Set(ctx, quoteKey(q.Exchange, q.Symbol), data, c.ttl).Err(); err != nil {
		log.Printf("[redis] set %s: %v", quoteKey(q.Exchange, q.Symbol), err)
	}
}

// Lookup reads a cached quote. The second result is false on a miss or
// an unreadable entry.
func (c *QuoteCache) Lookup(ctx context.Context, exchange, symbol string) (marketdata.Quote, bool) {
	data, err := c.client.Get(ctx, quoteKey(exchange, symbol)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			log.Printf("[redis] get %s: %v", quoteKey(exchange, symbol), err)
		}
		return marketdata.Quote{}, false
	}

	var q marketdata.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		log.Printf("[redis] unmarshal %s: %v", quoteKey(exchange, symbol), err)
		return marketdata.Quote{}, false
	}
	return q, true
}

// Close closes the Redis client.
func (c *QuoteCache) Close() error {
	return c.client.Close()
}
