package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// FeedConfig holds configuration for the WS quote feed.
type FeedConfig struct {
	URL            string
	Symbols        []string
	ReconnectDelay time.Duration // base delay between reconnect attempts
}

// Feed connects to a WebSocket quote stream and pushes parsed quotes into
// the table and any optional sinks.
type Feed struct {
	cfg   FeedConfig
	table *Table

	// OnQuote is called for every parsed quote after the table update.
	// Used to fan quotes out to the Redis cache.
	OnQuote func(Quote)

	// OnReconnect is called each time the connection drops.
	OnReconnect func()
}

// NewFeed creates a feed writing into table.
func NewFeed(cfg FeedConfig, table *Table) *Feed {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 2 * time.Second
	}
	return &Feed{cfg: cfg, table: table}
}

// wireQuote is the JSON shape of one quote message on the stream.
type wireQuote struct {
	Exchange  string  `json:"exchange"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Volume24h float64 `json:"volume_24h"`
	TS        int64   `json:"ts"` // epoch milliseconds, optional
}

// Run connects and streams quotes until ctx is cancelled, reconnecting
// with linear backoff on failure.
func (f *Feed) Run(ctx context.Context) error {
	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := f.stream(ctx)
		if err == nil || ctx.Err() != nil {
			return ctx.Err()
		}

		attempt++
		if f.OnReconnect != nil {
			f.OnReconnect()
		}
		delay := f.cfg.ReconnectDelay * time.Duration(min(attempt, 5))
		log.Printf("[feed] stream error: %v, reconnecting in %s", err, delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (f *Feed) stream(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", f.cfg.URL, err)
	}
	defer conn.Close()
	log.Printf("[feed] connected to %s", f.cfg.URL)

	if len(f.cfg.Symbols) > 0 {
		sub := map[string]any{"op": "subscribe", "symbols": f.cfg.Symbols}
		if err := conn.WriteJSON(sub); err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
	}

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}

		var wq wireQuote
		if err := json.Unmarshal(data, &wq); err != nil {
			log.Printf("[feed] bad message: %v", err)
			continue
		}
		if wq.Symbol == "" || wq.Price <= 0 {
			continue
		}

		q := Quote{
			Exchange:  wq.Exchange,
			Symbol:    wq.Symbol,
			Price:     wq.Price,
			Volume24h: wq.Volume24h,
		}
		if wq.TS > 0 {
			q.Timestamp = time.Unix(0, wq.TS*int64(time.Millisecond)).UTC()
		}

		f.table.Update(q)
		if f.OnQuote != nil {
			f.OnQuote(q)
		}
	}
}
