package marketdata

import (
	"context"
	"log"
	"math/rand"
	"time"
)

// SimFeed generates random-walk quotes for the table's universe. It
// stands in for the WS feed when no live endpoint is configured.
type SimFeed struct {
	table    *Table
	rng      *rand.Rand
	interval time.Duration
	prices   map[string]float64

	OnQuote func(Quote)
}

// Reference starting prices for common symbols. Unknown symbols start
// at 100.
var simBasePrices = map[string]float64{
	"BTC/USD": 65000,
	"ETH/USD": 3400,
	"SOL/USD": 150,
	"XRP/USD": 0.52,
}

// NewSimFeed creates a simulator ticking every interval.
func NewSimFeed(table *Table, rng *rand.Rand, interval time.Duration) *SimFeed {
	if interval <= 0 {
		interval = time.Second
	}
	return &SimFeed{
		table:    table,
		rng:      rng,
		interval: interval,
		prices:   make(map[string]float64),
	}
}

// Run emits quotes until ctx is cancelled.
func (s *SimFeed) Run(ctx context.Context) error {
	log.Printf("[sim] quote simulator started, interval=%s", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *SimFeed) tick(ctx context.Context) {
	symbols, _ := s.table.EnabledSymbols(ctx)
	exchanges, _ := s.table.EnabledExchanges(ctx)

	for _, sym := range symbols {
		base, ok := s.prices[sym]
		if !ok {
			base = simBasePrices[sym]
			if base == 0 {
				base = 100
			}
		}
		// Random walk, ±0.5% per tick.
		base *= 1 + (s.rng.Float64()-0.5)*0.01
		s.prices[sym] = base

		for _, ex := range exchanges {
			// Small per-exchange dislocation so spreads exist.
			q := Quote{
				Exchange:  ex,
				Symbol:    sym,
				Price:     base * (1 + (s.rng.Float64()-0.5)*0.004),
				Volume24h: 100000 + s.rng.Float64()*900000,
				Timestamp: time.Now(),
			}
			s.table.Update(q)
			if s.OnQuote != nil {
				s.OnQuote(q)
			}
		}
	}
}
