// Package marketdata supplies quotes, symbol/exchange enablement and
// cross-exchange arbitrage scanning to the trading engine.
package marketdata

import (
	"context"
	"sync"
	"time"

	"mltrading-systemv1/internal/model"
)

// Quote is the latest observed price for a symbol on one exchange.
type Quote struct {
	Exchange  string    `json:"exchange"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Volume24h float64   `json:"volume_24h"`
	Timestamp time.Time `json:"timestamp"`
}

// Provider is the market-data collaborator the engine consumes.
type Provider interface {
	// EnabledSymbols returns the symbols currently enabled for trading.
	EnabledSymbols(ctx context.Context) ([]string, error)

	// EnabledExchanges returns the exchanges currently enabled.
	EnabledExchanges(ctx context.Context) ([]string, error)

	// Quote returns the latest quote for the symbol on the exchange and
	// whether a usable quote exists.
	Quote(ctx context.Context, exchange, symbol string) (Quote, bool)

	// FindArbitrageOpportunities scans enabled exchanges for profitable
	// cross-exchange spreads on the symbol, best first.
	FindArbitrageOpportunities(ctx context.Context, symbol string, amount float64) ([]model.Opportunity, error)
}

// Table is an in-memory Provider fed by a quote feed. Quotes older than
// the staleness window are treated as missing.
type Table struct {
	mu        sync.RWMutex
	quotes    map[string]Quote // key: exchange|symbol
	symbols   []string
	exchanges []string
	staleness time.Duration
	now       func() time.Time
}

// TableConfig configures a quote table.
type TableConfig struct {
	Symbols   []string
	Exchanges []string
	Staleness time.Duration // 0 = quotes never go stale
}

// NewTable creates an empty quote table for the given universe.
func NewTable(cfg TableConfig) *Table {
	return &Table{
		quotes:    make(map[string]Quote),
		symbols:   append([]string(nil), cfg.Symbols...),
		exchanges: append([]string(nil), cfg.Exchanges...),
		staleness: cfg.Staleness,
		now:       time.Now,
	}
}

func key(exchange, symbol string) string { return exchange + "|" + symbol }

// Update stores a quote, stamping it with the current time when the feed
// did not supply one.
func (t *Table) Update(q Quote) {
	if q.Timestamp.IsZero() {
		q.Timestamp = t.now()
	}
	t.mu.Lock()
	t.quotes[key(q.Exchange, q.Symbol)] = q
	t.mu.Unlock()
}

// EnabledSymbols returns the configured symbol universe.
func (t *Table) EnabledSymbols(context.Context) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.symbols...), nil
}

// EnabledExchanges returns the configured exchange universe.
func (t *Table) EnabledExchanges(context.Context) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.exchanges...), nil
}

// Quote returns the latest fresh quote for the pair.
func (t *Table) Quote(_ context.Context, exchange, symbol string) (Quote, bool) {
	t.mu.RLock()
	q, ok := t.quotes[key(exchange, symbol)]
	t.mu.RUnlock()

	if !ok {
		return Quote{}, false
	}
	if t.staleness > 0 && t.now().Sub(q.Timestamp) > t.staleness {
		return Quote{}, false
	}
	return q, true
}
