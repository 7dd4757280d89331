// Package history keeps a bounded per-symbol price history for indicator
// computation.
package history

import "sync"

// DefaultCap is the number of prices retained per symbol.
const DefaultCap = 50

// Store is a concurrency-safe map of symbol → recent prices. When a push
// exceeds the cap the oldest price is dropped.
type Store struct {
	mu     sync.RWMutex
	cap    int
	prices map[string][]float64
}

// New creates a store with the given per-symbol cap. Non-positive caps
// fall back to DefaultCap.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Store{
		cap:    capacity,
		prices: make(map[string][]float64),
	}
}

// Push appends a price to the symbol's history, trimming the oldest entry
// once the cap is reached.
func (s *Store) Push(symbol string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := append(s.prices[symbol], price)
	if len(h) > s.cap {
		h = h[len(h)-s.cap:]
	}
	s.prices[symbol] = h
}

// Prices returns a copy of the symbol's history, oldest first. Unknown
// symbols yield a nil slice.
func (s *Store) Prices(symbol string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.prices[symbol]
	if h == nil {
		return nil
	}
	out := make([]float64, len(h))
	copy(out, h)
	return out
}

// Len returns the number of prices stored for the symbol.
func (s *Store) Len(symbol string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prices[symbol])
}

// Symbols returns the symbols with at least one stored price.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.prices))
	for sym := range s.prices {
		out = append(out, sym)
	}
	return out
}

// Reset drops all stored history.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = make(map[string][]float64)
}
