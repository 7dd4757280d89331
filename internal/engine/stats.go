package engine

import (
	"sync"

	"mltrading-systemv1/internal/model"
)

// statsTracker accumulates the running trade statistics. Averages are
// maintained incrementally so recording stays O(1).
type statsTracker struct {
	mu sync.RWMutex

	totalTrades      int
	successfulTrades int
	totalProfit      float64
	avgConfidence    float64

	byStrategy map[string]*model.StrategyStats
}

func newStatsTracker() *statsTracker {
	return &statsTracker{byStrategy: make(map[string]*model.StrategyStats)}
}

// record folds one executed trade into the totals and the per-strategy
// bucket. A trade is a win when its net profit is positive.
func (s *statsTracker) record(t model.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalTrades++
	if t.NetProfit > 0 {
		s.successfulTrades++
	}
	s.totalProfit += t.NetProfit
	s.avgConfidence += (t.Confidence - s.avgConfidence) / float64(s.totalTrades)

	st, ok := s.byStrategy[t.Strategy]
	if !ok {
		st = &model.StrategyStats{}
		s.byStrategy[t.Strategy] = st
	}
	st.Trades++
	if t.NetProfit > 0 {
		st.Wins++
	}
	st.TotalProfit += t.NetProfit
	st.AvgConfidence += (t.Confidence - st.AvgConfidence) / float64(st.Trades)
}

// snapshot returns a value copy of the totals and per-strategy stats.
func (s *statsTracker) snapshot() model.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.Statistics{
		TotalTrades:         s.totalTrades,
		SuccessfulTrades:    s.successfulTrades,
		TotalProfit:         s.totalProfit,
		AverageConfidence:   s.avgConfidence,
		StrategyPerformance: make(map[string]model.StrategyStats, len(s.byStrategy)),
	}
	if s.totalTrades > 0 {
		out.WinRate = float64(s.successfulTrades) / float64(s.totalTrades) * 100
	}
	for name, st := range s.byStrategy {
		out.StrategyPerformance[name] = *st
	}
	return out
}

// strategyPerformance returns a copy of the per-strategy stats only.
func (s *statsTracker) strategyPerformance() map[string]model.StrategyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.StrategyStats, len(s.byStrategy))
	for name, st := range s.byStrategy {
		out[name] = *st
	}
	return out
}

// reset drops all accumulated statistics.
func (s *statsTracker) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalTrades = 0
	s.successfulTrades = 0
	s.totalProfit = 0
	s.avgConfidence = 0
	s.byStrategy = make(map[string]*model.StrategyStats)
}
