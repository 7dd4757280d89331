// Package engine runs the periodic trading loop: refresh settings, update
// price history and indicators, evaluate every strategy for every symbol,
// and execute the opportunities that clear the confidence threshold.
package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"mltrading-systemv1/internal/history"
	"mltrading-systemv1/internal/marketdata"
	"mltrading-systemv1/internal/metrics"
	"mltrading-systemv1/internal/mlmodel"
	"mltrading-systemv1/internal/model"
	"mltrading-systemv1/internal/notification"
	"mltrading-systemv1/internal/settings"
	"mltrading-systemv1/internal/strategy"
)

// Lifecycle messages returned to callers.
const (
	msgAlreadyActive = "auto trading is already active"
	msgStarted       = "auto trading started"
	msgStopped       = "auto trading stopped"
	msgNotActive     = "auto trading is not active"
)

const defaultCallTimeout = 2 * time.Second

// TradeSink persists executed trades. Sink failures do not undo the
// statistics update for the trade.
type TradeSink interface {
	RecordTrade(ctx context.Context, t model.Trade) error
}

// Config wires the engine's collaborators. Market and Settings are
// required; everything else is optional.
type Config struct {
	Market   marketdata.Provider
	Settings settings.Source
	Sink     TradeSink
	Notifier notification.Notifier
	Metrics  *metrics.Metrics
	Health   *metrics.HealthStatus
	Logger   *slog.Logger
	Rand     *rand.Rand

	// CallTimeout bounds each collaborator call. 0 = 2s.
	CallTimeout time.Duration
	// HistoryCap bounds per-symbol price history. 0 = 50.
	HistoryCap int
}

// Engine is the trading decision engine. All exported methods are safe
// for concurrent use.
type Engine struct {
	log      *slog.Logger
	market   marketdata.Provider
	source   settings.Source
	sink     TradeSink
	notifier notification.Notifier
	met      *metrics.Metrics
	health   *metrics.HealthStatus

	callTimeout time.Duration
	history     *history.Store
	stats       *statsTracker

	// rng is only touched from the cycle goroutine; one cycle runs at
	// a time, so it needs no locking.
	rng *rand.Rand

	mu         sync.Mutex
	settings   model.EngineSettings
	threshold  float64 // percent, [50,95]
	active     bool
	cancel     context.CancelFunc
	done       chan struct{}
	cycleSeq   uint64
	indicators map[string]model.IndicatorSnapshot

	inFlight atomic.Bool
}

// New creates an engine. The initial settings come from the source; a
// load failure falls back to defaults and is retried every cycle.
func New(cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	e := &Engine{
		log:         log,
		market:      cfg.Market,
		source:      cfg.Settings,
		sink:        cfg.Sink,
		notifier:    cfg.Notifier,
		met:         cfg.Metrics,
		health:      cfg.Health,
		callTimeout: timeout,
		history:     history.New(cfg.HistoryCap),
		stats:       newStatsTracker(),
		rng:         rng,
		settings:    model.DefaultSettings(),
		indicators:  make(map[string]model.IndicatorSnapshot),
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if s, err := cfg.Settings.Load(ctx); err == nil {
		e.settings = s.Normalize()
	} else {
		log.Warn("initial settings load failed, using defaults", "err", err)
	}
	e.threshold = e.settings.ConfidenceThreshold

	return e
}

// Start begins periodic trading cycles. periodMs overrides the settings'
// trade frequency when positive. Starting an active engine is a no-op
// reported through the result, not an error.
func (e *Engine) Start(periodMs int) model.ControlResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return model.ControlResult{Success: false, Message: msgAlreadyActive}
	}

	if periodMs <= 0 {
		periodMs = e.settings.TradeFrequencyMs
	}
	interval := time.Duration(periodMs) * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	e.active = true
	if e.health != nil {
		e.health.SetEngineActive(true)
	}

	go e.run(ctx, interval, e.done)

	e.log.Info("engine started", "interval_ms", periodMs, "threshold_pct", e.threshold)
	return model.ControlResult{Success: true, Message: msgStarted, IntervalMs: periodMs}
}

// Stop halts the cycle loop and waits for an in-flight cycle to finish.
func (e *Engine) Stop() model.ControlResult {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return model.ControlResult{Success: false, Message: msgNotActive}
	}
	cancel, done := e.cancel, e.done
	e.active = false
	e.cancel = nil
	e.done = nil
	e.mu.Unlock()

	cancel()
	<-done

	if e.health != nil {
		e.health.SetEngineActive(false)
	}
	e.log.Info("engine stopped")
	return model.ControlResult{Success: true, Message: msgStopped}
}

// SetConfidenceThreshold updates the acceptance cutoff, clamping the
// requested percentage into [50, 95].
func (e *Engine) SetConfidenceThreshold(percent float64) model.ControlResult {
	clamped := model.ClampThreshold(percent)

	e.mu.Lock()
	e.threshold = clamped
	e.mu.Unlock()

	e.log.Info("confidence threshold updated", "requested_pct", percent, "applied_pct", clamped)
	return model.ControlResult{Success: true, Message: "confidence threshold updated", Threshold: clamped}
}

// GetStatistics returns a snapshot of the trading record plus the current
// engine state.
func (e *Engine) GetStatistics() model.Statistics {
	stats := e.stats.snapshot()

	e.mu.Lock()
	stats.Active = e.active
	stats.ConfidenceThreshold = e.threshold
	e.mu.Unlock()

	stats.ActiveStrategies = len(strategy.All())
	stats.ActiveModels = mlmodel.Count()
	return stats
}

// GetStrategyPerformance returns a copy of the per-strategy statistics.
func (e *Engine) GetStrategyPerformance() map[string]model.StrategyStats {
	return e.stats.strategyPerformance()
}

// ResetStatistics clears the accumulated trading record. The engine's
// lifecycle state and threshold are untouched.
func (e *Engine) ResetStatistics() {
	e.stats.reset()
	e.log.Info("statistics reset")
}

// Active reports whether the cycle loop is running.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Engine) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.runCycle(ctx)
		}
	}
}

// callCtx derives a bounded context for one collaborator call.
func (e *Engine) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.callTimeout)
}
