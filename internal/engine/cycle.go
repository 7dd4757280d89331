package engine

import (
	"context"
	"time"

	"mltrading-systemv1/internal/indicator"
	"mltrading-systemv1/internal/logger"
	"mltrading-systemv1/internal/model"
	"mltrading-systemv1/internal/strategy"
)

// runCycle executes one trading cycle. A cycle that is still running
// when the next tick fires causes the new tick to be skipped, never
// queued. Panics inside a cycle are recovered so one bad cycle cannot
// kill the loop.
func (e *Engine) runCycle(ctx context.Context) {
	if !e.inFlight.CompareAndSwap(false, true) {
		e.log.Warn("previous cycle still running, skipping")
		if e.met != nil {
			e.met.CyclesSkipped.Inc()
		}
		return
	}
	defer e.inFlight.Store(false)

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("cycle panicked", "panic", r)
			if e.met != nil {
				e.met.CyclePanics.Inc()
			}
		}
	}()

	e.mu.Lock()
	e.cycleSeq++
	seq := e.cycleSeq
	e.mu.Unlock()

	start := time.Now()
	ctx = logger.WithCycleID(ctx, logger.GenerateCycleID(seq, start))

	defer func() {
		if e.met != nil {
			e.met.CyclesTotal.Inc()
			e.met.CycleDur.Observe(time.Since(start).Seconds())
		}
		if e.health != nil {
			e.health.SetLastCycleTime(time.Now())
		}
	}()

	e.refreshSettings(ctx)

	symbols, exchanges, ok := e.universe(ctx)
	if !ok {
		return
	}

	e.updateHistories(ctx, symbols, exchanges)

	e.evaluate(ctx, symbols, exchanges)
}

// refreshSettings reloads runtime settings at the top of the cycle. On
// failure the previous settings stay in force. The confidence threshold
// is owned by SetConfidenceThreshold and is not overwritten here.
func (e *Engine) refreshSettings(ctx context.Context) {
	cctx, cancel := e.callCtx(ctx)
	defer cancel()

	s, err := e.source.Load(cctx)
	if err != nil {
		e.log.Warn("settings reload failed, keeping previous", append(logger.LogWithCycle(ctx), "err", err)...)
		return
	}

	e.mu.Lock()
	e.settings = s.Normalize()
	e.mu.Unlock()
}

// universe fetches the enabled symbols and exchanges. An empty universe
// aborts the cycle.
func (e *Engine) universe(ctx context.Context) (symbols, exchanges []string, ok bool) {
	cctx, cancel := e.callCtx(ctx)
	defer cancel()

	symbols, err := e.market.EnabledSymbols(cctx)
	if err != nil {
		e.log.Warn("enabled symbols unavailable", append(logger.LogWithCycle(ctx), "err", err)...)
		return nil, nil, false
	}
	exchanges, err = e.market.EnabledExchanges(cctx)
	if err != nil {
		e.log.Warn("enabled exchanges unavailable", append(logger.LogWithCycle(ctx), "err", err)...)
		return nil, nil, false
	}
	if len(symbols) == 0 || len(exchanges) == 0 {
		e.log.Warn("no enabled symbols or exchanges, skipping cycle", logger.LogWithCycle(ctx)...)
		return nil, nil, false
	}
	return symbols, exchanges, true
}

// updateHistories pushes the cross-exchange average price for each symbol
// and recomputes its indicator snapshot.
func (e *Engine) updateHistories(ctx context.Context, symbols, exchanges []string) {
	cctx, cancel := e.callCtx(ctx)
	defer cancel()

	tracked := 0
	for _, sym := range symbols {
		sum, n := 0.0, 0
		volSum, volN := 0.0, 0
		for _, ex := range exchanges {
			if q, ok := e.market.Quote(cctx, ex, sym); ok && q.Price > 0 {
				sum += q.Price
				n++
				if q.Volume24h > 0 {
					volSum += q.Volume24h
					volN++
				}
			}
		}
		if n == 0 {
			continue
		}

		e.history.Push(sym, sum/float64(n))
		tracked++

		computeStart := time.Now()
		snap := indicator.Compute(e.history.Prices(sym))
		// Prefer the feed's reported 24h volume; feeds that omit it get
		// a bounded synthetic reading instead.
		vol := model.Volume{Average: 500000}
		if volN > 0 {
			vol.Current = volSum / float64(volN)
		} else {
			vol.Current = 100000 + e.rng.Float64()*900000
		}
		snap.Volume = vol

		e.mu.Lock()
		e.indicators[sym] = snap
		e.mu.Unlock()

		if e.met != nil {
			e.met.IndicatorComputeDur.Observe(time.Since(computeStart).Seconds())
		}
	}

	if e.met != nil {
		e.met.SymbolsTracked.Set(float64(tracked))
	}
}

// evaluate runs every strategy against every symbol, executing accepted
// opportunities until the per-cycle trade cap is hit.
func (e *Engine) evaluate(ctx context.Context, symbols, exchanges []string) {
	e.mu.Lock()
	tradeCap := e.settings.TradeCap()
	minSize := e.settings.MinTradeSize
	maxSize := e.settings.MaxTradeSize
	threshold := e.threshold / 100
	e.mu.Unlock()

	executed := 0
	for _, sym := range symbols {
		e.mu.Lock()
		snap, haveSnap := e.indicators[sym]
		e.mu.Unlock()
		if !haveSnap {
			continue
		}
		prices := e.history.Prices(sym)

		for _, id := range strategy.All() {
			if ctx.Err() != nil {
				return
			}

			amount := minSize + e.rng.Float64()*(maxSize-minSize)

			cctx, cancel := e.callCtx(ctx)
			opp, err := strategy.Evaluate(id, &strategy.Context{
				Ctx:       cctx,
				Symbol:    sym,
				Amount:    amount,
				Ind:       snap,
				History:   prices,
				Threshold: threshold,
				Rand:      e.rng,
				Market:    e.market,
				Exchanges: exchanges,
			})
			cancel()

			if err != nil {
				e.log.Warn("strategy evaluation failed",
					append(logger.LogWithCycle(ctx), "strategy", id, "symbol", sym, "err", err)...)
				continue
			}
			if opp == nil {
				if e.met != nil {
					e.met.OpportunitiesRejected.WithLabelValues(string(id)).Inc()
				}
				continue
			}

			if err := e.execute(ctx, opp); err != nil {
				e.log.Error("trade execution failed",
					append(logger.LogWithCycle(ctx), "strategy", id, "symbol", sym, "err", err)...)
				continue
			}
			executed++
			if executed >= tradeCap {
				e.log.Info("cycle trade cap reached",
					append(logger.LogWithCycle(ctx), "executed", executed)...)
				return
			}
		}
	}
}
