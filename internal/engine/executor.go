package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mltrading-systemv1/internal/logger"
	"mltrading-systemv1/internal/model"
	"mltrading-systemv1/internal/notification"
)

// Simulated execution fee, 0.1% per leg.
const legFeeRate = 0.001

// execute turns an accepted opportunity into an executed trade. The
// statistics update commits before the sink write: a failing sink must
// not make an executed trade disappear from the record. The notifier is
// fired exactly once per trade, after persistence.
func (e *Engine) execute(ctx context.Context, opp *model.Opportunity) error {
	trade := buildTrade(opp, e.positionSize())
	e.stats.record(trade)

	if e.met != nil {
		e.met.TradesExecuted.WithLabelValues(trade.Strategy).Inc()
		e.met.TradeProfit.Add(trade.NetProfit)
	}

	if e.sink != nil {
		cctx, cancel := e.callCtx(ctx)
		err := e.sink.RecordTrade(cctx, trade)
		cancel()
		if err != nil {
			// Already counted; surface the persistence failure only.
			e.log.Error("trade sink write failed",
				append(logger.LogWithCycle(ctx), "trade_id", trade.ID, "err", err)...)
		}
	}

	if e.notifier != nil {
		analysis := model.TradeAnalysis{
			Confidence: trade.Confidence,
			Strategy:   trade.Strategy,
			Direction:  trade.Direction,
			Models:     trade.DecidingModels,
		}
		cctx, cancel := e.callCtx(ctx)
		if err := e.notifier.Send(cctx, notification.TradeExecuted(trade, analysis)); err != nil {
			e.log.Warn("trade notification failed",
				append(logger.LogWithCycle(ctx), "trade_id", trade.ID, "err", err)...)
		}
		cancel()
	}

	e.log.Info("trade executed", append(logger.LogWithCycle(ctx),
		"trade_id", trade.ID,
		"symbol", trade.Symbol,
		"strategy", trade.Strategy,
		"direction", trade.Direction,
		"amount", trade.Amount,
		"net_profit", trade.NetProfit,
		"confidence", trade.Confidence)...)

	return nil
}

// buildTrade derives the trade record from the opportunity, splitting the
// estimated fees evenly across the two legs.
func buildTrade(opp *model.Opportunity, positionSize float64) model.Trade {
	return model.Trade{
		ID:             uuid.NewString(),
		Symbol:         opp.Symbol,
		BuyExchange:    opp.BuyExchange,
		SellExchange:   opp.SellExchange,
		Amount:         opp.Amount,
		BuyPrice:       opp.BuyPrice,
		SellPrice:      opp.SellPrice,
		NetProfit:      opp.NetProfit,
		TotalFees:      opp.EstimatedFees,
		BuyFee:         opp.EstimatedFees / 2,
		SellFee:        opp.EstimatedFees / 2,
		BuyFeeRate:     legFeeRate,
		SellFeeRate:    legFeeRate,
		Confidence:     opp.Confidence,
		DecidingModels: opp.DecidingModels,
		Strategy:       opp.Strategy,
		Direction:      opp.Direction,
		PositionSize:   positionSize,
		Timestamp:      time.Now(),
	}
}

func (e *Engine) positionSize() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.PositionSize
}
