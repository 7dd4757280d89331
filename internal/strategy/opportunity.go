package strategy

import (
	"time"

	"mltrading-systemv1/internal/mlmodel"
	"mltrading-systemv1/internal/model"
)

// Expected profit targets per strategy, as fractions of notional. These
// price the sell leg of single-exchange opportunities.
var expectedProfit = map[ID]float64{
	Arbitrage:      0.003,
	Momentum:       0.015,
	MeanReversion:  0.008,
	Breakout:       0.02,
	Scalping:       0.005,
	Swing:          0.025,
	Sentiment:      0.012,
	VolumeAnalysis: 0.01,
}

// Estimated round-trip fee fraction, 0.1% per leg.
const feeRate = 0.002

// newOpportunity builds a single-exchange opportunity for the strategy:
// a random enabled exchange, the latest price there, and a sell target at
// the strategy's expected profit.
func newOpportunity(c *Context, id ID, dir model.Direction, confidence float64) *model.Opportunity {
	if len(c.Exchanges) == 0 {
		return nil
	}
	exchange := c.Exchanges[c.Rand.Intn(len(c.Exchanges))]

	price := c.lastPrice()
	if q, ok := c.Market.Quote(c.Ctx, exchange, c.Symbol); ok && q.Price > 0 {
		price = q.Price
	}
	if price <= 0 {
		return nil
	}

	pct := expectedProfit[id]
	gross := c.Amount * pct
	fees := c.Amount * feeRate

	return &model.Opportunity{
		Symbol:         c.Symbol,
		BuyExchange:    exchange,
		SellExchange:   exchange,
		BuyPrice:       price,
		SellPrice:      price * (1 + pct),
		Amount:         c.Amount,
		GrossProfit:    gross,
		EstimatedFees:  fees,
		NetProfit:      gross - fees,
		ProfitPercent:  pct * 100,
		Strategy:       string(id),
		Direction:      dir,
		Confidence:     confidence,
		DecidingModels: mlmodel.Names(mlmodel.SelectForStrategy(string(id))),
		Timestamp:      time.Now(),
	}
}
