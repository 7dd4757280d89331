package strategy

import (
	"math"

	"mltrading-systemv1/internal/model"
)

// evalSwing follows MACD crossovers that are not already exhausted on
// RSI: bullish crosses need RSI under 70, bearish ones RSI over 30.
func evalSwing(c *Context) (*model.Opportunity, error) {
	macd := c.Ind.MACD
	rsi := c.Ind.RSI

	if math.Abs(macd.Histogram) <= 0.001 {
		return nil, nil
	}
	bullish := macd.Line > macd.Signal && rsi < 70
	bearish := macd.Line < macd.Signal && rsi > 30
	if !bullish && !bearish {
		return nil, nil
	}

	dir := model.DirectionSell
	if macd.Line > macd.Signal {
		dir = model.DirectionBuy
	}

	strength := math.Abs(macd.Histogram) * 100
	conf := clamp(0.5+strength*0.2, 0.8)
	if rsi > 30 && rsi < 70 {
		conf += 0.1
	}
	conf = clamp(conf, 0.95)

	return newOpportunity(c, Swing, dir, conf), nil
}
