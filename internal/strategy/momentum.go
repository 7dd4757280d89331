package strategy

import (
	"math"

	"mltrading-systemv1/internal/model"
)

// evalMomentum trades sustained directional moves: momentum beyond ±2%
// with RSI out of both extreme zones.
func evalMomentum(c *Context) (*model.Opportunity, error) {
	mom := c.Ind.Momentum
	rsi := c.Ind.RSI

	if math.Abs(mom) <= 2 || rsi <= 30 || rsi >= 70 {
		return nil, nil
	}

	dir := model.DirectionSell
	if mom > 0 {
		dir = model.DirectionBuy
	}

	conf := clamp(0.5+math.Abs(mom)*0.05, 0.9)
	if rsi > 50 && rsi < 70 {
		conf += 0.1
	}
	if c.Ind.Volume.Current > c.Ind.Volume.Average {
		conf += 0.05
	}
	conf = clamp(conf, 0.95)

	return newOpportunity(c, Momentum, dir, conf), nil
}
