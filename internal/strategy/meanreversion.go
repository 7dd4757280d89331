package strategy

import (
	"math"

	"mltrading-systemv1/internal/indicator"
	"mltrading-systemv1/internal/model"
)

// evalMeanReversion fades deviations beyond ±2% from the 20-period mean,
// expecting a pull back toward it.
func evalMeanReversion(c *Context) (*model.Opportunity, error) {
	if len(c.History) < indicator.BollingerPeriod {
		return nil, nil
	}

	sma := indicator.SMA(c.History, indicator.BollingerPeriod)
	if sma == 0 {
		return nil, nil
	}
	dev := (c.lastPrice() - sma) / sma * 100
	if math.Abs(dev) <= 2 {
		return nil, nil
	}

	// Price below the mean reverts up, above reverts down.
	dir := model.DirectionSell
	if dev < 0 {
		dir = model.DirectionBuy
	}

	conf := clamp(0.5+math.Abs(dev)*0.08, 0.85)
	if c.Ind.RSI < 30 || c.Ind.RSI > 70 {
		conf += 0.1
	}
	conf = clamp(conf, 0.95)

	return newOpportunity(c, MeanReversion, dir, conf), nil
}
