package strategy

import (
	"math"

	"mltrading-systemv1/internal/model"
)

// evalScalping takes quick positions when volatility and volume are both
// elevated, siding with the fast/slow EMA cross.
func evalScalping(c *Context) (*model.Opportunity, error) {
	volat := c.Ind.Volatility
	vol := c.Ind.Volume

	if volat <= 0.5 || vol.Average <= 0 || vol.Current <= vol.Average*1.2 {
		return nil, nil
	}

	dir := model.DirectionSell
	if c.Ind.EMA.Fast > c.Ind.EMA.Slow {
		dir = model.DirectionBuy
	}

	ratio := vol.Current / vol.Average
	conf := 0.6 + math.Min(0.2, volat*0.2) + math.Min(0.15, (ratio-1)*0.1)
	conf = clamp(conf, 0.9)

	return newOpportunity(c, Scalping, dir, conf), nil
}
