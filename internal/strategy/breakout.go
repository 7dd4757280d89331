package strategy

import (
	"math"

	"mltrading-systemv1/internal/indicator"
	"mltrading-systemv1/internal/model"
)

// evalBreakout trades closes outside the Bollinger envelope in the
// direction of the break.
func evalBreakout(c *Context) (*model.Opportunity, error) {
	if len(c.History) < indicator.BollingerPeriod {
		return nil, nil
	}

	bb := c.Ind.Bollinger
	price := c.lastPrice()

	var dir model.Direction
	switch {
	case price > bb.Upper:
		dir = model.DirectionBuy
	case price < bb.Lower:
		dir = model.DirectionSell
	default:
		return nil, nil
	}

	bandWidth := bb.Upper - bb.Lower
	if bandWidth <= 0 {
		return nil, nil
	}
	strength := math.Abs(price-bb.Middle) / bandWidth

	conf := clamp(0.5+strength*0.3, 0.85)
	if c.Ind.Volume.Current > c.Ind.Volume.Average*1.3 {
		conf += 0.1
	}
	conf = clamp(conf, 0.95)

	return newOpportunity(c, Breakout, dir, conf), nil
}
