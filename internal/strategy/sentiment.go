package strategy

import "mltrading-systemv1/internal/model"

// evalSentiment proxies market sentiment with a bounded random score in
// [0.3, 0.7] and only acts on readings outside the neutral band.
// A real sentiment feed would replace the score source.
func evalSentiment(c *Context) (*model.Opportunity, error) {
	score := 0.5 + (c.Rand.Float64()-0.5)*0.4

	var dir model.Direction
	switch {
	case score > 0.65:
		dir = model.DirectionBuy
	case score < 0.35:
		dir = model.DirectionSell
	default:
		return nil, nil
	}

	conf := score
	if 1-score > conf {
		conf = 1 - score
	}
	conf = clamp(conf, 0.95)

	return newOpportunity(c, Sentiment, dir, conf), nil
}
