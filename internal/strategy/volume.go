package strategy

import (
	"math"

	"mltrading-systemv1/internal/model"
)

// evalVolumeAnalysis trades momentum that is confirmed by a volume surge
// of at least 1.5× the average.
func evalVolumeAnalysis(c *Context) (*model.Opportunity, error) {
	vol := c.Ind.Volume
	mom := c.Ind.Momentum

	if vol.Average <= 0 || vol.Current <= vol.Average*1.5 || math.Abs(mom) <= 1 {
		return nil, nil
	}

	dir := model.DirectionSell
	if mom > 0 {
		dir = model.DirectionBuy
	}

	ratio := vol.Current / vol.Average
	conf := clamp(0.5+(ratio-1)*0.2, 0.8)
	conf += math.Min(0.15, math.Abs(mom)*0.05)
	conf = clamp(conf, 0.95)

	return newOpportunity(c, VolumeAnalysis, dir, conf), nil
}
