package strategy

import (
	"fmt"

	"mltrading-systemv1/internal/mlmodel"
	"mltrading-systemv1/internal/model"
)

// evalArbitrage takes the best cross-exchange spread reported by the
// market-data provider. Confidence comes from the model blend rather than
// an indicator formula since the edge is structural, not directional.
func evalArbitrage(c *Context) (*model.Opportunity, error) {
	opps, err := c.Market.FindArbitrageOpportunities(c.Ctx, c.Symbol, c.Amount)
	if err != nil {
		return nil, fmt.Errorf("arbitrage scan %s: %w", c.Symbol, err)
	}
	if len(opps) == 0 {
		return nil, nil
	}

	best := opps[0]
	if best.ProfitPercent <= 0.01 {
		return nil, nil
	}

	models := mlmodel.SelectForStrategy(string(Arbitrage))
	best.Strategy = string(Arbitrage)
	best.Direction = model.DirectionBuy
	best.Confidence = mlmodel.Blend(models, c.Rand)
	best.DecidingModels = mlmodel.Names(models)

	return &best, nil
}
