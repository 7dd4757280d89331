package marketdata

import (
	"context"
	"sort"
	"time"

	"mltrading-systemv1/internal/model"
)

// Taker fees per exchange, as fractions of notional.
var takerFees = map[string]float64{
	"coinbase":  0.006,
	"kraken":    0.0026,
	"gemini":    0.0035,
	"cryptocom": 0.004,
	"binance":   0.001,
	"binanceus": 0.001,
	"kucoin":    0.001,
}

const defaultTakerFee = 0.0025

// minSpread is the minimum raw price spread worth reporting, 0.1%.
const minSpread = 0.001

// TakerFee returns the taker fee fraction for an exchange.
func TakerFee(exchange string) float64 {
	if f, ok := takerFees[exchange]; ok {
		return f
	}
	return defaultTakerFee
}

// FindArbitrageOpportunities scans every ordered pair of enabled
// exchanges for a cross-exchange spread on the symbol. Results are
// sorted by net profit, best first.
func (t *Table) FindArbitrageOpportunities(ctx context.Context, symbol string, amount float64) ([]model.Opportunity, error) {
	exchanges, err := t.EnabledExchanges(ctx)
	if err != nil {
		return nil, err
	}

	var opps []model.Opportunity
	for _, buyEx := range exchanges {
		buy, ok := t.Quote(ctx, buyEx, symbol)
		if !ok || buy.Price <= 0 {
			continue
		}
		for _, sellEx := range exchanges {
			if sellEx == buyEx {
				continue
			}
			sell, ok := t.Quote(ctx, sellEx, symbol)
			if !ok || sell.Price <= buy.Price {
				continue
			}

			spread := (sell.Price - buy.Price) / buy.Price
			if spread < minSpread {
				continue
			}

			gross := amount * spread
			fees := amount * (TakerFee(buyEx) + TakerFee(sellEx))
			net := gross - fees
			if net <= 0 {
				continue
			}

			opps = append(opps, model.Opportunity{
				Symbol:        symbol,
				BuyExchange:   buyEx,
				SellExchange:  sellEx,
				BuyPrice:      buy.Price,
				SellPrice:     sell.Price,
				Amount:        amount,
				GrossProfit:   gross,
				EstimatedFees: fees,
				NetProfit:     net,
				ProfitPercent: net / amount * 100,
				Timestamp:     time.Now(),
			})
		}
	}

	sort.Slice(opps, func(i, j int) bool { return opps[i].NetProfit > opps[j].NetProfit })
	return opps, nil
}
