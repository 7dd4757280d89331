// Package indicator provides technical indicator calculations over price
// history slices.
//
// All functions are pure: they read the input slice, never mutate it, and
// depend on nothing but their arguments. Compute bundles them into a full
// snapshot for one symbol.
package indicator

import "mltrading-systemv1/internal/model"

// Standard periods used across the engine.
const (
	RSIPeriod       = 14
	BollingerPeriod = 20
	MomentumLookup  = 10
	EMAFastPeriod   = 9
	EMASlowPeriod   = 21
	MACDFastPeriod  = 12
	MACDSlowPeriod  = 26
)

// Compute derives the full indicator snapshot from a price history.
// Volume is left zero; it comes from the market-data side, not from
// prices.
func Compute(prices []float64) model.IndicatorSnapshot {
	return model.IndicatorSnapshot{
		RSI:       RSI(prices, RSIPeriod),
		MACD:      ComputeMACD(prices),
		Bollinger: BollingerBands(prices, BollingerPeriod),
		EMA: model.EMAPair{
			Fast: EMA(prices, EMAFastPeriod),
			Slow: EMA(prices, EMASlowPeriod),
		},
		Momentum:   Momentum(prices),
		Volatility: Volatility(prices),
	}
}
