package indicator

import (
	"math"

	"mltrading-systemv1/internal/model"
)

// BollingerBands calculates the ±2σ bands over the trailing period prices.
// σ is the population standard deviation. With fewer than period prices a
// fixed ±2% envelope around the latest price stands in, which preserves
// lower ≤ middle ≤ upper.
func BollingerBands(prices []float64, period int) model.Bollinger {
	if len(prices) == 0 {
		return model.Bollinger{}
	}
	if len(prices) < period {
		last := prices[len(prices)-1]
		return model.Bollinger{
			Upper:  last * 1.02,
			Middle: last,
			Lower:  last * 0.98,
		}
	}

	window := prices[len(prices)-period:]
	sum := 0.0
	for _, p := range window {
		sum += p
	}
	mean := sum / float64(period)

	variance := 0.0
	for _, p := range window {
		d := p - mean
		variance += d * d
	}
	variance /= float64(period)
	sd := math.Sqrt(variance)

	return model.Bollinger{
		Upper:  mean + 2*sd,
		Middle: mean,
		Lower:  mean - 2*sd,
	}
}

// SMA calculates the simple moving average over the trailing period prices.
// With fewer than period prices the whole history is averaged.
func SMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if len(prices) < period {
		period = len(prices)
	}
	window := prices[len(prices)-period:]
	sum := 0.0
	for _, p := range window {
		sum += p
	}
	return sum / float64(period)
}
