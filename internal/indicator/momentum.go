package indicator

import "math"

// Momentum calculates the percent change of the latest price against the
// price MomentumLookup samples back. With fewer samples than that there is
// no reference point and 0 is returned.
func Momentum(prices []float64) float64 {
	n := len(prices)
	if n < MomentumLookup {
		return 0
	}
	ref := prices[n-MomentumLookup]
	return (prices[n-1] - ref) / ref * 100
}

// Volatility calculates the population standard deviation of the simple
// returns of the price history. Needs at least two prices.
func Volatility(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance)
}
