package indicator

// EMA calculates the exponential moving average across the whole price
// history, seeded with the first price. With fewer than period prices the
// latest price stands in; with no prices the result is 0.
func EMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if len(prices) < period {
		return prices[len(prices)-1]
	}

	mult := 2.0 / float64(period+1)
	ema := prices[0]
	for _, p := range prices[1:] {
		ema += (p - ema) * mult
	}
	return ema
}
