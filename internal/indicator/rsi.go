package indicator

// RSI calculates the Relative Strength Index over the first period+ deltas
// of the price history. With fewer than period prices there is no signal
// and the neutral value 50 is returned.
func RSI(prices []float64, period int) float64 {
	if len(prices) < period {
		return 50
	}

	gains := 0.0
	losses := 0.0
	for i := 1; i < period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains += delta
		} else {
			losses += -delta
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	var rs float64
	if avgLoss == 0 {
		rs = 100
	} else {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}
