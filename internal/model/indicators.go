package model

// MACD holds the MACD line, its signal line, and their difference.
//
// The signal line is intentionally the single-sample approximation
// line × 0.9 rather than a recursive EMA of the line; the strategy
// thresholds downstream are tuned against this behavior.
type MACD struct {
	Line      float64 `json:"line"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// Bollinger holds the upper/middle/lower Bollinger Bands.
type Bollinger struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// EMAPair holds a fast and a slow exponential moving average.
type EMAPair struct {
	Fast float64 `json:"fast"`
	Slow float64 `json:"slow"`
}

// Volume holds the current and average traded volume for a symbol.
// It is supplied (or synthesized) by the market-data collaborator,
// never derived from price history.
type Volume struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
}

// IndicatorSnapshot is the full set of technical indicators computed for
// one symbol at one point in time. It is recomputed wholesale each cycle
// and never partially mutated.
type IndicatorSnapshot struct {
	RSI        float64   `json:"rsi"` // 0-100
	MACD       MACD      `json:"macd"`
	Bollinger  Bollinger `json:"bollinger"`
	EMA        EMAPair   `json:"ema"`
	Volume     Volume    `json:"volume"`
	Momentum   float64   `json:"momentum"`   // percent change vs 10 samples back
	Volatility float64   `json:"volatility"` // stddev of simple returns
}
