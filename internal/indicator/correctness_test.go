package indicator

import (
	"math"
	"testing"
)

// ────────────────────────────────────────────────────────────
// Helper
// ────────────────────────────────────────────────────────────

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f, diff=%.6f)", label, got, want, tol, math.Abs(got-want))
	}
}

// ────────────────────────────────────────────────────────────
// RSI Correctness
// ────────────────────────────────────────────────────────────

func TestRSI_Correctness_Period3(t *testing.T) {
	// RSI(3) for prices 100, 102, 101:
	// deltas used: +2 (gain), -1 (loss)
	// avgGain = 2/3, avgLoss = 1/3 → rs = 2
	// RSI = 100 - 100/(1+2) = 66.6667
	got := RSI([]float64{100, 102, 101}, 3)
	assertClose(t, "RSI(3)", got, 66.666667, 0.0001)
}

func TestRSI_AllGains(t *testing.T) {
	// No losses → rs pinned at 100 → RSI = 100 - 100/101 = 99.0099
	prices := make([]float64, 14)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	got := RSI(prices, 14)
	assertClose(t, "RSI all gains", got, 99.009901, 0.0001)
}

func TestRSI_ShortHistory_Neutral(t *testing.T) {
	if got := RSI([]float64{100, 101}, 14); got != 50 {
		t.Errorf("RSI short history: got %.4f, want 50", got)
	}
	if got := RSI(nil, 14); got != 50 {
		t.Errorf("RSI empty: got %.4f, want 50", got)
	}
}

// ────────────────────────────────────────────────────────────
// EMA Correctness
// ────────────────────────────────────────────────────────────

func TestEMA_Correctness_Period3(t *testing.T) {
	// EMA(3): multiplier = 2/(3+1) = 0.5, seeded with prices[0]
	// Prices: 100, 102, 104, 103, 105
	// 100 → 101 → 102.5 → 102.75 → 103.875
	got := EMA([]float64{100, 102, 104, 103, 105}, 3)
	assertClose(t, "EMA(3)", got, 103.875, 0.0001)
}

func TestEMA_ShortHistory_LastPrice(t *testing.T) {
	got := EMA([]float64{100, 102}, 3)
	assertClose(t, "EMA short", got, 102, 0.0001)
}

func TestEMA_Empty(t *testing.T) {
	if got := EMA(nil, 9); got != 0 {
		t.Errorf("EMA empty: got %.4f, want 0", got)
	}
}

// ────────────────────────────────────────────────────────────
// MACD
// ────────────────────────────────────────────────────────────

func TestMACD_SignalIsScaledLine(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	m := ComputeMACD(prices)

	// Fast EMA hugs the latest price tighter than the slow EMA, so a
	// monotone rise produces a positive line.
	if m.Line <= 0 {
		t.Errorf("MACD line on rising series: got %.6f, want > 0", m.Line)
	}
	assertClose(t, "MACD signal", m.Signal, m.Line*0.9, 1e-9)
	assertClose(t, "MACD histogram", m.Histogram, m.Line-m.Signal, 1e-9)
}

func TestMACD_ShortHistory_Zero(t *testing.T) {
	// Under 12 prices both EMAs collapse to the last price.
	m := ComputeMACD([]float64{100, 101, 102})
	assertClose(t, "MACD line short", m.Line, 0, 1e-9)
	assertClose(t, "MACD histogram short", m.Histogram, 0, 1e-9)
}

// ────────────────────────────────────────────────────────────
// Bollinger / SMA
// ────────────────────────────────────────────────────────────

func TestBollinger_Correctness_Period3(t *testing.T) {
	// Prices 100, 102, 104: mean = 102
	// variance = (4+0+4)/3 = 8/3 → σ = 1.632993
	// upper = 105.265986, lower = 98.734014
	bb := BollingerBands([]float64{100, 102, 104}, 3)
	assertClose(t, "BB middle", bb.Middle, 102, 0.0001)
	assertClose(t, "BB upper", bb.Upper, 105.265986, 0.0001)
	assertClose(t, "BB lower", bb.Lower, 98.734014, 0.0001)
}

func TestBollinger_ShortHistory_Envelope(t *testing.T) {
	bb := BollingerBands([]float64{100, 102}, 20)
	assertClose(t, "BB envelope middle", bb.Middle, 102, 0.0001)
	assertClose(t, "BB envelope upper", bb.Upper, 104.04, 0.0001)
	assertClose(t, "BB envelope lower", bb.Lower, 99.96, 0.0001)
}

func TestBollinger_Ordering(t *testing.T) {
	cases := [][]float64{
		nil,
		{100},
		{100, 102},
		{100, 102, 104, 103, 105, 101, 99, 104, 106, 102},
	}
	for i, prices := range cases {
		bb := BollingerBands(prices, 5)
		if bb.Lower > bb.Middle || bb.Middle > bb.Upper {
			t.Errorf("case %d: band ordering violated: %.4f / %.4f / %.4f",
				i, bb.Lower, bb.Middle, bb.Upper)
		}
	}
}

func TestSMA_Correctness(t *testing.T) {
	// Last 3 of 100, 102, 104, 103, 105 → (104+103+105)/3 = 104
	got := SMA([]float64{100, 102, 104, 103, 105}, 3)
	assertClose(t, "SMA(3)", got, 104, 0.0001)
}

func TestSMA_ShortHistory_FullAverage(t *testing.T) {
	got := SMA([]float64{100, 102}, 20)
	assertClose(t, "SMA short", got, 101, 0.0001)
}

// ────────────────────────────────────────────────────────────
// Momentum / Volatility
// ────────────────────────────────────────────────────────────

func TestMomentum_Correctness(t *testing.T) {
	// 12 prices 100..111: reference is 10 back = 102, latest = 111
	// momentum = (111-102)/102 × 100 = 8.823529
	prices := make([]float64, 12)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	assertClose(t, "momentum", Momentum(prices), 8.823529, 0.0001)
}

func TestMomentum_ShortHistory_Zero(t *testing.T) {
	if got := Momentum([]float64{100, 101, 102}); got != 0 {
		t.Errorf("momentum short: got %.4f, want 0", got)
	}
}

func TestVolatility_Correctness(t *testing.T) {
	// Prices 100, 102, 101 → returns 0.02, -0.009804
	// mean return = 0.005098, deviations ±0.014902
	// population σ = 0.014902
	got := Volatility([]float64{100, 102, 101})
	assertClose(t, "volatility", got, 0.014902, 0.0001)
}

func TestVolatility_Flat_Zero(t *testing.T) {
	assertClose(t, "volatility flat", Volatility([]float64{100, 100, 100}), 0, 1e-12)
	if got := Volatility([]float64{100}); got != 0 {
		t.Errorf("volatility single price: got %.4f, want 0", got)
	}
}

// ────────────────────────────────────────────────────────────
// Compute wiring
// ────────────────────────────────────────────────────────────

func TestCompute_ShortHistoryDefaults(t *testing.T) {
	snap := Compute([]float64{100, 101})
	if snap.RSI != 50 {
		t.Errorf("snapshot RSI: got %.4f, want neutral 50", snap.RSI)
	}
	assertClose(t, "snapshot EMA fast", snap.EMA.Fast, 101, 0.0001)
	assertClose(t, "snapshot EMA slow", snap.EMA.Slow, 101, 0.0001)
	if snap.Momentum != 0 {
		t.Errorf("snapshot momentum: got %.4f, want 0", snap.Momentum)
	}
	if snap.Volume.Current != 0 || snap.Volume.Average != 0 {
		t.Errorf("snapshot volume must stay zero, got %+v", snap.Volume)
	}
}
