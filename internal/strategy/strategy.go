// Package strategy implements the trading strategy evaluators. Each
// evaluator inspects one symbol's indicators and either proposes an
// opportunity or declines with a nil result.
package strategy

import (
	"context"
	"fmt"
	"math/rand"

	"mltrading-systemv1/internal/marketdata"
	"mltrading-systemv1/internal/model"
)

// ID identifies one strategy.
type ID string

const (
	Arbitrage      ID = "arbitrage"
	Momentum       ID = "momentum"
	MeanReversion  ID = "mean_reversion"
	Breakout       ID = "breakout"
	Scalping       ID = "scalping"
	Swing          ID = "swing"
	Sentiment      ID = "sentiment"
	VolumeAnalysis ID = "volume_analysis"
)

// All returns every strategy in evaluation order.
func All() []ID {
	return []ID{
		Arbitrage, Momentum, MeanReversion, Breakout,
		Scalping, Swing, Sentiment, VolumeAnalysis,
	}
}

// Context carries everything an evaluator needs for one symbol in one
// cycle. Threshold is the acceptance cutoff as a fraction in [0.5, 0.95].
type Context struct {
	Ctx       context.Context
	Symbol    string
	Amount    float64
	Ind       model.IndicatorSnapshot
	History   []float64
	Threshold float64
	Rand      *rand.Rand
	Market    marketdata.Provider
	Exchanges []string
}

// lastPrice is the current price an evaluator reasons about.
func (c *Context) lastPrice() float64 {
	if len(c.History) == 0 {
		return 0
	}
	return c.History[len(c.History)-1]
}

type evaluator func(*Context) (*model.Opportunity, error)

var evaluators = map[ID]evaluator{
	Arbitrage:      evalArbitrage,
	Momentum:       evalMomentum,
	MeanReversion:  evalMeanReversion,
	Breakout:       evalBreakout,
	Scalping:       evalScalping,
	Swing:          evalSwing,
	Sentiment:      evalSentiment,
	VolumeAnalysis: evalVolumeAnalysis,
}

// Evaluate runs one strategy against the context. A nil opportunity with
// a nil error means the strategy declined. Opportunities below the
// confidence threshold are rejected here, not by the caller.
func Evaluate(id ID, c *Context) (*model.Opportunity, error) {
	eval, ok := evaluators[id]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", id)
	}

	opp, err := eval(c)
	if err != nil || opp == nil {
		return nil, err
	}
	if opp.Confidence < c.Threshold {
		return nil, nil
	}
	return opp, nil
}

func clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
