// Package mlmodel holds the static catalog of prediction models and the
// confidence blending logic that weights their votes.
package mlmodel

import "math/rand"

// Model type labels used by the strategy → model selection table.
const (
	TypeRegression     = "regression"
	TypeTechnical      = "technical"
	TypeMomentum       = "momentum"
	TypeVolatility     = "volatility"
	TypeTrend          = "trend"
	TypeNeural         = "neural"
	TypeEnsemble       = "ensemble"
	TypeClassification = "classification"
	TypeMeta           = "meta"
)

// Descriptor describes one prediction model. Accuracy is a historical
// backtest percentage, Weight its relative vote strength in a blend.
type Descriptor struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"` // percent
	Weight   float64 `json:"weight"`
	Type     string  `json:"type"`
}

var catalog = []Descriptor{
	{Name: "Linear Regression", Accuracy: 72.5, Weight: 1.0, Type: TypeRegression},
	{Name: "Polynomial Regression", Accuracy: 75.1, Weight: 1.2, Type: TypeRegression},
	{Name: "Moving Average Crossover", Accuracy: 68.3, Weight: 0.8, Type: TypeTechnical},
	{Name: "RSI Momentum", Accuracy: 79.2, Weight: 1.5, Type: TypeMomentum},
	{Name: "Bollinger Bands", Accuracy: 81.7, Weight: 1.8, Type: TypeVolatility},
	{Name: "MACD Signal", Accuracy: 77.8, Weight: 1.3, Type: TypeTrend},
	{Name: "LSTM Neural Network", Accuracy: 85.4, Weight: 2.0, Type: TypeNeural},
	{Name: "Random Forest", Accuracy: 83.2, Weight: 1.9, Type: TypeEnsemble},
	{Name: "Gradient Boosting", Accuracy: 84.1, Weight: 1.9, Type: TypeEnsemble},
	{Name: "Support Vector Machine", Accuracy: 78.9, Weight: 1.4, Type: TypeClassification},
	{Name: "Transformer Model", Accuracy: 88.3, Weight: 2.2, Type: TypeNeural},
	{Name: "Ensemble Meta-Model", Accuracy: 91.3, Weight: 2.5, Type: TypeMeta},
}

// typesByStrategy maps a strategy id to the model types it trusts.
var typesByStrategy = map[string][]string{
	"arbitrage":       {TypeRegression, TypeNeural, TypeMeta},
	"momentum":        {TypeMomentum, TypeTrend, TypeNeural},
	"mean_reversion":  {TypeTechnical, TypeVolatility, TypeEnsemble},
	"breakout":        {TypeVolatility, TypeTrend, TypeClassification},
	"scalping":        {TypeTechnical, TypeMomentum, TypeNeural},
	"swing":           {TypeTrend, TypeMomentum, TypeEnsemble},
	"sentiment":       {TypeNeural, TypeClassification, TypeMeta},
	"volume_analysis": {TypeTechnical, TypeClassification, TypeEnsemble},
}

var defaultTypes = []string{TypeNeural, TypeEnsemble}

// Catalog returns a copy of the full model catalog.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Count is the number of models in the catalog.
func Count() int { return len(catalog) }

// SelectForStrategy returns the models whose type matches the strategy's
// preference list. Unknown strategies fall back to neural + ensemble.
func SelectForStrategy(strategy string) []Descriptor {
	types, ok := typesByStrategy[strategy]
	if !ok {
		types = defaultTypes
	}

	var out []Descriptor
	for _, m := range catalog {
		for _, t := range types {
			if m.Type == t {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Blend combines the models' votes into a single confidence in [0, 0.95].
// Each model contributes 0.5 + accuracy/100 × 0.3 plus up to 0.2 of
// injected randomness, weighted by its catalog weight.
func Blend(models []Descriptor, rng *rand.Rand) float64 {
	if len(models) == 0 {
		return 0
	}

	total := 0.0
	weightSum := 0.0
	for _, m := range models {
		conf := 0.5 + m.Accuracy/100*0.3 + rng.Float64()*0.2
		total += conf * m.Weight
		weightSum += m.Weight
	}

	blended := total / weightSum
	if blended > 0.95 {
		blended = 0.95
	}
	return blended
}

// Names extracts the model names, preserving catalog order.
func Names(models []Descriptor) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.Name
	}
	return out
}
