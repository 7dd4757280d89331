package model

// StrategyStats is the per-strategy slice of the running statistics.
type StrategyStats struct {
	Trades        int     `json:"trades"`
	Wins          int     `json:"wins"`
	TotalProfit   float64 `json:"total_profit"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Statistics is a point-in-time snapshot of the engine's trading record.
// It is a value copy; mutating it does not affect the engine.
type Statistics struct {
	TotalTrades       int     `json:"total_trades"`
	SuccessfulTrades  int     `json:"successful_trades"`
	TotalProfit       float64 `json:"total_profit"`
	AverageConfidence float64 `json:"average_confidence"`

	Active              bool    `json:"is_active"`
	ConfidenceThreshold float64 `json:"confidence_threshold"` // percent
	WinRate             float64 `json:"win_rate"`             // percent
	ActiveStrategies    int     `json:"active_strategies"`
	ActiveModels        int     `json:"active_models"`

	StrategyPerformance map[string]StrategyStats `json:"strategy_performance"`
}
