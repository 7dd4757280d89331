package model

// Threshold clamp bounds, in percent.
const (
	MinConfidenceThreshold = 50
	MaxConfidenceThreshold = 95
)

// EngineSettings is the runtime configuration of the trading engine.
// It is loaded from an external settings source at construction and may
// be refreshed at the start of each cycle.
type EngineSettings struct {
	MinTradeSize        float64 `yaml:"min_trade_size" json:"min_trade_size"`
	MaxTradeSize        float64 `yaml:"max_trade_size" json:"max_trade_size"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold" json:"confidence_threshold"` // percent, clamped to [50,95]
	PositionSize        float64 `yaml:"position_size" json:"position_size"`               // percent of balance per trade
	TradeFrequencyMs    int     `yaml:"trade_frequency_ms" json:"trade_frequency_ms"`
	UnlimitedTrades     bool    `yaml:"unlimited_trades" json:"unlimited_trades"`
	MaxTradesPerCycle   int     `yaml:"max_trades_per_cycle" json:"max_trades_per_cycle"` // 0 = derive from UnlimitedTrades
}

// DefaultSettings returns the engine defaults used when no settings
// source is configured or the source has nothing saved.
func DefaultSettings() EngineSettings {
	return EngineSettings{
		MinTradeSize:        10,
		MaxTradeSize:        1000,
		ConfidenceThreshold: 60,
		PositionSize:        2.0,
		TradeFrequencyMs:    3000,
		UnlimitedTrades:     true,
	}
}

// ClampThreshold returns percent clamped to the valid threshold range.
func ClampThreshold(percent float64) float64 {
	if percent < MinConfidenceThreshold {
		return MinConfidenceThreshold
	}
	if percent > MaxConfidenceThreshold {
		return MaxConfidenceThreshold
	}
	return percent
}

// Normalize clamps the threshold and fills zero-valued size fields with
// defaults, returning the cleaned settings.
func (s EngineSettings) Normalize() EngineSettings {
	def := DefaultSettings()
	if s.MinTradeSize <= 0 {
		s.MinTradeSize = def.MinTradeSize
	}
	if s.MaxTradeSize <= 0 {
		s.MaxTradeSize = def.MaxTradeSize
	}
	if s.MaxTradeSize < s.MinTradeSize {
		s.MaxTradeSize = s.MinTradeSize
	}
	if s.TradeFrequencyMs <= 0 {
		s.TradeFrequencyMs = def.TradeFrequencyMs
	}
	if s.PositionSize <= 0 {
		s.PositionSize = def.PositionSize
	}
	s.ConfidenceThreshold = ClampThreshold(s.ConfidenceThreshold)
	return s
}

// TradeCap returns the maximum number of trades the engine may accept in
// one cycle: an explicit override wins, otherwise 10 when unlimited
// trading is on and 3 when it is off.
func (s EngineSettings) TradeCap() int {
	if s.MaxTradesPerCycle > 0 {
		return s.MaxTradesPerCycle
	}
	if s.UnlimitedTrades {
		return 10
	}
	return 3
}
