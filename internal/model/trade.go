package model

import "time"

// Direction is the side of a proposed or executed trade.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// Opportunity is a candidate trade proposed by a strategy evaluator.
// It lives within a single cycle: either it is executed immediately or
// it is dropped.
type Opportunity struct {
	Symbol         string    `json:"symbol"`
	BuyExchange    string    `json:"buy_exchange"`
	SellExchange   string    `json:"sell_exchange"`
	BuyPrice       float64   `json:"buy_price"`
	SellPrice      float64   `json:"sell_price"`
	Amount         float64   `json:"amount"`
	GrossProfit    float64   `json:"gross_profit"`
	EstimatedFees  float64   `json:"estimated_fees"`
	NetProfit      float64   `json:"net_profit"`
	ProfitPercent  float64   `json:"profit_percent"`
	Strategy       string    `json:"strategy"`
	Direction      Direction `json:"direction"`
	Confidence     float64   `json:"confidence"` // 0-1
	DecidingModels []string  `json:"deciding_models"`
	Timestamp      time.Time `json:"timestamp"`
}

// Trade is the durable record derived from an accepted Opportunity.
// Ownership transfers to the trade sink immediately after creation.
type Trade struct {
	ID             string    `json:"id"`
	Symbol         string    `json:"symbol"`
	BuyExchange    string    `json:"buy_exchange"`
	SellExchange   string    `json:"sell_exchange"`
	Amount         float64   `json:"amount"`
	BuyPrice       float64   `json:"buy_price"`
	SellPrice      float64   `json:"sell_price"`
	NetProfit      float64   `json:"net_profit"`
	TotalFees      float64   `json:"total_fees"`
	BuyFee         float64   `json:"buy_fee"`
	SellFee        float64   `json:"sell_fee"`
	BuyFeeRate     float64   `json:"buy_fee_rate"`
	SellFeeRate    float64   `json:"sell_fee_rate"`
	Confidence     float64   `json:"confidence"` // 0-1
	DecidingModels []string  `json:"deciding_models"`
	Strategy       string    `json:"strategy"`
	Direction      Direction `json:"direction"`
	PositionSize   float64   `json:"position_size"`
	Timestamp      time.Time `json:"timestamp"`
}

// TradeAnalysis is the decision metadata delivered alongside an executed
// trade to the notification hook.
type TradeAnalysis struct {
	Confidence float64   `json:"confidence"`
	Strategy   string    `json:"strategy"`
	Direction  Direction `json:"direction"`
	Models     []string  `json:"models"`
}
