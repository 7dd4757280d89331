// Package notification delivers trading events to external channels
// (Telegram, webhooks) and to the process log.
package notification

import (
	"context"
	"fmt"
	"log"

	"mltrading-systemv1/internal/model"
)

// AlertLevel represents the severity of an alert.
type AlertLevel string

const (
	AlertInfo     AlertLevel = "INFO"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
)

// Alert represents a notification to be sent. Fields carries structured
// payload data for backends that can forward it.
type Alert struct {
	Level   AlertLevel     `json:"level"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Notifier is the interface for all notification backends.
type Notifier interface {
	// Send delivers an alert. Returns error if delivery fails.
	Send(ctx context.Context, alert Alert) error
}

// LogNotifier logs alerts to the process log (useful for development).
type LogNotifier struct{}

// NewLogNotifier creates a log-based notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, alert Alert) error {
	log.Printf("[notify] [%s] %s: %s", alert.Level, alert.Title, alert.Message)
	return nil
}

// Fanout delivers each alert to every configured backend. Individual
// delivery failures are logged and do not block the others.
type Fanout struct {
	backends []Notifier
}

// NewFanout creates a fanout over the given backends.
func NewFanout(backends ...Notifier) *Fanout {
	return &Fanout{backends: backends}
}

func (f *Fanout) Send(ctx context.Context, alert Alert) error {
	for _, b := range f.backends {
		if err := b.Send(ctx, alert); err != nil {
			log.Printf("[notify] backend %T: %v", b, err)
		}
	}
	return nil
}

// TradeExecuted builds the alert for one executed trade.
func TradeExecuted(t model.Trade, analysis model.TradeAnalysis) Alert {
	return Alert{
		Level: AlertInfo,
		Title: fmt.Sprintf("Trade executed: %s %s", t.Direction, t.Symbol),
		Message: fmt.Sprintf("%s via %s, amount %.2f, net profit %.2f (confidence %.0f%%)",
			t.Symbol, t.Strategy, t.Amount, t.NetProfit, analysis.Confidence*100),
		Fields: map[string]any{
			"trade_id":   t.ID,
			"symbol":     t.Symbol,
			"strategy":   t.Strategy,
			"direction":  string(t.Direction),
			"amount":     t.Amount,
			"net_profit": t.NetProfit,
			"confidence": analysis.Confidence,
			"models":     analysis.Models,
		},
	}
}
