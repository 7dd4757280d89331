package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mltrading-systemv1/internal/model"
)

func TestTelegramSend_ForwardsTradeFields(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/bottok-1/sendMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("tok-1", "chat-42")
	n.api = srv.URL

	trade := model.Trade{
		ID:        "trade-1",
		Symbol:    "BTC/USD",
		Strategy:  "momentum",
		Direction: model.DirectionBuy,
		Amount:    500,
		NetProfit: 3.25,
	}
	alert := TradeExecuted(trade, model.TradeAnalysis{
		Confidence: 0.82,
		Models:     []string{"LSTM Neural Network", "XGBoost Classifier"},
	})

	if err := n.Send(context.Background(), alert); err != nil {
		t.Fatalf("send: %v", err)
	}

	if payload["chat_id"] != "chat-42" {
		t.Errorf("chat_id=%v, want chat-42", payload["chat_id"])
	}
	if payload["parse_mode"] != "MarkdownV2" {
		t.Errorf("parse_mode=%v", payload["parse_mode"])
	}

	text, _ := payload["text"].(string)
	for _, want := range []string{
		"strategy: momentum",
		"confidence: 0\\.82",
		"LSTM Neural Network, XGBoost Classifier",
		"trade\\_id: trade\\-1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q:\n%s", want, text)
		}
	}
}

func TestTelegramSend_BadStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("tok", "chat")
	n.api = srv.URL

	if err := n.Send(context.Background(), Alert{Title: "x", Message: "y"}); err == nil {
		t.Fatal("expected error on 403")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := escapeMarkdown("net_profit: 3.25 (82%)")
	want := `net\_profit: 3\.25 \(82%\)`
	if got != want {
		t.Errorf("escaped=%q, want %q", got, want)
	}
}
