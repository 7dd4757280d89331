package marketdata

import (
	"context"
	"math"
	"testing"
	"time"
)

func newTestTable() *Table {
	return NewTable(TableConfig{
		Symbols:   []string{"BTC/USD"},
		Exchanges: []string{"kraken", "binance", "coinbase"},
	})
}

func TestFindArbitrage_SortedByNetProfit(t *testing.T) {
	tbl := newTestTable()
	tbl.Update(Quote{Exchange: "kraken", Symbol: "BTC/USD", Price: 100})
	tbl.Update(Quote{Exchange: "binance", Symbol: "BTC/USD", Price: 101})
	tbl.Update(Quote{Exchange: "coinbase", Symbol: "BTC/USD", Price: 102})

	opps, err := tbl.FindArbitrageOpportunities(context.Background(), "BTC/USD", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(opps) == 0 {
		t.Fatal("no opportunities found")
	}
	for i := 1; i < len(opps); i++ {
		if opps[i].NetProfit > opps[i-1].NetProfit {
			t.Errorf("opportunities not sorted: %f before %f", opps[i-1].NetProfit, opps[i].NetProfit)
		}
	}

	// Best spread is kraken 100 → coinbase 102:
	// gross = 1000 × 0.02 = 20
	// fees  = 1000 × (0.0026 + 0.006) = 8.6
	// net   = 11.4, 1.14%
	best := opps[0]
	if best.BuyExchange != "kraken" || best.SellExchange != "coinbase" {
		t.Fatalf("best route %s→%s, want kraken→coinbase", best.BuyExchange, best.SellExchange)
	}
	if math.Abs(best.NetProfit-11.4) > 0.0001 {
		t.Errorf("net profit=%.4f, want 11.4", best.NetProfit)
	}
	if math.Abs(best.ProfitPercent-1.14) > 0.0001 {
		t.Errorf("profit percent=%.4f, want 1.14", best.ProfitPercent)
	}
}

func TestFindArbitrage_BelowMinSpreadIgnored(t *testing.T) {
	tbl := newTestTable()
	tbl.Update(Quote{Exchange: "kraken", Symbol: "BTC/USD", Price: 100})
	tbl.Update(Quote{Exchange: "binance", Symbol: "BTC/USD", Price: 100.05}) // 0.05% spread

	opps, err := tbl.FindArbitrageOpportunities(context.Background(), "BTC/USD", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(opps) != 0 {
		t.Errorf("got %d opportunities on a 0.05%% spread, want 0", len(opps))
	}
}

func TestFindArbitrage_FeesEatThinSpread(t *testing.T) {
	// 0.2% spread clears minSpread but kraken+coinbase fees are 0.86%.
	tbl := newTestTable()
	tbl.Update(Quote{Exchange: "kraken", Symbol: "BTC/USD", Price: 100})
	tbl.Update(Quote{Exchange: "coinbase", Symbol: "BTC/USD", Price: 100.2})

	opps, err := tbl.FindArbitrageOpportunities(context.Background(), "BTC/USD", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(opps) != 0 {
		t.Errorf("got %d opportunities with fees above spread, want 0", len(opps))
	}
}

func TestTakerFee_Default(t *testing.T) {
	if got := TakerFee("unlisted"); got != defaultTakerFee {
		t.Errorf("default fee=%.4f, want %.4f", got, defaultTakerFee)
	}
	if got := TakerFee("coinbase"); got != 0.006 {
		t.Errorf("coinbase fee=%.4f, want 0.006", got)
	}
}

func TestQuote_Staleness(t *testing.T) {
	tbl := NewTable(TableConfig{
		Symbols:   []string{"BTC/USD"},
		Exchanges: []string{"kraken"},
		Staleness: time.Minute,
	})
	tbl.Update(Quote{
		Exchange: "kraken", Symbol: "BTC/USD", Price: 100,
		Timestamp: time.Now().Add(-2 * time.Minute),
	})

	if _, ok := tbl.Quote(context.Background(), "kraken", "BTC/USD"); ok {
		t.Error("stale quote served")
	}

	tbl.Update(Quote{Exchange: "kraken", Symbol: "BTC/USD", Price: 101})
	q, ok := tbl.Quote(context.Background(), "kraken", "BTC/USD")
	if !ok || q.Price != 101 {
		t.Errorf("fresh quote missing: ok=%v price=%.2f", ok, q.Price)
	}
}
