package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mltrading-systemv1/internal/model"
)

func TestStatic_NormalizesOnSet(t *testing.T) {
	src := NewStatic(model.EngineSettings{ConfidenceThreshold: 120})
	s, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.ConfidenceThreshold != 95 {
		t.Errorf("threshold=%.1f, want clamped 95", s.ConfidenceThreshold)
	}
	if s.MinTradeSize != 10 || s.MaxTradeSize != 1000 {
		t.Errorf("sizes not defaulted: %+v", s)
	}

	src.Set(model.EngineSettings{ConfidenceThreshold: 20})
	s, _ = src.Load(context.Background())
	if s.ConfidenceThreshold != 50 {
		t.Errorf("threshold=%.1f, want clamped 50", s.ConfidenceThreshold)
	}
}

func TestFileSource_LoadsAndCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	write := func(body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("confidence_threshold: 75\nmin_trade_size: 50\nmax_trade_size: 500\n")
	src := NewFileSource(path)

	s, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.ConfidenceThreshold != 75 || s.MinTradeSize != 50 || s.MaxTradeSize != 500 {
		t.Errorf("loaded %+v", s)
	}
	// Fields absent from the file keep their defaults.
	if !s.UnlimitedTrades || s.TradeFrequencyMs != 3000 {
		t.Errorf("defaults lost: %+v", s)
	}

	// Rewrite with a bumped mtime and confirm the reload is picked up.
	write("confidence_threshold: 80\n")
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	s, err = src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.ConfidenceThreshold != 80 {
		t.Errorf("threshold after reload=%.1f, want 80", s.ConfidenceThreshold)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSource_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileSource(path).Load(context.Background()); err == nil {
		t.Error("expected parse error")
	}
}
