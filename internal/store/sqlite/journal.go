// Package sqlite persists executed trades to a local SQLite journal.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"mltrading-systemv1/internal/model"
)

// Config configures the trade journal.
type Config struct {
	DBPath string // e.g. "data/trades.db"
}

// Journal is a single-writer SQLite store for executed trades. It
// satisfies the engine's trade sink contract.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// DB returns the underlying sql.DB for health checks.
func (j *Journal) DB() *sql.DB { return j.db }

// New opens the journal, enabling WAL mode and creating the schema.
func New(cfg Config) (*Journal, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	log.Printf("[sqlite] opened trade journal at %s", cfg.DBPath)
	return &Journal{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			id            TEXT    PRIMARY KEY,
			symbol        TEXT    NOT NULL,
			strategy      TEXT    NOT NULL,
			direction     TEXT    NOT NULL,
			buy_exchange  TEXT    NOT NULL,
			sell_exchange TEXT    NOT NULL,
			amount        REAL    NOT NULL,
			buy_price     REAL    NOT NULL,
			sell_price    REAL    NOT NULL,
			net_profit    REAL    NOT NULL,
			total_fees    REAL    NOT NULL,
			confidence    REAL    NOT NULL,
			models        TEXT,
			position_size REAL,
			executed_at   INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_trades_strategy ON trades (strategy);
		CREATE INDEX IF NOT EXISTS idx_trades_symbol   ON trades (symbol, executed_at);
	`)
	return err
}

// RecordTrade inserts one executed trade.
func (j *Journal) RecordTrade(ctx context.Context, t model.Trade) error {
	models, err := json.Marshal(t.DecidingModels)
	if err != nil {
		return fmt.Errorf("marshal models: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	_, err = j.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades
			(id, symbol, strategy, direction, buy_exchange, sell_exchange,
			 amount, buy_price, sell_price, net_profit, total_fees,
			 confidence, models, position_size, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Symbol, t.Strategy, string(t.Direction), t.BuyExchange, t.SellExchange,
		t.Amount, t.BuyPrice, t.SellPrice, t.NetProfit, t.TotalFees,
		t.Confidence, string(models), t.PositionSize, t.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("sqlite insert trade %s: %w", t.ID, err)
	}
	return nil
}

// RecentTrades returns up to limit trades, newest first.
func (j *Journal) RecentTrades(ctx context.Context, limit int) ([]model.Trade, error) {
	if limit <= 0 {
		limit = 50
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, symbol, strategy, direction, buy_exchange, sell_exchange,
		       amount, buy_price, sell_price, net_profit, total_fees,
		       confidence, models, position_size, executed_at
		FROM trades ORDER BY executed_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite query trades: %w", err)
	}
	defer rows.Close()

	var trades []model.Trade
	for rows.Next() {
		var (
			t      model.Trade
			dir    string
			models sql.NullString
			ts     int64
		)
		err := rows.Scan(&t.ID, &t.Symbol, &t.Strategy, &dir, &t.BuyExchange, &t.SellExchange,
			&t.Amount, &t.BuyPrice, &t.SellPrice, &t.NetProfit, &t.TotalFees,
			&t.Confidence, &models, &t.PositionSize, &ts)
		if err != nil {
			return nil, fmt.Errorf("sqlite scan trade: %w", err)
		}
		t.Direction = model.Direction(dir)
		t.Timestamp = time.Unix(ts, 0).UTC()
		if models.Valid && models.String != "" {
			if err := json.Unmarshal([]byte(models.String), &t.DecidingModels); err != nil {
				log.Printf("[sqlite] bad models column for trade %s: %v", t.ID, err)
			}
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
