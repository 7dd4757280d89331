package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Market data. Empty FeedURL runs the built-in quote simulator.
	FeedURL   string
	Symbols   string // comma-separated, e.g. "BTC/USD,ETH/USD"
	Exchanges string // comma-separated, e.g. "kraken,binance"

	// Infrastructure. Empty RedisAddr disables the quote cache.
	RedisAddr     string
	RedisPassword string
	SQLitePath    string
	MetricsAddr   string

	// Engine
	SettingsPath string // YAML settings file; empty = built-in defaults
	CycleMs      int
	RandSeed     int64 // 0 = time-seeded

	// Notifications (all optional)
	WebhookURL       string
	TelegramBotToken string
	TelegramChatID   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		FeedURL:   getEnv("FEED_URL", ""),
		Symbols:   getEnv("SYMBOLS", "BTC/USD,ETH/USD,SOL/USD"),
		Exchanges: getEnv("EXCHANGES", "kraken,binance,coinbase"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/trades.db"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),

		SettingsPath: getEnv("SETTINGS_PATH", ""),
		CycleMs:      getEnvInt("CYCLE_MS", 3000),
		RandSeed:     int64(getEnvInt("RAND_SEED", 0)),

		WebhookURL:       getEnv("WEBHOOK_URL", ""),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}
}

// ParseSymbols splits the Symbols string into a clean slice.
func (c *Config) ParseSymbols() []string {
	return splitCSV(c.Symbols)
}

// ParseExchanges splits the Exchanges string into a clean slice.
func (c *Config) ParseExchanges() []string {
	return splitCSV(c.Exchanges)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
