package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mltrading-systemv1/config"
	"mltrading-systemv1/internal/engine"
	"mltrading-systemv1/internal/logger"
	"mltrading-systemv1/internal/marketdata"
	"mltrading-systemv1/internal/metrics"
	"mltrading-systemv1/internal/model"
	"mltrading-systemv1/internal/notification"
	"mltrading-systemv1/internal/settings"
	redisstore "mltrading-systemv1/internal/store/redis"
	"mltrading-systemv1/internal/store/sqlite"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	cfg := config.Load()
	slogger := logger.Init("trading-engine", slog.LevelInfo)

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	met := metrics.NewMetrics()
	health := metrics.NewHealthStatus()
	metricsSrv := metrics.NewServer(cfg.MetricsAddr, health)
	metricsSrv.Start()

	// Market data: quote table fed by WS or by the simulator.
	table := marketdata.NewTable(marketdata.TableConfig{
		Symbols:   cfg.ParseSymbols(),
		Exchanges: cfg.ParseExchanges(),
		Staleness: 2 * time.Minute,
	})

	// When Redis is configured the engine's quote reads fall back to the
	// cache on a table miss, so prices survive a restart of this process.
	var market marketdata.Provider = table
	var quoteCache *redisstore.QuoteCache
	if cfg.RedisAddr != "" {
		var err error
		quoteCache, err = redisstore.New(redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			log.Fatalf("[main] redis init failed: %v", err)
		}
		defer quoteCache.Close()
		market = marketdata.NewCachedTable(table, quoteCache)
	}

	onQuote := func(q marketdata.Quote) {
		met.QuotesIngested.Inc()
		if quoteCache != nil {
			cctx, ccancel := context.WithTimeout(ctx, time.Second)
			quoteCache.Store(cctx, q)
			ccancel()
		}
	}

	if cfg.FeedURL != "" {
		feed := marketdata.NewFeed(marketdata.FeedConfig{
			URL:     cfg.FeedURL,
			Symbols: cfg.ParseSymbols(),
		}, table)
		feed.OnQuote = onQuote
		feed.OnReconnect = func() {
			met.FeedReconnects.Inc()
			health.SetFeedConnected(false)
		}
		go func() {
			health.SetFeedConnected(true)
			if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("[main] feed stopped: %v", err)
			}
		}()
	} else {
		sim := marketdata.NewSimFeed(table, rand.New(rand.NewSource(seed+1)), time.Second)
		sim.OnQuote = onQuote
		health.SetFeedConnected(true)
		go sim.Run(ctx)
	}

	// Trade journal.
	journal, err := sqlite.New(sqlite.Config{DBPath: cfg.SQLitePath})
	if err != nil {
		log.Fatalf("[main] sqlite init failed: %v", err)
	}
	defer journal.Close()

	if recent, err := journal.RecentTrades(ctx, 5); err != nil {
		log.Printf("[main] journal read failed: %v", err)
	} else if len(recent) > 0 {
		slogger.Info("trade journal resumed",
			"recent_trades", len(recent),
			"last_trade_id", recent[0].ID,
			"last_executed_at", recent[0].Timestamp)
	}

	if quoteCache != nil {
		health.StartLivenessChecker(ctx, quoteCache.Client(), journal.DB(), 15*time.Second)
	} else {
		health.StartLivenessChecker(ctx, nil, journal.DB(), 15*time.Second)
	}

	// Notifications.
	backends := []notification.Notifier{notification.NewLogNotifier()}
	if cfg.WebhookURL != "" {
		backends = append(backends, notification.NewWebhookNotifier(cfg.WebhookURL))
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		backends = append(backends, notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID))
	}
	notifier := notification.NewFanout(backends...)

	// Settings source.
	var source settings.Source
	if cfg.SettingsPath != "" {
		source = settings.NewFileSource(cfg.SettingsPath)
	} else {
		source = settings.NewStatic(model.DefaultSettings())
	}

	eng := engine.New(engine.Config{
		Market:   market,
		Settings: source,
		Sink:     journal,
		Notifier: notifier,
		Metrics:  met,
		Health:   health,
		Logger:   slogger,
		Rand:     rng,
	})

	if res := eng.Start(cfg.CycleMs); !res.Success {
		log.Fatalf("[main] engine start failed: %s", res.Message)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slogger.Info("shutdown signal received")

	eng.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	metricsSrv.Stop(shutdownCtx)
	shutdownCancel()
}
