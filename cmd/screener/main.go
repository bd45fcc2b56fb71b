package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muralinkl/stocks-option-screener/config"
	"github.com/muralinkl/stocks-option-screener/internal/logger"
	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/metrics"
	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/notification"
	"github.com/muralinkl/stocks-option-screener/internal/screener"
	redisstore "github.com/muralinkl/stocks-option-screener/internal/store/redis"
	sqlitestore "github.com/muralinkl/stocks-option-screener/internal/store/sqlite"
	"github.com/muralinkl/stocks-option-screener/internal/token"
	"github.com/muralinkl/stocks-option-screener/internal/universe"
	"github.com/muralinkl/stocks-option-screener/pkg/upstox"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Println("[screener] starting...")

	authCode := flag.String("auth-code", "", "one-time authorization code to exchange before screening")
	once := flag.Bool("once", false, "run a single screening pass and exit")
	flag.Parse()

	cfg := config.Load()
	logger.Init("screener", slog.LevelInfo)

	// ---- Metrics & health ----
	prom := metrics.NewMetrics()
	health := metrics.NewHealthStatus()
	metricsSrv := metrics.NewServer(cfg.MetricsAddr, health)
	metricsSrv.Start()

	// ---- Graceful shutdown ----
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		log.Printf("[screener] received %s, shutting down", s)
		cancel()
	}()

	// ---- SQLite store ----
	os.MkdirAll("data", 0o755)
	store, err := sqlitestore.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("[screener] sqlite init failed: %v", err)
	}
	defer store.Close()
	health.SetSQLiteOK(true)

	// ---- Redis series cache (optional) ----
	var cache *redisstore.Cache
	cache, err = redisstore.New(redisstore.CacheConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		log.Printf("[screener] WARNING: redis init failed: %v (continuing without cache)", err)
		cache = nil
		health.SetRedisConnected(false)
	} else {
		defer cache.Close()
		health.SetRedisConnected(true)
	}

	// ---- Broker client + credential manager ----
	clientCfg := upstox.Config{
		APIKey:      cfg.UpstoxAPIKey,
		APISecret:   cfg.UpstoxAPISecret,
		RedirectURL: cfg.UpstoxRedirectURL,
		Timeout:     cfg.SymbolTimeout,
	}
	authClient := upstox.NewClient(clientCfg, nil)
	manager := token.NewManager(store, authClient, token.WithMetrics(prom))
	broker := upstox.NewClient(clientCfg, manager)

	if *authCode != "" {
		if err := manager.ExchangeCode(ctx, *authCode); err != nil {
			log.Fatalf("[screener] auth code exchange failed: %v", err)
		}
		if profile, err := broker.GetProfile(ctx); err != nil {
			log.Printf("[screener] WARNING: credential verification failed: %v", err)
		} else {
			log.Printf("[screener] authorized as %s (%s)", profile.Name, profile.UserID)
		}
	}
	if expiry, ok := manager.ExpiresAt(ctx); ok {
		health.SetTokenExpiry(expiry)
	} else {
		log.Println("[screener] no credential on file; run with -auth-code to authorize")
	}

	// ---- Liveness probes ----
	if cache != nil {
		health.StartLivenessChecker(ctx, cache.Client(), store.DB(), 30*time.Second)
	} else {
		health.StartLivenessChecker(ctx, nil, store.DB(), 30*time.Second)
	}

	// ---- Notifiers ----
	notifiers := notification.Multi{}
	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, notification.NewWebhookNotifier(cfg.WebhookURL))
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifiers = append(notifiers, notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID))
	}

	// ---- Screening loop ----
	scr := screener.New(broker, store, cacheOrNil(cache), prom)
	stocks := universe.All()
	log.Printf("[screener] universe loaded: %d symbols", len(stocks))

	passSeq := 0
	runPass(ctx, scr, stocks, cfg, health, notifiers, passSeq, true)
	if *once {
		shutdown(metricsSrv)
		return
	}

	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			shutdown(metricsSrv)
			return
		case <-ticker.C:
			if expiry, ok := manager.ExpiresAt(ctx); ok {
				health.SetTokenExpiry(expiry)
			}
			// Background refresh: same pipeline, no progress output.
			passSeq++
			runPass(ctx, scr, stocks, cfg, health, notifiers, passSeq, false)
		}
	}
}

func runPass(ctx context.Context, scr *screener.Screener, stocks []universe.Stock,
	cfg *config.Config, health *metrics.HealthStatus, notifiers notification.Multi,
	seq int, report bool) {

	start := time.Now()
	ctx = logger.WithPassID(ctx, logger.GeneratePassID(seq, start))

	opts := screener.Options{
		Concurrency:       cfg.Workers,
		SymbolTimeout:     cfg.SymbolTimeout,
		LookbackDays:      cfg.LookbackDays,
		Intraday:          markethours.IsMarketOpen(time.Now()),
		IntradayInterval:  cfg.IntradayInterval,
		SyntheticFallback: cfg.SyntheticFallback,
	}
	if report {
		opts.Progress = func(done, total int) {
			fmt.Printf("\r[screener] screening %d/%d", done, total)
			if done == total {
				fmt.Println()
			}
		}
	}

	signals := scr.Screen(ctx, stocks, opts)
	health.SetLastPass(time.Now(), len(signals))

	attrs := []any{
		slog.Int("symbols", len(stocks)),
		slog.Int("signals", len(signals)),
		slog.Duration("took", time.Since(start).Round(time.Millisecond)),
	}
	slog.Info("screening pass complete", append(attrs, logger.LogWithPass(ctx)...)...)

	screener.SortByStrength(signals)
	printTop(signals, 10)

	// Only the reported (foreground) pass pushes a summary; background
	// refreshes would flood the channel every interval.
	if report && len(notifiers) > 0 {
		if err := notifiers.Send(ctx, notification.ScreenSummary(signals, 10)); err != nil {
			log.Printf("[screener] notification failed: %v", err)
		}
	}
}

// printTop logs the strongest directional signals of the pass.
func printTop(signals []model.StockSignal, n int) {
	shown := 0
	for _, sig := range signals {
		if sig.Trend == model.TrendNeutral {
			continue
		}
		log.Printf("[screener] %-12s %-8s price=%.2f hist=%.4f strength=%.2f%%",
			sig.Symbol, sig.Trend, sig.CurrentPrice, sig.MACDHist, sig.IntradayStrengthPct)
		shown++
		if shown == n {
			break
		}
	}
	if shown == 0 {
		log.Println("[screener] no directional signals this pass")
	}
}

// cacheOrNil keeps a nil *Cache from becoming a non-nil interface.
func cacheOrNil(c *redisstore.Cache) screener.SeriesCache {
	if c == nil {
		return nil
	}
	return c
}

func shutdown(srv *metrics.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	srv.Stop(ctx)
	log.Println("[screener] stopped")
}
