package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/muralinkl/stocks-option-screener/config"
	"github.com/muralinkl/stocks-option-screener/internal/execution"
	"github.com/muralinkl/stocks-option-screener/internal/logger"
	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/notification"
	"github.com/muralinkl/stocks-option-screener/internal/screener"
	redisstore "github.com/muralinkl/stocks-option-screener/internal/store/redis"
	sqlitestore "github.com/muralinkl/stocks-option-screener/internal/store/sqlite"
	"github.com/muralinkl/stocks-option-screener/internal/token"
	"github.com/muralinkl/stocks-option-screener/internal/universe"
	"github.com/muralinkl/stocks-option-screener/pkg/upstox"
)

// cmd/trade runs one screening pass and places bracket trades for the
// directional picks. Defaults to paper trading; set PAPER_TRADING=false
// to place real orders.
func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Println("[trade] starting...")

	maxTrades := flag.Int("max-trades", 5, "cap on bracket trades placed this run")
	flag.Parse()

	cfg := config.Load()
	logger.Init("trade", slog.LevelInfo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if !markethours.IsTradingDay(time.Now()) {
		log.Println("[trade] not a trading day, nothing to do")
		return
	}

	// ---- Storage ----
	os.MkdirAll("data", 0o755)
	store, err := sqlitestore.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("[trade] sqlite init failed: %v", err)
	}
	defer store.Close()

	var cache *redisstore.Cache
	cache, err = redisstore.New(redisstore.CacheConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		log.Printf("[trade] WARNING: redis init failed: %v (continuing without cache)", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// ---- Broker + credentials ----
	clientCfg := upstox.Config{
		APIKey:      cfg.UpstoxAPIKey,
		APISecret:   cfg.UpstoxAPISecret,
		RedirectURL: cfg.UpstoxRedirectURL,
		Timeout:     cfg.SymbolTimeout,
	}
	authClient := upstox.NewClient(clientCfg, nil)
	manager := token.NewManager(store, authClient)
	broker := upstox.NewClient(clientCfg, manager)

	// ---- Screen ----
	scr := screener.New(broker, store, cacheOrNil(cache), nil)
	signals := scr.Screen(ctx, universe.All(), screener.Options{
		Concurrency:       cfg.Workers,
		SymbolTimeout:     cfg.SymbolTimeout,
		LookbackDays:      cfg.LookbackDays,
		Intraday:          markethours.IsMarketOpen(time.Now()),
		IntradayInterval:  cfg.IntradayInterval,
		SyntheticFallback: cfg.SyntheticFallback,
	})
	screener.SortByStrength(signals)

	picks := directional(signals, *maxTrades)
	if len(picks) == 0 {
		log.Println("[trade] no directional signals, nothing to trade")
		return
	}
	log.Printf("[trade] %d directional picks (cap %d)", len(picks), *maxTrades)

	// ---- Execute ----
	journal, err := execution.NewJournal(cfg.JournalPath)
	if err != nil {
		log.Fatalf("[trade] journal init failed: %v", err)
	}
	defer journal.Close()

	var orderBroker execution.OrderBroker = broker
	if cfg.PaperTrading {
		log.Println("[trade] paper trading mode, orders are simulated")
		orderBroker = execution.NewPaperBroker(broker)
	}
	runner := execution.NewRunner(orderBroker, journal, nil, execution.Config{
		BuyBufferPct:    cfg.BuyBufferPct,
		ProfitTargetPct: cfg.ProfitTargetPct,
	})
	results := runner.Run(ctx, picks)

	// Live orders may still be pending; report what the broker sees.
	if !cfg.PaperTrading {
		for _, res := range results {
			if res.BuyOrderID == "" {
				continue
			}
			if ord, err := broker.GetOrderStatus(ctx, res.BuyOrderID); err == nil {
				log.Printf("[trade] %s buy order %s: %s filled=%d/%d",
					res.Symbol, ord.OrderID, ord.Status, ord.FilledQty, ord.Quantity)
			}
		}
	}

	for _, res := range results {
		slog.Info("bracket attempt",
			slog.String("symbol", res.Symbol),
			slog.String("trend", string(res.Trend)),
			slog.String("status", string(res.Status)),
			slog.String("buy_order", res.BuyOrderID),
		)
	}

	// ---- Notify ----
	notifiers := notification.Multi{notification.NewLogNotifier()}
	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, notification.NewWebhookNotifier(cfg.WebhookURL))
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifiers = append(notifiers, notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID))
	}
	if err := notifiers.Send(ctx, notification.TradeBatchSummary(results)); err != nil {
		log.Printf("[trade] notification failed: %v", err)
	}

	log.Println("[trade] done")
}

// directional keeps the first n non-neutral signals of a sorted slice.
func directional(signals []model.StockSignal, n int) []model.StockSignal {
	var out []model.StockSignal
	for _, sig := range signals {
		if sig.Trend == model.TrendNeutral {
			continue
		}
		out = append(out, sig)
		if len(out) == n {
			break
		}
	}
	return out
}

func cacheOrNil(c *redisstore.Cache) screener.SeriesCache {
	if c == nil {
		return nil
	}
	return c
}
