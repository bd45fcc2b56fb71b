// Package screener runs the per-symbol pipeline (series load, intraday
// overlay, indicators, classification) across the stock universe under a
// bounded worker pool. One symbol's failure never touches another's result.
package screener

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/classify"
	"github.com/muralinkl/stocks-option-screener/internal/indicator"
	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/metrics"
	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/series"
	"github.com/muralinkl/stocks-option-screener/internal/universe"
	"github.com/muralinkl/stocks-option-screener/pkg/upstox"
)

const (
	// DefaultConcurrency is the worker pool width, independent of the
	// universe size.
	DefaultConcurrency = 50

	// DefaultSymbolTimeout bounds one symbol's fetch plus classification.
	DefaultSymbolTimeout = 5 * time.Second

	// DefaultLookbackDays is the calendar window requested from the broker,
	// wide enough to yield the 60 trading candles the indicators need.
	DefaultLookbackDays = 120

	// seriesLimit is how many stored candles one classification reads.
	seriesLimit = 90

	// staleAfter marks a persisted series unusable when its newest candle
	// is older than this (a long weekend plus a holiday).
	staleAfter = 4 * 24 * time.Hour
)

// Broker is the slice of the market-data client the screener consumes.
type Broker interface {
	GetDailyCandles(ctx context.Context, symbol, instrumentKey string, lookbackDays int) ([]model.Candle, error)
	GetIntradayCandles(ctx context.Context, instrumentKey string, interval int) ([]model.IntradayCandle, error)
}

// SeriesStore persists daily candles across runs.
type SeriesStore interface {
	FindCandles(ctx context.Context, symbol string, limit int) ([]model.Candle, error)
	UpsertCandles(ctx context.Context, candles []model.Candle) error
}

// SeriesCache is the hot read path in front of the store. Implementations
// are best-effort: a miss or error just falls through.
type SeriesCache interface {
	GetSeries(ctx context.Context, symbol string, limit int) []model.Candle
	SetSeries(ctx context.Context, symbol string, limit int, candles []model.Candle)
}

// Source names where a symbol's daily series came from.
type Source string

const (
	SourceCache     Source = "cache"
	SourceStore     Source = "store"
	SourceBroker    Source = "broker"
	SourceSynthetic Source = "synthetic"
)

// Options parameterize one screening pass. Zero values take defaults.
type Options struct {
	Concurrency      int
	SymbolTimeout    time.Duration
	LookbackDays     int
	Intraday         bool // overlay the live session when the market is open
	IntradayInterval int  // minutes, 1 or 30

	// SyntheticFallback substitutes a deterministic generated series when
	// the broker fetch fails. Off by default; demo and dry-run use only.
	SyntheticFallback bool

	// Progress, when set, receives a monotonically increasing completed
	// count after every symbol, success or failure. Nil runs the same
	// pass silently (background refresh).
	Progress func(done, total int)
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.SymbolTimeout <= 0 {
		o.SymbolTimeout = DefaultSymbolTimeout
	}
	if o.LookbackDays <= 0 {
		o.LookbackDays = DefaultLookbackDays
	}
	if o.IntradayInterval != 30 {
		o.IntradayInterval = 1
	}
	return o
}

// Screener drives screening passes over a fixed set of collaborators.
// Store, cache and metrics may be nil; the pipeline degrades to
// broker-only fetches without them.
type Screener struct {
	broker Broker
	store  SeriesStore
	cache  SeriesCache
	met    *metrics.Metrics
	now    func() time.Time
}

// New creates a Screener. met may be nil.
func New(broker Broker, store SeriesStore, cache SeriesCache, met *metrics.Metrics) *Screener {
	return &Screener{
		broker: broker,
		store:  store,
		cache:  cache,
		met:    met,
		now:    time.Now,
	}
}

// Screen classifies every stock and returns the signals that produced a
// verdict, unordered. Failed or data-insufficient symbols are omitted and
// never abort the pass.
func (s *Screener) Screen(ctx context.Context, stocks []universe.Stock, opts Options) []model.StockSignal {
	opts = opts.withDefaults()
	total := len(stocks)
	if total == 0 {
		return nil
	}
	passStart := s.now()

	jobs := make(chan universe.Stock)
	type outcome struct {
		sig model.StockSignal
		err error
	}
	results := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for stock := range jobs {
				sig, err := s.screenOne(ctx, stock, opts)
				results <- outcome{sig: sig, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, stock := range stocks {
			select {
			case jobs <- stock:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var signals []model.StockSignal
	done := 0
	for out := range results {
		done++
		if out.err != nil {
			s.recordFailure(out.err)
		} else {
			signals = append(signals, out.sig)
			if s.met != nil {
				s.met.SymbolsScreened.WithLabelValues(strings.ToLower(string(out.sig.Trend))).Inc()
			}
		}
		if opts.Progress != nil {
			opts.Progress(done, total)
		}
	}

	if s.met != nil {
		s.met.PassDuration.Observe(s.now().Sub(passStart).Seconds())
	}
	log.Printf("[screener] pass complete: %d/%d classified in %s",
		len(signals), total, s.now().Sub(passStart).Round(time.Millisecond))
	return signals
}

// screenOne runs the full pipeline for one stock under its own timeout.
// Panics are converted to errors so a bad symbol cannot take down the pool.
func (s *Screener) screenOne(ctx context.Context, stock universe.Stock, opts Options) (sig model.StockSignal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("screener: panic on %s: %v", stock.Symbol, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, opts.SymbolTimeout)
	defer cancel()

	start := s.now()
	defer func() {
		if s.met != nil {
			s.met.SymbolDuration.Observe(s.now().Sub(start).Seconds())
		}
	}()

	daily, source, err := s.loadDaily(ctx, stock, opts)
	if err != nil {
		return model.StockSignal{}, fmt.Errorf("screener: %s: %w", stock.Symbol, err)
	}

	if opts.Intraday && markethours.IsMarketOpen(s.now()) {
		daily = s.overlayIntraday(ctx, stock, daily, opts.IntradayInterval)
	}

	frames := indicator.BuildFrames(daily)
	if frames == nil {
		return model.StockSignal{}, fmt.Errorf("screener: %s: %w", stock.Symbol, classify.ErrInsufficientData)
	}
	sig, err = classify.Classify(stock.Symbol, frames)
	if err != nil {
		return model.StockSignal{}, fmt.Errorf("screener: %s: %w", stock.Symbol, err)
	}
	sig.Name = stock.Name
	sig.Source = string(source)
	return sig, nil
}

// loadDaily resolves a symbol's daily series: cache, then store, then a
// broker fetch written through to both, then the optional synthetic
// fallback. Store contents older than staleAfter are treated as a miss.
func (s *Screener) loadDaily(ctx context.Context, stock universe.Stock, opts Options) ([]model.Candle, Source, error) {
	if s.cache != nil {
		if candles := s.cache.GetSeries(ctx, stock.Symbol, seriesLimit); len(candles) > 0 {
			s.count(func(m *metrics.Metrics) { m.CacheHits.Inc() })
			return candles, SourceCache, nil
		}
		s.count(func(m *metrics.Metrics) { m.CacheMisses.Inc() })
	}

	if s.store != nil {
		candles, err := s.store.FindCandles(ctx, stock.Symbol, seriesLimit)
		if err != nil {
			log.Printf("[screener] %s: store read failed: %v", stock.Symbol, err)
		} else if len(candles) >= indicator.MinCandles && s.fresh(candles) {
			s.count(func(m *metrics.Metrics) { m.StoreHits.Inc() })
			if s.cache != nil {
				s.cache.SetSeries(ctx, stock.Symbol, seriesLimit, candles)
			}
			return candles, SourceStore, nil
		}
	}

	candles, err := s.broker.GetDailyCandles(ctx, stock.Symbol, stock.InstrumentKey(), opts.LookbackDays)
	if err != nil {
		if opts.SyntheticFallback {
			s.count(func(m *metrics.Metrics) { m.SyntheticFills.Inc() })
			log.Printf("[screener] %s: broker fetch failed, using synthetic series: %v", stock.Symbol, err)
			return SyntheticSeries(stock.Symbol, syntheticDays, s.now()), SourceSynthetic, nil
		}
		return nil, "", err
	}
	s.count(func(m *metrics.Metrics) { m.BrokerFetches.Inc() })

	if s.store != nil {
		if err := s.store.UpsertCandles(ctx, candles); err != nil {
			log.Printf("[screener] %s: store write-through failed: %v", stock.Symbol, err)
		}
	}
	if s.cache != nil {
		s.cache.SetSeries(ctx, stock.Symbol, seriesLimit, candles)
	}
	return candles, SourceBroker, nil
}

// overlayIntraday folds the live session into the daily series. Any
// intraday failure leaves the persisted series unmodified; that is the
// default path, not an error.
func (s *Screener) overlayIntraday(ctx context.Context, stock universe.Stock, daily []model.Candle, interval int) []model.Candle {
	bars, err := s.broker.GetIntradayCandles(ctx, stock.InstrumentKey(), interval)
	if err != nil {
		if upstox.KindOf(err) != upstox.KindMarketClosed {
			log.Printf("[screener] %s: intraday overlay skipped: %v", stock.Symbol, err)
		}
		return daily
	}
	return series.MergeIntraday(stock.Symbol, daily, series.Reduce(bars), s.now())
}

// fresh reports whether an ascending series ends recently enough to use
// without a refetch.
func (s *Screener) fresh(candles []model.Candle) bool {
	newest := candles[len(candles)-1].Date
	return s.now().Sub(newest) < staleAfter
}

func (s *Screener) recordFailure(err error) {
	kind := string(upstox.KindOf(err))
	if errors.Is(err, classify.ErrInsufficientData) {
		// Not a failure: the symbol simply has no verdict this pass.
		kind = "insufficient_data"
	}
	if s.met != nil {
		s.met.SymbolsFailed.WithLabelValues(kind).Inc()
	}
	log.Printf("[screener] %v (kind=%s)", err, kind)
}

func (s *Screener) count(fn func(*metrics.Metrics)) {
	if s.met != nil {
		fn(s.met)
	}
}

// SortByStrength orders signals by intraday strength descending, symbol
// ascending on ties. Consumers sort after the pass, never during it.
func SortByStrength(signals []model.StockSignal) {
	sort.Slice(signals, func(i, j int) bool {
		if signals[i].IntradayStrengthPct != signals[j].IntradayStrengthPct {
			return signals[i].IntradayStrengthPct > signals[j].IntradayStrengthPct
		}
		return signals[i].Symbol < signals[j].Symbol
	})
}
