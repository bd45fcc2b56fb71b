// Package execution turns classified signals into hedged option bracket
// trades: a LIMIT buy of the nearest in-the-money contract plus a LIMIT
// sell at the profit target, both intraday.
package execution

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/metrics"
	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/options"
	"github.com/muralinkl/stocks-option-screener/internal/universe"
)

// TradeStatus classifies how far a stock's bracket got.
type TradeStatus string

const (
	StatusSuccess      TradeStatus = "success"
	StatusSkipped      TradeStatus = "skipped"       // signal was not directional
	StatusFailed       TradeStatus = "failed"        // before any order was placed
	StatusBuyFailed    TradeStatus = "buy_failed"    // buy rejected, nothing placed
	StatusTargetFailed TradeStatus = "target_failed" // buy live, target leg rejected
)

// TradeResult is the per-stock outcome of one bracket attempt. A failed
// stock never aborts the batch.
type TradeResult struct {
	Symbol        string           `json:"symbol"`
	Trend         model.Trend      `json:"trend"`
	OptionType    model.OptionType `json:"option_type,omitempty"`
	TradingSymbol string           `json:"trading_symbol,omitempty"`
	StrikePrice   float64          `json:"strike_price,omitempty"`
	Expiry        time.Time        `json:"expiry,omitempty"`
	LotSize       int64            `json:"lot_size,omitempty"`
	OptionLTP     float64          `json:"option_ltp,omitempty"`
	BuyPrice      float64          `json:"buy_price,omitempty"`
	TargetPrice   float64          `json:"target_price,omitempty"`
	BuyOrderID    string           `json:"buy_order_id,omitempty"`
	TargetOrderID string           `json:"target_order_id,omitempty"`
	Status        TradeStatus      `json:"status"`
	Error         string           `json:"error,omitempty"`
}

// OrderBroker is the slice of the broker client the runner consumes.
type OrderBroker interface {
	GetOptionContracts(ctx context.Context, instrumentKey string, expiry *time.Time) ([]model.OptionContract, error)
	GetLTP(ctx context.Context, instrumentKey string) (float64, error)
	PlaceOrder(ctx context.Context, params model.OrderParams) (string, error)
}

// Config holds the bracket parameters.
type Config struct {
	BuyBufferPct    float64 // markup over LTP on the buy leg
	ProfitTargetPct float64 // target over LTP on the sell leg
}

func (c Config) withDefaults() Config {
	if c.BuyBufferPct <= 0 {
		c.BuyBufferPct = options.DefaultBuyBufferPct
	}
	if c.ProfitTargetPct <= 0 {
		c.ProfitTargetPct = options.DefaultProfitTargetPct
	}
	return c
}

// Runner places bracket trades for directional signals.
type Runner struct {
	broker  OrderBroker
	journal *Journal
	met     *metrics.Metrics
	cfg     Config
	now     func() time.Time
}

// NewRunner creates a bracket trade runner. journal and met may be nil.
func NewRunner(broker OrderBroker, journal *Journal, met *metrics.Metrics, cfg Config) *Runner {
	return &Runner{
		broker:  broker,
		journal: journal,
		met:     met,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

// Run attempts one bracket trade per signal, sequentially, and returns a
// result for every input. Neutral signals are skipped, errors recorded.
func (r *Runner) Run(ctx context.Context, signals []model.StockSignal) []TradeResult {
	results := make([]TradeResult, 0, len(signals))
	for _, sig := range signals {
		res := r.trade(ctx, sig)
		if r.journal != nil {
			if err := r.journal.Record(res); err != nil {
				log.Printf("[execution] %s: journal write failed: %v", res.Symbol, err)
			}
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) trade(ctx context.Context, sig model.StockSignal) TradeResult {
	res := TradeResult{Symbol: sig.Symbol, Trend: sig.Trend}

	var typ model.OptionType
	switch sig.Trend {
	case model.TrendBullish:
		typ = model.OptionCall
	case model.TrendBearish:
		typ = model.OptionPut
	default:
		res.Status = StatusSkipped
		res.Error = "signal is not directional"
		return res
	}
	res.OptionType = typ

	stock, ok := universe.Lookup(sig.Symbol)
	if !ok || !stock.HasOptions {
		return r.fail(res, StatusFailed, fmt.Errorf("no option chain for %s", sig.Symbol))
	}

	chain, err := r.broker.GetOptionContracts(ctx, stock.InstrumentKey(), nil)
	if err != nil {
		return r.fail(res, StatusFailed, fmt.Errorf("fetching contracts: %w", err))
	}

	expiry, err := options.NearestExpiry(chain, r.now())
	if err != nil {
		return r.fail(res, StatusFailed, fmt.Errorf("resolving expiry: %w", err))
	}
	res.Expiry = expiry

	contract, err := options.SelectITM(options.ForExpiry(chain, expiry), sig.CurrentPrice, typ)
	if err != nil {
		return r.fail(res, StatusFailed, fmt.Errorf("selecting contract: %w", err))
	}
	res.TradingSymbol = contract.TradingSymbol
	res.StrikePrice = contract.StrikePrice
	res.LotSize = contract.LotSize

	ltp, err := r.broker.GetLTP(ctx, contract.InstrumentKey)
	if err != nil {
		return r.fail(res, StatusFailed, fmt.Errorf("fetching option ltp: %w", err))
	}
	res.OptionLTP = ltp

	buy, target := options.BracketPrices(ltp, r.cfg.BuyBufferPct, r.cfg.ProfitTargetPct)
	res.BuyPrice = buy
	res.TargetPrice = target

	// MARKET orders are rejected for options; both legs are LIMIT.
	buyID, err := r.broker.PlaceOrder(ctx, model.OrderParams{
		InstrumentKey:   contract.InstrumentKey,
		Quantity:        contract.LotSize,
		TransactionType: model.SideBuy,
		OrderType:       model.OrderTypeLimit,
		Product:         model.ProductIntraday,
		Price:           buy,
	})
	if err != nil {
		return r.fail(res, StatusBuyFailed, fmt.Errorf("buy leg: %w", err))
	}
	res.BuyOrderID = buyID
	r.placed("buy")

	targetID, err := r.broker.PlaceOrder(ctx, model.OrderParams{
		InstrumentKey:   contract.InstrumentKey,
		Quantity:        contract.LotSize,
		TransactionType: model.SideSell,
		OrderType:       model.OrderTypeLimit,
		Product:         model.ProductIntraday,
		Price:           target,
	})
	if err != nil {
		// The buy is live without its hedge leg; flag loudly.
		log.Printf("[execution] %s: target leg failed with buy order %s open: %v",
			sig.Symbol, buyID, err)
		return r.fail(res, StatusTargetFailed, fmt.Errorf("target leg: %w", err))
	}
	res.TargetOrderID = targetID
	r.placed("target")

	res.Status = StatusSuccess
	log.Printf("[execution] %s %s %s strike=%.2f lots=%d buy=%.2f target=%.2f",
		sig.Symbol, sig.Trend, contract.TradingSymbol, contract.StrikePrice,
		contract.LotSize, buy, target)
	return res
}

func (r *Runner) fail(res TradeResult, status TradeStatus, err error) TradeResult {
	res.Status = status
	res.Error = err.Error()
	if r.met != nil {
		r.met.TradesFailed.Inc()
	}
	log.Printf("[execution] %s: %s: %v", res.Symbol, status, err)
	return res
}

func (r *Runner) placed(leg string) {
	if r.met != nil {
		r.met.TradesPlaced.WithLabelValues(leg).Inc()
	}
}
