package execution

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeOrderBroker struct {
	chain        []model.OptionContract
	ltp          float64
	contractsErr error
	ltpErr       error
	failBuy      bool
	failTarget   bool

	placed []model.OrderParams
	seq    int
}

func (f *fakeOrderBroker) GetOptionContracts(ctx context.Context, instrumentKey string, expiry *time.Time) ([]model.OptionContract, error) {
	if f.contractsErr != nil {
		return nil, f.contractsErr
	}
	return f.chain, nil
}

func (f *fakeOrderBroker) GetLTP(ctx context.Context, instrumentKey string) (float64, error) {
	if f.ltpErr != nil {
		return 0, f.ltpErr
	}
	return f.ltp, nil
}

func (f *fakeOrderBroker) PlaceOrder(ctx context.Context, params model.OrderParams) (string, error) {
	if params.TransactionType == model.SideBuy && f.failBuy {
		return "", errors.New("buy rejected")
	}
	if params.TransactionType == model.SideSell && f.failTarget {
		return "", errors.New("target rejected")
	}
	f.placed = append(f.placed, params)
	f.seq++
	return "ORD-" + strconv.Itoa(f.seq), nil
}

// chainFixture builds a small CE/PE chain around a 1000 spot, at the given
// near expiry plus one contract a month out to exercise expiry filtering.
func chainFixture(near time.Time) []model.OptionContract {
	far := near.AddDate(0, 1, 0)
	mk := func(strike float64, typ model.OptionType, expiry time.Time) model.OptionContract {
		side := "CE"
		if typ == model.OptionPut {
			side = "PE"
		}
		return model.OptionContract{
			InstrumentKey: "NSE_FO|" + strconv.Itoa(int(strike)) + side,
			TradingSymbol: "TEST" + strconv.Itoa(int(strike)) + side,
			StrikePrice:   strike,
			Expiry:        expiry,
			Type:          typ,
			LotSize:       250,
		}
	}
	return []model.OptionContract{
		mk(950, model.OptionCall, near),
		mk(980, model.OptionCall, near),
		mk(1010, model.OptionCall, near),
		mk(990, model.OptionPut, near),
		mk(1010, model.OptionPut, near),
		mk(1040, model.OptionPut, near),
		// Far-dated ITM call that would win on strike distance if the
		// runner failed to pin the nearest expiry first.
		mk(999, model.OptionCall, far),
	}
}

func bullishSignal(symbol string) model.StockSignal {
	return model.StockSignal{Symbol: symbol, Trend: model.TrendBullish, CurrentPrice: 1000}
}

// ─────────────────────────────────────────────────────────────────────────────
// Bracket placement
// ─────────────────────────────────────────────────────────────────────────────

func TestRunBullishPlacesCallBracket(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 100}
	r := NewRunner(broker, nil, nil, Config{BuyBufferPct: 0.2, ProfitTargetPct: 2.5})

	results := r.Run(context.Background(), []model.StockSignal{bullishSignal("BAJAJ-AUTO")})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Error)
	}
	if res.OptionType != model.OptionCall {
		t.Errorf("option type = %s, want CE", res.OptionType)
	}
	// Nearest ITM call below 1000 at the near expiry is the 980 strike.
	if res.StrikePrice != 980 {
		t.Errorf("strike = %.0f, want 980", res.StrikePrice)
	}
	if !res.Expiry.Equal(near) {
		t.Errorf("expiry = %v, want %v", res.Expiry, near)
	}
	if math.Abs(res.BuyPrice-100.20) > 1e-9 {
		t.Errorf("buy price = %.2f, want 100.20", res.BuyPrice)
	}
	if math.Abs(res.TargetPrice-102.50) > 1e-9 {
		t.Errorf("target price = %.2f, want 102.50", res.TargetPrice)
	}
	if res.BuyOrderID == "" || res.TargetOrderID == "" {
		t.Errorf("order IDs missing: %+v", res)
	}

	if len(broker.placed) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(broker.placed))
	}
	buy, target := broker.placed[0], broker.placed[1]
	if buy.TransactionType != model.SideBuy || target.TransactionType != model.SideSell {
		t.Errorf("leg sides wrong: %s then %s", buy.TransactionType, target.TransactionType)
	}
	for _, leg := range broker.placed {
		if leg.OrderType != model.OrderTypeLimit {
			t.Errorf("leg order type = %s, want LIMIT", leg.OrderType)
		}
		if leg.Product != model.ProductIntraday {
			t.Errorf("leg product = %s, want I", leg.Product)
		}
		if leg.Quantity != 250 {
			t.Errorf("leg quantity = %d, want lot size 250", leg.Quantity)
		}
	}
}

func TestRunBearishSelectsPut(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 55}
	r := NewRunner(broker, nil, nil, Config{})

	sig := model.StockSignal{Symbol: "BIOCON", Trend: model.TrendBearish, CurrentPrice: 1000}
	res := r.Run(context.Background(), []model.StockSignal{sig})[0]
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Error)
	}
	if res.OptionType != model.OptionPut {
		t.Errorf("option type = %s, want PE", res.OptionType)
	}
	// Nearest ITM put above 1000 is the 1010 strike.
	if res.StrikePrice != 1010 {
		t.Errorf("strike = %.0f, want 1010", res.StrikePrice)
	}
}

func TestRunSkipsNeutral(t *testing.T) {
	broker := &fakeOrderBroker{ltp: 100}
	r := NewRunner(broker, nil, nil, Config{})

	sig := model.StockSignal{Symbol: "BAJAJ-AUTO", Trend: model.TrendNeutral, CurrentPrice: 1000}
	res := r.Run(context.Background(), []model.StockSignal{sig})[0]
	if res.Status != StatusSkipped {
		t.Errorf("status = %s, want skipped", res.Status)
	}
	if len(broker.placed) != 0 {
		t.Errorf("neutral signal placed %d orders", len(broker.placed))
	}
}

func TestRunUnknownSymbolFails(t *testing.T) {
	broker := &fakeOrderBroker{chain: chainFixture(time.Now().AddDate(0, 0, 3)), ltp: 100}
	r := NewRunner(broker, nil, nil, Config{})

	res := r.Run(context.Background(), []model.StockSignal{bullishSignal("NOSUCHSTOCK")})[0]
	if res.Status != StatusFailed {
		t.Errorf("status = %s, want failed", res.Status)
	}
	if !strings.Contains(res.Error, "no option chain") {
		t.Errorf("error = %q", res.Error)
	}
	if len(broker.placed) != 0 {
		t.Errorf("unknown symbol placed %d orders", len(broker.placed))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Failure modes
// ─────────────────────────────────────────────────────────────────────────────

func TestRunBuyRejection(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 100, failBuy: true}
	r := NewRunner(broker, nil, nil, Config{})

	res := r.Run(context.Background(), []model.StockSignal{bullishSignal("BAJAJ-AUTO")})[0]
	if res.Status != StatusBuyFailed {
		t.Errorf("status = %s, want buy_failed", res.Status)
	}
	if res.BuyOrderID != "" || res.TargetOrderID != "" {
		t.Errorf("no order IDs should be set after a buy rejection: %+v", res)
	}
	if len(broker.placed) != 0 {
		t.Errorf("buy rejection left %d orders placed", len(broker.placed))
	}
}

func TestRunTargetRejectionKeepsBuyID(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 100, failTarget: true}
	r := NewRunner(broker, nil, nil, Config{})

	res := r.Run(context.Background(), []model.StockSignal{bullishSignal("BAJAJ-AUTO")})[0]
	if res.Status != StatusTargetFailed {
		t.Errorf("status = %s, want target_failed", res.Status)
	}
	if res.BuyOrderID == "" {
		t.Error("buy order ID must survive a target rejection, the leg is live")
	}
	if res.TargetOrderID != "" {
		t.Errorf("target order ID set to %q after rejection", res.TargetOrderID)
	}
}

func TestRunFailureDoesNotAbortBatch(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 100}
	r := NewRunner(broker, nil, nil, Config{})

	signals := []model.StockSignal{
		bullishSignal("NOSUCHSTOCK"),
		{Symbol: "CANBK", Trend: model.TrendNeutral},
		bullishSignal("BAJAJ-AUTO"),
	}
	results := r.Run(context.Background(), signals)
	if len(results) != 3 {
		t.Fatalf("expected a result per signal, got %d", len(results))
	}
	want := []TradeStatus{StatusFailed, StatusSkipped, StatusSuccess}
	for i, w := range want {
		if results[i].Status != w {
			t.Errorf("results[%d].Status = %s, want %s", i, results[i].Status, w)
		}
	}
}

func TestRunContractFetchError(t *testing.T) {
	broker := &fakeOrderBroker{contractsErr: errors.New("rate limited")}
	r := NewRunner(broker, nil, nil, Config{})

	res := r.Run(context.Background(), []model.StockSignal{bullishSignal("BAJAJ-AUTO")})[0]
	if res.Status != StatusFailed {
		t.Errorf("status = %s, want failed", res.Status)
	}
	if !strings.Contains(res.Error, "fetching contracts") {
		t.Errorf("error = %q", res.Error)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Journal
// ─────────────────────────────────────────────────────────────────────────────

func TestRunWritesJournal(t *testing.T) {
	journal, err := NewJournal(filepath.Join(t.TempDir(), "trades.db"))
	if err != nil {
		t.Fatalf("opening journal: %v", err)
	}
	defer journal.Close()

	near := time.Now().AddDate(0, 0, 3)
	broker := &fakeOrderBroker{chain: chainFixture(near), ltp: 100}
	r := NewRunner(broker, journal, nil, Config{})

	r.Run(context.Background(), []model.StockSignal{
		bullishSignal("BAJAJ-AUTO"),
		{Symbol: "CANBK", Trend: model.TrendNeutral},
	})

	entries, err := journal.Recent(10)
	if err != nil {
		t.Fatalf("reading journal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal rows, got %d", len(entries))
	}
	// Recent returns newest first.
	if entries[0].Symbol != "CANBK" || entries[0].Status != string(StatusSkipped) {
		t.Errorf("newest entry = %+v", entries[0])
	}
	if entries[1].Symbol != "BAJAJ-AUTO" || entries[1].Status != string(StatusSuccess) {
		t.Errorf("oldest entry = %+v", entries[1])
	}
	if entries[1].BuyOrderID == "" {
		t.Error("journal dropped the buy order ID")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Paper trading
// ─────────────────────────────────────────────────────────────────────────────

func TestPaperBrokerSimulatesPlacement(t *testing.T) {
	near := time.Now().AddDate(0, 0, 3)
	live := &fakeOrderBroker{chain: chainFixture(near), ltp: 100}
	paper := NewPaperBroker(live)
	r := NewRunner(paper, nil, nil, Config{})

	res := r.Run(context.Background(), []model.StockSignal{bullishSignal("BAJAJ-AUTO")})[0]
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Error)
	}
	if !strings.HasPrefix(res.BuyOrderID, "PAPER-") {
		t.Errorf("buy order ID = %q, want PAPER- prefix", res.BuyOrderID)
	}
	if len(live.placed) != 0 {
		t.Errorf("paper broker leaked %d orders to the live broker", len(live.placed))
	}
	orders := paper.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 simulated orders, got %d", len(orders))
	}
	if orders[0].Params.TransactionType != model.SideBuy {
		t.Errorf("first simulated order side = %s", orders[0].Params.TransactionType)
	}
}
