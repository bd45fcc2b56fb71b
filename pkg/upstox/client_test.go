package upstox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) { return string(s), nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:         "key",
		APISecret:      "secret",
		BaseURL:        srv.URL,
		Timeout:        2 * time.Second,
		RequestsPerSec: 1000,
	}, staticToken("test-token"))
}

func TestErrorKindMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"401 unauthorized", http.StatusUnauthorized, KindNoCredential},
		{"403 forbidden", http.StatusForbidden, KindNoCredential},
		{"404 not found", http.StatusNotFound, KindNotFound},
		{"429 rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"500 server error", http.StatusInternalServerError, KindTransport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"status":"error","errors":[{"message":"nope"}]}`))
			})

			_, err := c.GetLTP(context.Background(), "NSE_EQ|INE002A01018")
			if err == nil {
				t.Fatal("expected an error")
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.Kind != tc.want {
				t.Errorf("kind: got %s, want %s", apiErr.Kind, tc.want)
			}
			if apiErr.Status != tc.status {
				t.Errorf("status: got %d, want %d", apiErr.Status, tc.status)
			}
			if apiErr.Message != "nope" {
				t.Errorf("message not taken from the error envelope: %q", apiErr.Message)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(nil); got != "" {
		t.Errorf("nil error: got %q", got)
	}
	if got := KindOf(context.DeadlineExceeded); got != KindTimeout {
		t.Errorf("deadline: got %s, want %s", got, KindTimeout)
	}
	if got := KindOf(errors.New("connection refused")); got != KindTransport {
		t.Errorf("plain error: got %s, want %s", got, KindTransport)
	}
	wrapped := &APIError{Kind: KindRateLimited, Status: 429, Message: "slow down"}
	if got := KindOf(wrapped); got != KindRateLimited {
		t.Errorf("api error: got %s, want %s", got, KindRateLimited)
	}
}

func TestNoTokenSource_FailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server without a credential")
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", APISecret: "secret", BaseURL: srv.URL}, nil)
	_, err := c.GetLTP(context.Background(), "NSE_EQ|X")
	if !IsCredential(err) {
		t.Fatalf("expected a credential failure, got %v", err)
	}
}

func TestGetDailyCandles_AscendingAndStamped(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		// The API serves newest first; the client must re-sort.
		w.Write([]byte(`{"status":"success","data":{"candles":[
			["2026-08-28T00:00:00+05:30",102,106,101,105,12000,0],
			["2026-08-27T00:00:00+05:30",100,104,99,102,11000,0],
			["2026-08-26T00:00:00+05:30",98,101,97,100,10000,0]
		]}}`))
	})

	candles, err := c.GetDailyCandles(context.Background(), "RELIANCE", "NSE_EQ|INE002A01018", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization header: %q", gotAuth)
	}
	if len(candles) != 3 {
		t.Fatalf("expected 3 candles, got %d", len(candles))
	}
	for i := 1; i < len(candles); i++ {
		if !candles[i-1].Date.Before(candles[i].Date) {
			t.Fatalf("candles not ascending at %d", i)
		}
	}
	for _, c := range candles {
		if c.Symbol != "RELIANCE" {
			t.Errorf("symbol not stamped: %q", c.Symbol)
		}
	}
	if candles[2].Close != 105 || candles[2].Volume != 12000 {
		t.Errorf("newest candle wrong: %+v", candles[2])
	}
}

func TestGetDailyCandles_EmptyIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"candles":[]}}`))
	})
	_, err := c.GetDailyCandles(context.Background(), "X", "NSE_EQ|X", 30)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found for an empty series, got %v", err)
	}
}

func TestGetLTP(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"NSE_EQ:RELIANCE":{"last_price":2843.55,"instrument_token":"NSE_EQ|INE002A01018"}}}`))
	})
	ltp, err := c.GetLTP(context.Background(), "NSE_EQ|INE002A01018")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ltp != 2843.55 {
		t.Fatalf("got %.2f, want 2843.55", ltp)
	}
}

func TestGetOptionContracts_DropsBadExpiries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("instrument_key") == "" {
			t.Error("missing instrument_key query parameter")
		}
		w.Write([]byte(`{"status":"success","data":[
			{"instrument_key":"NSE_FO|1","trading_symbol":"REL950CE","strike_price":950,"expiry":"2026-09-24","instrument_type":"CE","lot_size":250},
			{"instrument_key":"NSE_FO|2","trading_symbol":"REL980CE","strike_price":980,"expiry":"not-a-date","instrument_type":"CE","lot_size":250},
			{"instrument_key":"NSE_FO|3","trading_symbol":"REL1000PE","strike_price":1000,"expiry":"2026-09-24","instrument_type":"PE","lot_size":250}
		]}`))
	})

	contracts, err := c.GetOptionContracts(context.Background(), "NSE_EQ|INE002A01018", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("expected the bad expiry to be dropped, got %d contracts", len(contracts))
	}
	if contracts[0].Type != "CE" || contracts[1].Type != "PE" {
		t.Errorf("types wrong: %+v", contracts)
	}
	if contracts[0].LotSize != 250 {
		t.Errorf("lot size: got %d", contracts[0].LotSize)
	}
}

func orderParamsFixture() model.OrderParams {
	return model.OrderParams{
		InstrumentKey:   "NSE_FO|12345",
		Quantity:        250,
		TransactionType: model.SideBuy,
		OrderType:       model.OrderTypeLimit,
		Product:         model.ProductIntraday,
		Price:           104.5,
	}
}

func TestPlaceOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"status":"success","data":{"order_id":"260828000123"}}`))
	})

	orderID, err := c.PlaceOrder(context.Background(), orderParamsFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != "260828000123" {
		t.Fatalf("got %q", orderID)
	}
}

func TestGetOrderStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("order_id"); got != "260828000123" {
			t.Errorf("order_id query = %q", got)
		}
		w.Write([]byte(`{"status":"success","data":{
			"order_id":"260828000123","instrument_token":"NSE_FO|12345",
			"trading_symbol":"REL980CE","transaction_type":"BUY","order_type":"LIMIT",
			"quantity":250,"price":104.5,"status":"complete",
			"filled_quantity":250,"average_price":104.3,
			"order_timestamp":"2026-08-28 10:15:42"}}`))
	})

	ord, err := c.GetOrderStatus(context.Background(), "260828000123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.Status != "complete" || ord.FilledQty != 250 {
		t.Errorf("order = %+v", ord)
	}
	if ord.AvgPrice != 104.3 {
		t.Errorf("average price = %v", ord.AvgPrice)
	}
	if ord.PlacedAt.IsZero() {
		t.Error("timestamp not parsed")
	}
}
