package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testCandles(symbol string, days int) []model.Candle {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.Candle, days)
	for i := 0; i < days; i++ {
		out[i] = model.Candle{
			Symbol: symbol,
			Date:   day.AddDate(0, 0, i),
			Open:   100 + float64(i),
			High:   105 + float64(i),
			Low:    95 + float64(i),
			Close:  102 + float64(i),
			Volume: int64(1000 * (i + 1)),
		}
	}
	return out
}

func TestCandles_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := testCandles("RELIANCE", 10)
	if err := store.UpsertCandles(ctx, want); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.FindCandles(ctx, "RELIANCE", 90)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candles, got %d", len(want), len(got))
	}
	// Returned ascending.
	for i := range got {
		if got[i].DateString() != want[i].DateString() {
			t.Errorf("candle %d: date %s, want %s", i, got[i].DateString(), want[i].DateString())
		}
		if got[i].Close != want[i].Close || got[i].Volume != want[i].Volume {
			t.Errorf("candle %d: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestCandles_UpsertReplacesSameDate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	candles := testCandles("TCS", 5)
	if err := store.UpsertCandles(ctx, candles); err != nil {
		t.Fatal(err)
	}

	// Re-write the last day with a new close (intraday refresh).
	updated := candles[4]
	updated.Close = 999
	if err := store.UpsertCandles(ctx, []model.Candle{updated}); err != nil {
		t.Fatal(err)
	}

	got, err := store.FindCandles(ctx, "TCS", 90)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("upsert duplicated a date: %d candles", len(got))
	}
	if got[4].Close != 999 {
		t.Fatalf("expected replaced close 999, got %.2f", got[4].Close)
	}
}

func TestCandles_LimitTakesNewest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertCandles(ctx, testCandles("INFY", 20)); err != nil {
		t.Fatal(err)
	}
	got, err := store.FindCandles(ctx, "INFY", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 candles, got %d", len(got))
	}
	// Newest 5, still ascending.
	if got[0].DateString() != "2026-08-16" || got[4].DateString() != "2026-08-20" {
		t.Fatalf("wrong window: %s .. %s", got[0].DateString(), got[4].DateString())
	}
}

func TestCandles_MissIsEmptyNotError(t *testing.T) {
	store := openTestStore(t)
	got, err := store.FindCandles(context.Background(), "UNKNOWN", 90)
	if err != nil {
		t.Fatalf("a cache miss must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestLatestCandleDate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertCandles(ctx, testCandles("HDFC", 7)); err != nil {
		t.Fatal(err)
	}
	latest, err := store.LatestCandleDate(ctx, "HDFC")
	if err != nil {
		t.Fatal(err)
	}
	if latest.Format(model.DateLayout) != "2026-08-07" {
		t.Fatalf("got %s", latest.Format(model.DateLayout))
	}
}

func TestCredential_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Empty store: no record, no error.
	_, ok, err := store.LoadCredential(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no credential in a fresh store")
	}

	want := model.Credential{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC),
		IssuedAt:     time.Date(2026, 8, 28, 3, 30, 0, 0, time.UTC),
	}
	if err := store.SaveCredential(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.LoadCredential(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a credential")
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Fatalf("expiry mismatch: %s != %s", got.ExpiresAt, want.ExpiresAt)
	}
}

func TestCredential_SaveReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := model.Credential{AccessToken: "first"}
	second := model.Credential{AccessToken: "second", RefreshToken: "r2"}
	if err := store.SaveCredential(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCredential(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.LoadCredential(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.AccessToken != "second" {
		t.Fatalf("expected the replacement record, got %q", got.AccessToken)
	}

	// Exactly one row ever exists.
	var n int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM api_tokens`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected a single credential row, got %d", n)
	}
}
