package series

import (
	"testing"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

func dailyCandles(days int, until time.Time) []model.Candle {
	out := make([]model.Candle, days)
	for i := 0; i < days; i++ {
		date := Day(until).AddDate(0, 0, -(days - i - 1))
		out[i] = model.Candle{
			Symbol: "TEST",
			Date:   date,
			Open:   100,
			High:   105,
			Low:    95,
			Close:  102,
			Volume: 5000,
		}
	}
	return out
}

func TestReduce(t *testing.T) {
	base := time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC)
	bars := []model.IntradayCandle{
		{Timestamp: base.Add(2 * time.Minute), Open: 101, High: 103, Low: 100, Close: 102},
		{Timestamp: base, Open: 100, High: 101, Low: 99, Close: 101}, // earliest
		{Timestamp: base.Add(5 * time.Minute), Open: 102, High: 106, Low: 98, Close: 104}, // latest
	}

	snap := Reduce(bars)
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.SessionOpen != 100 {
		t.Errorf("session open: got %.2f, want 100 (earliest bar's open)", snap.SessionOpen)
	}
	if snap.High != 106 {
		t.Errorf("high: got %.2f, want 106", snap.High)
	}
	if snap.Low != 98 {
		t.Errorf("low: got %.2f, want 98", snap.Low)
	}
	if snap.LastClose != 104 {
		t.Errorf("last close: got %.2f, want 104 (latest bar's close)", snap.LastClose)
	}
}

func TestReduce_EmptySession(t *testing.T) {
	if snap := Reduce(nil); snap != nil {
		t.Fatalf("expected nil snapshot for empty session, got %+v", snap)
	}
}

func TestMergeIntraday_ReplacesNotAppends(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	daily := dailyCandles(10, today) // last candle is already today's
	snap := &model.Snapshot{SessionOpen: 103, High: 104, Low: 101, LastClose: 103.5}

	merged := MergeIntraday("TEST", daily, snap, today)

	// Date-count invariant: one candle per calendar date, total unchanged.
	if len(merged) != len(daily) {
		t.Fatalf("expected %d candles after replace, got %d", len(daily), len(merged))
	}
	seen := map[string]int{}
	for _, c := range merged {
		seen[c.DateString()]++
	}
	for date, n := range seen {
		if n != 1 {
			t.Errorf("date %s appears %d times", date, n)
		}
	}

	last := merged[len(merged)-1]
	if last.Open != 103 || last.Close != 103.5 {
		t.Errorf("today's candle not replaced: %+v", last)
	}
	// High/low folded with the persisted candle (105/95 vs 104/101).
	if last.High != 105 {
		t.Errorf("high: got %.2f, want persisted 105 folded in", last.High)
	}
	if last.Low != 95 {
		t.Errorf("low: got %.2f, want persisted 95 folded in", last.Low)
	}
	if last.Volume != 22 {
		t.Errorf("expected the snapshot volume sentinel, got %d", last.Volume)
	}
}

func TestMergeIntraday_AppendsWhenMissing(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	daily := dailyCandles(10, today.AddDate(0, 0, -1)) // series ends yesterday
	snap := &model.Snapshot{SessionOpen: 103, High: 108, Low: 101, LastClose: 106}

	merged := MergeIntraday("TEST", daily, snap, today)
	if len(merged) != len(daily)+1 {
		t.Fatalf("expected exactly one appended candle, got %d -> %d", len(daily), len(merged))
	}
	last := merged[len(merged)-1]
	if last.DateString() != "2026-08-28" {
		t.Errorf("appended candle has wrong date %s", last.DateString())
	}
	if last.High != 108 || last.Low != 101 {
		t.Errorf("appended candle should carry the snapshot range as-is: %+v", last)
	}

	// Still ascending.
	for i := 1; i < len(merged); i++ {
		if !merged[i-1].Date.Before(merged[i].Date) {
			t.Fatalf("series not ascending at index %d", i)
		}
	}
}

func TestMergeIntraday_NilSnapshot_DefaultPath(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	daily := dailyCandles(10, today)

	merged := MergeIntraday("TEST", daily, nil, today)
	if len(merged) != len(daily) {
		t.Fatalf("nil snapshot must leave the series unchanged")
	}
	for i := range merged {
		if merged[i] != daily[i] {
			t.Fatalf("candle %d modified on the default path", i)
		}
	}
}

func TestMergeIntraday_DoesNotMutateInput(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	daily := dailyCandles(10, today)
	orig := make([]model.Candle, len(daily))
	copy(orig, daily)

	MergeIntraday("TEST", daily, &model.Snapshot{SessionOpen: 1, High: 2, Low: 0.5, LastClose: 1.5}, today)
	for i := range daily {
		if daily[i] != orig[i] {
			t.Fatalf("input series mutated at index %d", i)
		}
	}
}

func TestDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2026, 8, 28, 14, 30, 45, 999, ist)
	d := Day(ts)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %s", d)
	}
	if d.Location() != ist {
		t.Error("expected location preserved")
	}
}
