// Package series assembles the per-symbol daily price series consumed by the
// indicator library: persisted daily candles overlaid with the current
// session's intraday snapshot.
package series

import (
	"sort"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// snapshotVolume marks a candle synthesized from an intraday snapshot;
// the snapshot path does not report session volume.
const snapshotVolume int64 = 22

// Reduce collapses a session's intraday bars into a Snapshot: the open of
// the earliest bar, the running high/low, and the close of the latest bar.
// Returns nil for an empty session.
func Reduce(bars []model.IntradayCandle) *model.Snapshot {
	if len(bars) == 0 {
		return nil
	}
	earliest, latest := bars[0], bars[0]
	snap := &model.Snapshot{High: bars[0].High, Low: bars[0].Low}
	for _, b := range bars[1:] {
		if b.Timestamp.Before(earliest.Timestamp) {
			earliest = b
		}
		if b.Timestamp.After(latest.Timestamp) {
			latest = b
		}
		if b.High > snap.High {
			snap.High = b.High
		}
		if b.Low < snap.Low {
			snap.Low = b.Low
		}
	}
	snap.SessionOpen = earliest.Open
	snap.LastClose = latest.Close
	return snap
}

// MergeIntraday overlays snap onto an ascending daily series for the given
// calendar day. An existing candle for today is replaced (its high/low folded
// with the snapshot's), never duplicated; when absent, exactly one candle is
// appended. A nil snapshot returns the input unchanged; that is the default
// path outside market hours or when live data is unavailable.
//
// The result is ascending with exactly one candle per calendar date.
func MergeIntraday(symbol string, daily []model.Candle, snap *model.Snapshot, today time.Time) []model.Candle {
	if snap == nil {
		return daily
	}

	today = Day(today)
	merged := model.Candle{
		Symbol: symbol,
		Date:   today,
		Open:   snap.SessionOpen,
		High:   snap.High,
		Low:    snap.Low,
		Close:  snap.LastClose,
		Volume: snapshotVolume,
	}

	out := make([]model.Candle, len(daily))
	copy(out, daily)

	// Compare by calendar date string so a store day and a wall-clock day
	// in different zones still collide on the same session.
	todayKey := today.Format(model.DateLayout)
	replaced := false
	for i := range out {
		if out[i].Date.Format(model.DateLayout) == todayKey {
			if out[i].High > merged.High {
				merged.High = out[i].High
			}
			if out[i].Low < merged.Low {
				merged.Low = out[i].Low
			}
			out[i] = merged
			replaced = true
			break
		}
	}
	if !replaced {
		out = append(out, merged)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Ascending sorts candles oldest-first by date, in place, and returns them.
func Ascending(candles []model.Candle) []model.Candle {
	sort.Slice(candles, func(i, j int) bool { return candles[i].Date.Before(candles[j].Date) })
	return candles
}

// Day truncates t to its calendar day, preserving the location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
