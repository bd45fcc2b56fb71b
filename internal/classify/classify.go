// Package classify turns an indicator frame set into a Bullish / Bearish /
// Neutral verdict with the evidence that produced it.
package classify

import (
	"errors"
	"math"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/indicator"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// lookback is the Ichimoku confirmation offset: the verdict reads the cloud
// as it stood 26 sessions before today.
const lookback = 26

// ErrInsufficientData means the frame set is too short or the required
// indicator values are undefined. Callers treat this as "no verdict", not a
// failure.
var ErrInsufficientData = errors.New("classify: insufficient data")

// Classify evaluates the trend rules over a most-recent-first frame set.
// It requires at least lookback+1 frames and defined senkou span B and
// histogram values for today and yesterday; otherwise ErrInsufficientData.
//
// The bullish rule is the conjunction of: price above today's cloud bottom,
// histogram and signal line both positive, histogram rising day-over-day,
// the three Ichimoku confirmations against the cloud 26 sessions back, and
// an up candle today. Bearish is the strict mirror. Anything else is
// Neutral. The price-vs-cloud clause deliberately reads *today's* senkou
// span B while the confirmations read the 26-ago cloud; the two time
// references must not be unified.
func Classify(symbol string, frames []model.Frame) (model.StockSignal, error) {
	if len(frames) <= lookback {
		return model.StockSignal{}, ErrInsufficientData
	}

	latest, prev, ref := frames[0], frames[1], frames[lookback]
	if !indicator.Defined(latest.SenkouSpanB) ||
		!indicator.Defined(latest.MACDHist) ||
		!indicator.Defined(prev.MACDHist) {
		return model.StockSignal{}, ErrInsufficientData
	}

	price := latest.Close

	ev := model.Evidence{
		CloudBullish: price > latest.SenkouSpanB,
		CloudBearish: price < latest.SenkouSpanB,

		MACDPositive: latest.MACDHist > 0 && indicator.Defined(latest.MACDSignal) && latest.MACDSignal > 0,
		MACDNegative: latest.MACDHist < 0 && indicator.Defined(latest.MACDSignal) && latest.MACDSignal < 0,

		HistRising:  latest.MACDHist > prev.MACDHist,
		HistFalling: latest.MACDHist < prev.MACDHist,

		CandleUp:   latest.Close > latest.Open,
		CandleDown: latest.Close < latest.Open,
	}

	// Confirmations against the cloud 26 sessions back. Unresolvable
	// clauses (undefined cloud edges) stay false on both sides.
	if indicator.Defined(ref.SenkouSpanA) && indicator.Defined(ref.SenkouSpanB) {
		ev.CloudGreen26 = ref.SenkouSpanA > ref.SenkouSpanB
		ev.CloudRed26 = ref.SenkouSpanB > ref.SenkouSpanA
		ev.AboveCloud26 = price > ref.SenkouSpanA && price > ref.SenkouSpanB
		ev.BelowCloud26 = price < ref.SenkouSpanA && price < ref.SenkouSpanB
	}
	if indicator.Defined(latest.ChikouSpan) && indicator.Defined(ref.Close) {
		ev.ChikouAbove26 = latest.ChikouSpan > ref.Close
		ev.ChikouBelow26 = latest.ChikouSpan < ref.Close
	}

	trend := model.TrendNeutral
	switch {
	case ev.Bullish():
		trend = model.TrendBullish
	case ev.Bearish():
		trend = model.TrendBearish
	}

	sig := model.StockSignal{
		Symbol:       symbol,
		CurrentPrice: round2(price),
		High:         round2(latest.High),
		Low:          round2(latest.Low),

		SenkouSpanB:  round2(latest.SenkouSpanB),
		MACDHist:     round4(latest.MACDHist),
		PrevMACDHist: round4(prev.MACDHist),

		Trend:    trend,
		Evidence: ev,

		MACDDiffs5D: histDiffs(frames, 5),
		HistValues:  histValues(frames, 6),

		IntradayStrengthPct: round4(IntradayStrength(latest.Open, latest.High, latest.Low, latest.Close)),

		UpdatedAt: time.Now(),
	}
	return sig, nil
}

// IntradayStrength measures how much of the session's range the close gave
// back: on an up day the distance squandered from the high, on a down day
// the distance recovered from the low, as a percentage of the close. Both
// branches are non-negative by construction.
func IntradayStrength(open, high, low, close float64) float64 {
	if close <= 0 {
		return 0
	}
	if close > open {
		return (high - close) / close * 100
	}
	return (close - low) / close * 100
}

// histDiffs returns day-over-day histogram deltas for the first n day-pairs
// of a most-recent-first frame set. Unresolvable pairs contribute 0, keeping
// the slice length fixed for display.
func histDiffs(frames []model.Frame, n int) []float64 {
	diffs := make([]float64, n)
	for i := 0; i < n; i++ {
		if i+1 >= len(frames) {
			continue
		}
		cur, prev := frames[i].MACDHist, frames[i+1].MACDHist
		if indicator.Defined(cur) && indicator.Defined(prev) {
			diffs[i] = round4(cur - prev)
		}
	}
	return diffs
}

// histValues returns the defined histogram points among the newest n frames.
func histValues(frames []model.Frame, n int) []model.HistPoint {
	points := make([]model.HistPoint, 0, n)
	for i := 0; i < n && i < len(frames); i++ {
		if !indicator.Defined(frames[i].MACDHist) {
			continue
		}
		points = append(points, model.HistPoint{
			Day:      i,
			Date:     frames[i].Date,
			MACDHist: round4(frames[i].MACDHist),
			Close:    round2(frames[i].Close),
		})
	}
	return points
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
