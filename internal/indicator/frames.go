package indicator

import "github.com/muralinkl/stocks-option-screener/internal/model"

// MinCandles is the minimum series length for a frame set to be meaningful.
const MinCandles = 60

// BuildFrames derives one indicator frame per candle of an ascending series
// and returns the frames most-recent-first, ready for the classifier's
// "latest" and "N sessions ago" lookups. The whole set is recomputed from
// scratch on every call; frames are never updated incrementally.
//
// Returns nil when the series is shorter than MinCandles.
func BuildFrames(candles []model.Candle) []model.Frame {
	if len(candles) < MinCandles {
		return nil
	}

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	macd, signal, hist := MACD(closes, MACDFast, MACDSlow, MACDSignal)
	cloud := Ichimoku(candles, IchimokuTenkan, IchimokuKijun, IchimokuSenkouB)

	frames := make([]model.Frame, len(candles))
	for i, c := range candles {
		// Reverse once: frames[0] is the newest candle.
		frames[len(candles)-1-i] = model.Frame{
			Date:  c.Date,
			Close: c.Close,
			Open:  c.Open,
			High:  c.High,
			Low:   c.Low,

			MACD:       macd[i],
			MACDSignal: signal[i],
			MACDHist:   hist[i],

			TenkanSen:   cloud[i].TenkanSen,
			KijunSen:    cloud[i].KijunSen,
			SenkouSpanA: cloud[i].SenkouSpanA,
			SenkouSpanB: cloud[i].SenkouSpanB,
			ChikouSpan:  cloud[i].ChikouSpan,
		}
	}
	return frames
}
