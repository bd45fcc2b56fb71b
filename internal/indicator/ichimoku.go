package indicator

import (
	"math"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// Default Ichimoku periods.
const (
	IchimokuTenkan  = 9
	IchimokuKijun   = 26
	IchimokuSenkouB = 52
)

// IchimokuValue holds the five Ichimoku components for one candle index.
// ChikouSpan carries the raw close with no temporal shift; the classifier
// applies the 26-period offset itself.
type IchimokuValue struct {
	TenkanSen   float64
	KijunSen    float64
	SenkouSpanA float64
	SenkouSpanB float64
	ChikouSpan  float64
}

// Ichimoku computes the cloud components for each candle of an ascending
// series. Each midpoint is (max high + min low)/2 over its trailing window;
// entries with fewer preceding candles than the window are NaN. Senkou span A
// is the mean of tenkan and kijun where both are defined.
func Ichimoku(candles []model.Candle, tenkan, kijun, senkouB int) []IchimokuValue {
	out := make([]IchimokuValue, len(candles))
	for i := range candles {
		v := IchimokuValue{
			TenkanSen:   midpoint(candles, i, tenkan),
			KijunSen:    midpoint(candles, i, kijun),
			SenkouSpanB: midpoint(candles, i, senkouB),
			ChikouSpan:  candles[i].Close,
		}
		if Defined(v.TenkanSen) && Defined(v.KijunSen) {
			v.SenkouSpanA = (v.TenkanSen + v.KijunSen) / 2
		} else {
			v.SenkouSpanA = math.NaN()
		}
		out[i] = v
	}
	return out
}

// midpoint returns (max high + min low)/2 over the window of length period
// ending at index i, or NaN when the window does not fit.
func midpoint(candles []model.Candle, i, period int) float64 {
	if i < period-1 {
		return math.NaN()
	}
	high := candles[i-period+1].High
	low := candles[i-period+1].Low
	for j := i - period + 2; j <= i; j++ {
		if candles[j].High > high {
			high = candles[j].High
		}
		if candles[j].Low < low {
			low = candles[j].Low
		}
	}
	return (high + low) / 2
}
