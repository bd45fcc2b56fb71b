package model

import "time"

// Frame is one row of derived indicator state for a single candle.
// Undefined indicator values are math.NaN(); a Frame is built wholesale by
// the indicator library and never mutated afterwards.
type Frame struct {
	Date  time.Time
	Close float64
	Open  float64
	High  float64
	Low   float64

	MACD       float64
	MACDSignal float64
	MACDHist   float64

	TenkanSen   float64
	KijunSen    float64
	SenkouSpanA float64
	SenkouSpanB float64
	ChikouSpan  float64
}
