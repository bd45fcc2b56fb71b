package model

import "time"

// DateLayout is the calendar-day format used by the store and the broker API.
const DateLayout = "2006-01-02"

// Candle represents one daily OHLCV record for a single symbol.
// Prices are in rupees (float64) as served by the broker's candle endpoints.
type Candle struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"` // calendar day, midnight IST
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// DateString returns the candle's calendar day as YYYY-MM-DD.
func (c *Candle) DateString() string {
	return c.Date.Format(DateLayout)
}

// IntradayCandle is one minute-level bar from the intraday endpoint.
// The timestamp keeps full resolution; the screener reduces a session's
// bars into a Snapshot before merging.
type IntradayCandle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Snapshot is the running state of the current trading session for one
// symbol: the session open, the high/low so far, and the latest traded close.
type Snapshot struct {
	SessionOpen float64 `json:"session_open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	LastClose   float64 `json:"last_close"`
}
