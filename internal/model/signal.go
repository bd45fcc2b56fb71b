package model

import "time"

// Trend is the screening verdict for one symbol.
type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendBearish Trend = "Bearish"
	TrendNeutral Trend = "Neutral"
)

// Evidence records every resolvable rule clause the classifier evaluated.
// The verdict is the conjunction of one side's clauses; keeping both sides
// makes a Neutral verdict explainable and testable.
type Evidence struct {
	// Price vs today's cloud bottom.
	CloudBullish bool `json:"cloud_bullish"`
	CloudBearish bool `json:"cloud_bearish"`

	// Histogram and signal line on the same side of zero.
	MACDPositive bool `json:"macd_positive"`
	MACDNegative bool `json:"macd_negative"`

	// Day-over-day histogram direction.
	HistRising  bool `json:"hist_rising"`
	HistFalling bool `json:"hist_falling"`

	// Cloud checks evaluated 26 sessions back.
	CloudGreen26  bool `json:"cloud_green_26"`
	CloudRed26    bool `json:"cloud_red_26"`
	AboveCloud26  bool `json:"above_cloud_26"`
	BelowCloud26  bool `json:"below_cloud_26"`
	ChikouAbove26 bool `json:"chikou_above_26"`
	ChikouBelow26 bool `json:"chikou_below_26"`

	// Today's candle direction.
	CandleUp   bool `json:"candle_up"`
	CandleDown bool `json:"candle_down"`
}

// Bullish reports whether every bullish clause held.
func (e Evidence) Bullish() bool {
	return e.CloudBullish && e.MACDPositive && e.HistRising &&
		e.CloudGreen26 && e.AboveCloud26 && e.ChikouAbove26 && e.CandleUp
}

// Bearish reports whether every bearish clause held.
func (e Evidence) Bearish() bool {
	return e.CloudBearish && e.MACDNegative && e.HistFalling &&
		e.CloudRed26 && e.BelowCloud26 && e.ChikouBelow26 && e.CandleDown
}

// HistPoint is one day of MACD histogram history carried on a signal for
// display alongside the verdict.
type HistPoint struct {
	Day      int       `json:"day"` // 0 = today, 1 = yesterday, ...
	Date     time.Time `json:"date"`
	MACDHist float64   `json:"macd_hist"`
	Close    float64   `json:"close"`
}

// StockSignal is the immutable outcome of one screening pass for one symbol.
// A new pass supersedes the previous signal; signals are never mutated.
type StockSignal struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name,omitempty"`
	CurrentPrice float64 `json:"current_price"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`

	SenkouSpanB  float64 `json:"senkou_span_b"`
	MACDHist     float64 `json:"macd_hist"`
	PrevMACDHist float64 `json:"prev_macd_hist"`

	Trend    Trend    `json:"trend"`
	Evidence Evidence `json:"evidence"`

	// Day-over-day histogram deltas for the last 5 day-pairs, newest first.
	MACDDiffs5D []float64 `json:"macd_diffs_5d"`
	// Histogram values for the last 6 sessions, newest first.
	HistValues []HistPoint `json:"macd_hist_values"`

	// Distance squandered from the high (up day) or recovered from the
	// low (down day), as a percentage of the close. Always >= 0.
	IntradayStrengthPct float64 `json:"intraday_strength_pct"`

	// Source records where the daily series came from (cache, store,
	// broker, synthetic) so fabricated data is never mistaken for real.
	Source string `json:"source,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
