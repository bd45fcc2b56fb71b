package indicator

// EMA calculates the Exponential Moving Average over prices (oldest first).
// The result has the same length as prices: the first period-1 entries are
// NaN, the period-th entry is the simple average of the first period prices,
// and each later entry applies the standard recursive smoothing with
// multiplier 2/(period+1). If len(prices) < period the whole series is NaN.
func EMA(prices []float64, period int) []float64 {
	out := undefinedSeries(len(prices))
	if period <= 0 || len(prices) < period {
		return out
	}

	// Seed with the SMA of the first window.
	var sum float64
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	out[period-1] = sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		out[i] = prices[i]*multiplier + out[i-1]*(1-multiplier)
	}
	return out
}
