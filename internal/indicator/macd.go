package indicator

// MACD calculates the MACD line, signal line, and histogram over prices
// (oldest first). The MACD line is fastEMA − slowEMA wherever both are
// defined. The signal line is the EMA of the defined MACD values, re-aligned
// to the input index by left-padding with NaN. The histogram is macd − signal
// wherever both are defined. If len(prices) < slow+signal all three series
// are entirely NaN.
func MACD(prices []float64, fast, slow, signal int) (macd, signalLine, histogram []float64) {
	n := len(prices)
	macd = undefinedSeries(n)
	signalLine = undefinedSeries(n)
	histogram = undefinedSeries(n)
	if n < slow+signal {
		return macd, signalLine, histogram
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	for i := 0; i < n; i++ {
		if Defined(fastEMA[i]) && Defined(slowEMA[i]) {
			macd[i] = fastEMA[i] - slowEMA[i]
		}
	}

	// The defined MACD values form a contiguous tail starting at slow-1.
	valid := make([]float64, 0, n)
	for _, m := range macd {
		if Defined(m) {
			valid = append(valid, m)
		}
	}
	signalEMA := EMA(valid, signal)

	// Re-align: left-pad the signal series back to the input index.
	offset := n - len(signalEMA)
	for i, v := range signalEMA {
		signalLine[offset+i] = v
	}

	for i := 0; i < n; i++ {
		if Defined(macd[i]) && Defined(signalLine[i]) {
			histogram[i] = macd[i] - signalLine[i]
		}
	}
	return macd, signalLine, histogram
}

// Default MACD periods.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
)
