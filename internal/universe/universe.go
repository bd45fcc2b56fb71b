// Package universe holds the static NSE F&O symbol table the screener runs
// over, keyed by trading symbol.
package universe

// Stock is one screenable NSE equity.
type Stock struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	ISIN       string `json:"isin"`
	HasOptions bool   `json:"has_options"`
}

// InstrumentKey returns the broker's equity instrument key for this stock.
func (s Stock) InstrumentKey() string {
	return "NSE_EQ|" + s.ISIN
}

var bySymbol = func() map[string]Stock {
	m := make(map[string]Stock, len(stocks))
	for _, s := range stocks {
		m[s.Symbol] = s
	}
	return m
}()

// All returns the full screening universe.
func All() []Stock {
	out := make([]Stock, len(stocks))
	copy(out, stocks)
	return out
}

// Lookup finds a stock by trading symbol.
func Lookup(symbol string) (Stock, bool) {
	s, ok := bySymbol[symbol]
	return s, ok
}

// Size returns the number of symbols in the universe.
func Size() int { return len(stocks) }
