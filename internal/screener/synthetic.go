package screener

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/series"
)

// syntheticDays is the length of a generated fallback series.
const syntheticDays = 200

// SyntheticSeries generates a deterministic daily series for a symbol: a
// random walk seeded from the symbol name, so repeated passes see the same
// prices. Returned ascending, ending at today. Demo use only; synthetic
// candles are never written through to the store or cache.
func SyntheticSeries(symbol string, days int, now time.Time) []model.Candle {
	if days <= 0 {
		days = syntheticDays
	}
	rng := rand.New(rand.NewSource(symbolSeed(symbol)))

	basePrice := 100 + rng.Float64()*4900
	volatility := 0.01 + rng.Float64()*0.02
	price := basePrice

	today := series.Day(now)
	candles := make([]model.Candle, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -(days - i - 1))

		price *= 1 + rng.NormFloat64()*volatility + 0.0002
		dayRange := price * (0.01 + rng.Float64()*0.02)
		open := price + (rng.Float64()-0.5)*dayRange
		high := math.Max(open, price) + rng.Float64()*dayRange/2
		low := math.Min(open, price) - rng.Float64()*dayRange/2

		candles = append(candles, model.Candle{
			Symbol: symbol,
			Date:   date,
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(price),
			Volume: 100_000 + rng.Int63n(9_900_000),
		})
	}
	return candles
}

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64() & math.MaxUint32)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
