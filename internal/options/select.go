// Package options selects the option contract for a classified signal and
// derives the bracket prices for a hedged directional trade.
package options

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
	"github.com/muralinkl/stocks-option-screener/internal/series"
)

// Bracket defaults, in percent.
const (
	DefaultBuyBufferPct    = 0.2
	DefaultProfitTargetPct = 2.5
)

var (
	// ErrNoContracts means the chain was empty.
	ErrNoContracts = errors.New("options: no contracts available")

	// ErrNoTypeMatch means the chain had no contract of the requested type.
	ErrNoTypeMatch = errors.New("options: no contracts of requested type")

	// ErrNoITM means contracts of the type exist but none is in the money
	// at the current price.
	ErrNoITM = errors.New("options: no in-the-money contract")
)

// SelectITM picks the in-the-money contract of the given type whose strike
// is nearest the current price. Ties break to the lower strike, so the
// choice is deterministic for any input order. Each failure mode gets its
// own sentinel; callers report the reason, never substitute silently.
func SelectITM(contracts []model.OptionContract, currentPrice float64, typ model.OptionType) (model.OptionContract, error) {
	if len(contracts) == 0 {
		return model.OptionContract{}, ErrNoContracts
	}

	sawType := false
	best := -1
	bestDist := math.Inf(1)
	for i, c := range contracts {
		if c.Type != typ {
			continue
		}
		sawType = true
		if !c.InTheMoney(currentPrice) {
			continue
		}
		dist := math.Abs(c.StrikePrice - currentPrice)
		if dist < bestDist || (dist == bestDist && c.StrikePrice < contracts[best].StrikePrice) {
			best = i
			bestDist = dist
		}
	}

	if !sawType {
		return model.OptionContract{}, ErrNoTypeMatch
	}
	if best < 0 {
		return model.OptionContract{}, ErrNoITM
	}
	return contracts[best], nil
}

// NearestExpiry returns the earliest expiry on or after today, in calendar
// order. The comparison is by day, not instant: expiries parse to midnight,
// and a contract expiring today stays tradable through the session.
func NearestExpiry(contracts []model.OptionContract, now time.Time) (time.Time, error) {
	today := series.Day(now)
	var expiries []time.Time
	for _, c := range contracts {
		if c.Expiry.Before(today) {
			continue
		}
		expiries = append(expiries, c.Expiry)
	}
	if len(expiries) == 0 {
		return time.Time{}, ErrNoContracts
	}
	sort.Slice(expiries, func(i, j int) bool { return expiries[i].Before(expiries[j]) })
	return expiries[0], nil
}

// ForExpiry filters a chain down to one expiry date.
func ForExpiry(contracts []model.OptionContract, expiry time.Time) []model.OptionContract {
	day := expiry.Format(model.DateLayout)
	var out []model.OptionContract
	for _, c := range contracts {
		if c.Expiry.Format(model.DateLayout) == day {
			out = append(out, c)
		}
	}
	return out
}

// BracketPrices derives the two limit prices from the option's last traded
// price: a buy marked up by the buffer (to cross the spread) and a sell at
// the profit target over the LTP. Both rounded to the paisa.
func BracketPrices(ltp, buyBufferPct, profitTargetPct float64) (buy, target float64) {
	buy = round2(ltp * (1 + buyBufferPct/100))
	target = round2(ltp * (1 + profitTargetPct/100))
	return buy, target
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
