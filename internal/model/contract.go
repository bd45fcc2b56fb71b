package model

import "time"

// OptionType distinguishes calls from puts using the broker's CE/PE codes.
type OptionType string

const (
	OptionCall OptionType = "CE"
	OptionPut  OptionType = "PE"
)

// OptionContract is one derivative contract from the broker's catalog.
// Read-only reference data; fetched per request, not cached across expiries.
type OptionContract struct {
	InstrumentKey string     `json:"instrument_key"`
	TradingSymbol string     `json:"trading_symbol"`
	StrikePrice   float64    `json:"strike_price"`
	Expiry        time.Time  `json:"expiry"`
	Type          OptionType `json:"instrument_type"`
	LotSize       int64      `json:"lot_size"`
}

// InTheMoney reports whether the contract is ITM at the given spot price:
// strike below spot for calls, strike above spot for puts.
func (c OptionContract) InTheMoney(spot float64) bool {
	switch c.Type {
	case OptionCall:
		return c.StrikePrice < spot
	case OptionPut:
		return c.StrikePrice > spot
	}
	return false
}
