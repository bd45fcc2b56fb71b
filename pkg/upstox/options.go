package upstox

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

type contractEnvelope struct {
	Status string `json:"status"`
	Data   []struct {
		InstrumentKey  string  `json:"instrument_key"`
		TradingSymbol  string  `json:"trading_symbol"`
		StrikePrice    float64 `json:"strike_price"`
		Expiry         string  `json:"expiry"`
		InstrumentType string  `json:"instrument_type"`
		LotSize        int64   `json:"lot_size"`
	} `json:"data"`
}

// GetOptionContracts lists the option contracts for an underlying, optionally
// limited to one expiry. Contracts with unparsable expiries are dropped.
func (c *Client) GetOptionContracts(ctx context.Context, instrumentKey string, expiry *time.Time) ([]model.OptionContract, error) {
	rawURL, err := c.buildURL("api.option.contract")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("instrument_key", instrumentKey)
	if expiry != nil {
		query.Set("expiry_date", expiry.Format(model.DateLayout))
	}

	var env contractEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, query, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, &APIError{Kind: KindNotFound, Message: "no option contracts for " + instrumentKey}
	}

	contracts := make([]model.OptionContract, 0, len(env.Data))
	for _, d := range env.Data {
		exp, err := time.ParseInLocation(model.DateLayout, d.Expiry, markethours.IST)
		if err != nil {
			continue
		}
		contracts = append(contracts, model.OptionContract{
			InstrumentKey: d.InstrumentKey,
			TradingSymbol: d.TradingSymbol,
			StrikePrice:   d.StrikePrice,
			Expiry:        exp,
			Type:          model.OptionType(d.InstrumentType),
			LotSize:       d.LotSize,
		})
	}
	return contracts, nil
}

type ltpEnvelope struct {
	Status string `json:"status"`
	Data   map[string]struct {
		LastPrice float64 `json:"last_price"`
	} `json:"data"`
}

// GetLTP returns the last traded price for one instrument.
func (c *Client) GetLTP(ctx context.Context, instrumentKey string) (float64, error) {
	rawURL, err := c.buildURL("api.ltp")
	if err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("instrument_key", instrumentKey)

	var env ltpEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, query, nil, &env); err != nil {
		return 0, err
	}
	// The quote payload is keyed by a broker-normalized symbol name, not the
	// instrument key that was asked for, so take the single entry.
	for _, q := range env.Data {
		if q.LastPrice > 0 {
			return q.LastPrice, nil
		}
	}
	return 0, &APIError{Kind: KindNotFound, Message: "no LTP for " + instrumentKey}
}
