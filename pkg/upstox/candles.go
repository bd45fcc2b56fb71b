package upstox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// candleEnvelope is the historical/intraday candle response: each candle is
// a positional array [timestamp, open, high, low, close, volume, oi].
type candleEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Candles [][]json.RawMessage `json:"candles"`
	} `json:"data"`
}

// intervalPath maps supported intraday intervals to their API path segment.
var intervalPath = map[int]string{
	1:  "1minute",
	30: "30minute",
}

// GetDailyCandles fetches daily candles for the trailing lookbackDays and
// returns them oldest first. The symbol is stamped onto each candle for the
// store's upsert key.
func (c *Client) GetDailyCandles(ctx context.Context, symbol, instrumentKey string, lookbackDays int) ([]model.Candle, error) {
	now := time.Now().In(markethours.IST)
	to := now.Format(model.DateLayout)
	from := now.AddDate(0, 0, -lookbackDays).Format(model.DateLayout)

	rawURL, err := c.buildURL("api.candles.daily", instrumentKey, to, from)
	if err != nil {
		return nil, err
	}

	var env candleEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, nil, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data.Candles) == 0 {
		return nil, &APIError{Kind: KindNotFound, Message: "no daily candles for " + instrumentKey}
	}

	candles := make([]model.Candle, 0, len(env.Data.Candles))
	for _, row := range env.Data.Candles {
		ts, o, h, l, cl, v, err := parseCandleRow(row)
		if err != nil {
			return nil, &APIError{Kind: KindTransport, Message: err.Error()}
		}
		day, err := time.ParseInLocation(model.DateLayout, ts[:10], markethours.IST)
		if err != nil {
			return nil, &APIError{Kind: KindTransport, Message: "bad candle date " + ts}
		}
		candles = append(candles, model.Candle{
			Symbol: symbol,
			Date:   day,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: v,
		})
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Date.Before(candles[j].Date) })
	return candles, nil
}

// GetIntradayCandles fetches today's minute-level bars for the instrument.
// interval must be 1 or 30. An empty response outside trading hours maps to
// KindMarketClosed, the normal "no live data yet" condition.
func (c *Client) GetIntradayCandles(ctx context.Context, instrumentKey string, interval int) ([]model.IntradayCandle, error) {
	seg, ok := intervalPath[interval]
	if !ok {
		seg = intervalPath[1]
	}
	rawURL, err := c.buildURL("api.candles.intraday", instrumentKey, seg)
	if err != nil {
		return nil, err
	}

	var env candleEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, nil, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data.Candles) == 0 {
		if !markethours.IsMarketOpen(time.Now()) {
			return nil, &APIError{Kind: KindMarketClosed, Message: "market closed, no live data"}
		}
		return nil, &APIError{Kind: KindNotFound, Message: "no intraday candles for " + instrumentKey}
	}

	bars := make([]model.IntradayCandle, 0, len(env.Data.Candles))
	for _, row := range env.Data.Candles {
		ts, o, h, l, cl, v, err := parseCandleRow(row)
		if err != nil {
			return nil, &APIError{Kind: KindTransport, Message: err.Error()}
		}
		at, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, &APIError{Kind: KindTransport, Message: "bad candle timestamp " + ts}
		}
		bars = append(bars, model.IntradayCandle{
			Timestamp: at,
			Open:      o,
			High:      h,
			Low:       l,
			Close:     cl,
			Volume:    v,
		})
	}
	return bars, nil
}

// parseCandleRow decodes one positional candle array.
func parseCandleRow(row []json.RawMessage) (ts string, o, h, l, c float64, v int64, err error) {
	if len(row) < 6 {
		return "", 0, 0, 0, 0, 0, fmt.Errorf("candle row has %d fields, want 6", len(row))
	}
	if err = json.Unmarshal(row[0], &ts); err != nil {
		return "", 0, 0, 0, 0, 0, fmt.Errorf("candle timestamp: %w", err)
	}
	if len(ts) < 10 {
		return "", 0, 0, 0, 0, 0, fmt.Errorf("candle timestamp %q too short", ts)
	}
	nums := []*float64{&o, &h, &l, &c}
	for i, dst := range nums {
		if err = json.Unmarshal(row[i+1], dst); err != nil {
			return "", 0, 0, 0, 0, 0, fmt.Errorf("candle field %d: %w", i+1, err)
		}
	}
	if err = json.Unmarshal(row[5], &v); err != nil {
		// Some instruments report fractional volume; fold it down.
		var fv float64
		if err2 := json.Unmarshal(row[5], &fv); err2 != nil {
			return "", 0, 0, 0, 0, 0, fmt.Errorf("candle volume: %w", err)
		}
		v = int64(fv)
	}
	return ts, o, h, l, c, v, nil
}
