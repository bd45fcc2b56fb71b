package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/markethours"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// UpsertCandles writes a batch of daily candles in one transaction.
// The (symbol, date) primary key makes every write an upsert: a past date is
// effectively immutable, while today's row is overwritten as fresher intraday
// state arrives. Partial rows are never merged.
func (s *Store) UpsertCandles(ctx context.Context, candles []model.Candle) error {
	if len(candles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO daily_prices (symbol, date, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range candles {
		if _, err := stmt.ExecContext(ctx, c.Symbol, c.DateString(), c.Open, c.High, c.Low, c.Close, c.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("sqlite upsert %s/%s: %w", c.Symbol, c.DateString(), err)
		}
	}
	return tx.Commit()
}

// FindCandles returns up to limit daily candles for a symbol, oldest first.
// An empty result is not an error; it is the cache-miss signal.
func (s *Store) FindCandles(ctx context.Context, symbol string, limit int) ([]model.Candle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT symbol, date, open, high, low, close, volume
		FROM daily_prices
		WHERE symbol = ?
		ORDER BY date DESC
		LIMIT ?
	`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite query daily_prices: %w", err)
	}
	defer rows.Close()

	var candles []model.Candle
	for rows.Next() {
		var c model.Candle
		var date string
		if err := rows.Scan(&c.Symbol, &date, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("sqlite scan daily_prices: %w", err)
		}
		day, err := time.ParseInLocation(model.DateLayout, date, markethours.IST)
		if err != nil {
			return nil, fmt.Errorf("sqlite bad date %q for %s: %w", date, symbol, err)
		}
		c.Date = day
		candles = append(candles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query reads newest-first to apply the limit; flip to ascending.
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}
	return candles, nil
}

// LatestCandleDate returns the newest stored date for a symbol, or the zero
// time when no candles exist.
func (s *Store) LatestCandleDate(ctx context.Context, symbol string) (time.Time, error) {
	var date *string
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(date) FROM daily_prices WHERE symbol = ?`, symbol,
	).Scan(&date)
	if err != nil {
		return time.Time{}, err
	}
	if date == nil {
		return time.Time{}, nil
	}
	return time.ParseInLocation(model.DateLayout, *date, markethours.IST)
}
