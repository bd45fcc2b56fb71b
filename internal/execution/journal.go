package execution

import (
	"database/sql"
	"log"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Journal persists bracket trade attempts to SQLite for analysis and audit.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// NewJournal opens (or creates) a SQLite journal database.
func NewJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS bracket_trades (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol          TEXT NOT NULL,
		trend           TEXT NOT NULL,
		option_type     TEXT,
		trading_symbol  TEXT,
		strike_price    REAL,
		expiry          TEXT,
		lot_size        INTEGER,
		option_ltp      REAL,
		buy_price       REAL,
		target_price    REAL,
		buy_order_id    TEXT,
		target_order_id TEXT,
		status          TEXT NOT NULL,
		error           TEXT,
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_bracket_trades_symbol ON bracket_trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_bracket_trades_status ON bracket_trades(status);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[journal] opened trade journal at %s", dbPath)
	return &Journal{db: db}, nil
}

// Record persists one bracket outcome.
func (j *Journal) Record(res TradeResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	expiry := ""
	if !res.Expiry.IsZero() {
		expiry = res.Expiry.Format("2006-01-02")
	}
	_, err := j.db.Exec(
		`INSERT INTO bracket_trades (symbol, trend, option_type, trading_symbol,
		   strike_price, expiry, lot_size, option_ltp, buy_price, target_price,
		   buy_order_id, target_order_id, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Symbol,
		string(res.Trend),
		string(res.OptionType),
		res.TradingSymbol,
		res.StrikePrice,
		expiry,
		res.LotSize,
		res.OptionLTP,
		res.BuyPrice,
		res.TargetPrice,
		res.BuyOrderID,
		res.TargetOrderID,
		string(res.Status),
		res.Error,
	)
	return err
}

// JournalEntry is one row from the bracket_trades table.
type JournalEntry struct {
	ID            int64     `json:"id"`
	Symbol        string    `json:"symbol"`
	Trend         string    `json:"trend"`
	OptionType    string    `json:"option_type"`
	TradingSymbol string    `json:"trading_symbol"`
	StrikePrice   float64   `json:"strike_price"`
	Expiry        string    `json:"expiry"`
	LotSize       int64     `json:"lot_size"`
	OptionLTP     float64   `json:"option_ltp"`
	BuyPrice      float64   `json:"buy_price"`
	TargetPrice   float64   `json:"target_price"`
	BuyOrderID    string    `json:"buy_order_id"`
	TargetOrderID string    `json:"target_order_id"`
	Status        string    `json:"status"`
	Error         string    `json:"error"`
	CreatedAt     time.Time `json:"created_at"`
}

// Recent returns the newest n journal entries.
func (j *Journal) Recent(n int) ([]JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		`SELECT id, symbol, trend, option_type, trading_symbol, strike_price,
		        expiry, lot_size, option_ltp, buy_price, target_price,
		        buy_order_id, target_order_id, status, error, created_at
		 FROM bracket_trades ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var created string
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Trend, &e.OptionType,
			&e.TradingSymbol, &e.StrikePrice, &e.Expiry, &e.LotSize,
			&e.OptionLTP, &e.BuyPrice, &e.TargetPrice, &e.BuyOrderID,
			&e.TargetOrderID, &e.Status, &e.Error, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
