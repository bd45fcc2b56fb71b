package model

import "time"

// Order side and type codes as the broker's order endpoint expects them.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeLimit  = "LIMIT"
	OrderTypeMarket = "MARKET"

	// ProductIntraday is the broker's intraday product code; bracket trades
	// placed by the executor are always intraday.
	ProductIntraday = "I"
)

// OrderParams holds everything needed to place one order.
type OrderParams struct {
	InstrumentKey   string  `json:"instrument_token"`
	Quantity        int64   `json:"quantity"`
	TransactionType string  `json:"transaction_type"` // BUY, SELL
	OrderType       string  `json:"order_type"`       // LIMIT, MARKET
	Product         string  `json:"product"`
	Price           float64 `json:"price"` // limit price in rupees, 0 for market
}

// Order is the broker's view of a placed order, as returned by the
// order-book and order-status endpoints.
type Order struct {
	OrderID         string    `json:"order_id"`
	InstrumentKey   string    `json:"instrument_token"`
	TradingSymbol   string    `json:"trading_symbol"`
	TransactionType string    `json:"transaction_type"`
	OrderType       string    `json:"order_type"`
	Quantity        int64     `json:"quantity"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"` // open, complete, rejected, cancelled
	FilledQty       int64     `json:"filled_quantity"`
	AvgPrice        float64   `json:"average_price"`
	PlacedAt        time.Time `json:"order_timestamp"`
}
