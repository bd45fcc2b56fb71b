package upstox

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

type placeOrderEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		OrderID string `json:"order_id"`
	} `json:"data"`
}

// PlaceOrder submits an order and returns the broker order ID. The order
// payload mirrors the V2 place-order contract; bracket legs are placed as
// two separate LIMIT orders by the trade runner.
func (c *Client) PlaceOrder(ctx context.Context, p model.OrderParams) (string, error) {
	rawURL, err := c.buildURL("api.order.place")
	if err != nil {
		return "", err
	}

	body := map[string]any{
		"instrument_token":   p.InstrumentKey,
		"quantity":           p.Quantity,
		"transaction_type":   p.TransactionType,
		"order_type":         p.OrderType,
		"product":            p.Product,
		"validity":           "DAY",
		"disclosed_quantity": 0,
		"trigger_price":      0,
		"is_amo":             false,
	}
	if p.OrderType == model.OrderTypeLimit {
		body["price"] = p.Price
	} else {
		body["price"] = 0
	}

	var env placeOrderEnvelope
	if err := c.doJSON(ctx, http.MethodPost, rawURL, nil, body, &env); err != nil {
		return "", err
	}
	if env.Data.OrderID == "" {
		return "", &APIError{Kind: KindTransport, Message: "order accepted without an order_id"}
	}
	return env.Data.OrderID, nil
}

type orderDetailsEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		OrderID         string  `json:"order_id"`
		InstrumentToken string  `json:"instrument_token"`
		TradingSymbol   string  `json:"trading_symbol"`
		TransactionType string  `json:"transaction_type"`
		OrderType       string  `json:"order_type"`
		Quantity        int64   `json:"quantity"`
		Price           float64 `json:"price"`
		Status          string  `json:"status"`
		FilledQuantity  int64   `json:"filled_quantity"`
		AveragePrice    float64 `json:"average_price"`
		OrderTimestamp  string  `json:"order_timestamp"`
	} `json:"data"`
}

// GetOrderStatus fetches the current state of a placed order.
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (model.Order, error) {
	rawURL, err := c.buildURL("api.order.details")
	if err != nil {
		return model.Order{}, err
	}

	query := url.Values{}
	query.Set("order_id", orderID)

	var env orderDetailsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, query, nil, &env); err != nil {
		return model.Order{}, err
	}

	placedAt, _ := time.Parse("2006-01-02 15:04:05", env.Data.OrderTimestamp)
	return model.Order{
		OrderID:         env.Data.OrderID,
		InstrumentKey:   env.Data.InstrumentToken,
		TradingSymbol:   env.Data.TradingSymbol,
		TransactionType: env.Data.TransactionType,
		OrderType:       env.Data.OrderType,
		Quantity:        env.Data.Quantity,
		Price:           env.Data.Price,
		Status:          env.Data.Status,
		FilledQty:       env.Data.FilledQuantity,
		AvgPrice:        env.Data.AveragePrice,
		PlacedAt:        placedAt,
	}, nil
}
