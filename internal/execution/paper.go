package execution

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// PaperBroker wraps a real broker for dry runs: contracts and LTP come
// from the live API, order placement is simulated. Implements OrderBroker.
type PaperBroker struct {
	live OrderBroker

	mu       sync.RWMutex
	orders   []PaperOrder
	orderSeq int64
}

// PaperOrder is one simulated placement.
type PaperOrder struct {
	OrderID  string            `json:"order_id"`
	Params   model.OrderParams `json:"params"`
	PlacedAt time.Time         `json:"placed_at"`
}

// NewPaperBroker creates a dry-run broker over a live one.
func NewPaperBroker(live OrderBroker) *PaperBroker {
	return &PaperBroker{live: live}
}

func (p *PaperBroker) GetOptionContracts(ctx context.Context, instrumentKey string, expiry *time.Time) ([]model.OptionContract, error) {
	return p.live.GetOptionContracts(ctx, instrumentKey, expiry)
}

func (p *PaperBroker) GetLTP(ctx context.Context, instrumentKey string) (float64, error) {
	return p.live.GetLTP(ctx, instrumentKey)
}

// PlaceOrder records the order locally and returns a synthetic order ID.
func (p *PaperBroker) PlaceOrder(ctx context.Context, params model.OrderParams) (string, error) {
	p.mu.Lock()
	p.orderSeq++
	orderID := fmt.Sprintf("PAPER-%d", p.orderSeq)
	p.orders = append(p.orders, PaperOrder{
		OrderID:  orderID,
		Params:   params,
		PlacedAt: time.Now(),
	})
	p.mu.Unlock()

	log.Printf("[paper] %s %s qty=%d price=%.2f order=%s",
		params.TransactionType, params.InstrumentKey, params.Quantity,
		params.Price, orderID)
	return orderID, nil
}

// Orders returns a snapshot of all simulated placements.
func (p *PaperBroker) Orders() []PaperOrder {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cp := make([]PaperOrder, len(p.orders))
	copy(cp, p.orders)
	return cp
}
