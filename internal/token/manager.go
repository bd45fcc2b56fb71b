// Package token owns the broker credential record and its lifecycle:
//
//	NoCredential → Valid → NearExpiry → Refreshing → (Valid | RefreshFailed)
//
// Consumers only ever receive the access-token string or a sentinel error;
// the record itself never leaves the manager.
package token

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/metrics"
	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// DefaultLead is how long before expiry a proactive refresh is attempted.
const DefaultLead = 30 * time.Minute

var (
	// ErrNoToken means no credential record exists; the caller must run the
	// authorization-code exchange before any fetch can succeed.
	ErrNoToken = errors.New("token: no credential available")

	// ErrRefreshFailed means the record is stale and could not be renewed:
	// either no refresh token was stored or the refresh endpoint rejected
	// it. Fetches fail closed until re-authentication.
	ErrRefreshFailed = errors.New("token: refresh failed")
)

// Exchanger performs the broker's token grants.
type Exchanger interface {
	Refresh(ctx context.Context, refreshToken string) (model.Credential, error)
	ExchangeCode(ctx context.Context, code string) (model.Credential, error)
}

// Store persists the single credential record across restarts.
type Store interface {
	SaveCredential(ctx context.Context, cred model.Credential) error
	LoadCredential(ctx context.Context) (model.Credential, bool, error)
}

// Manager supplies bearer tokens, refreshing proactively inside the lead
// window. Refresh is serialized; concurrent readers observe either the old
// or the new record, never a partial one.
type Manager struct {
	store Store
	exch  Exchanger
	lead  time.Duration
	now   func() time.Time

	met *metrics.Metrics

	mu     sync.Mutex
	cur    *model.Credential
	loaded bool
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLead overrides the proactive-refresh lead window.
func WithLead(lead time.Duration) Option {
	return func(m *Manager) { m.lead = lead }
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithMetrics counts refresh attempts and failures.
func WithMetrics(met *metrics.Metrics) Option {
	return func(m *Manager) { m.met = met }
}

// NewManager creates a credential manager over a store and an exchanger.
func NewManager(store Store, exch Exchanger, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		exch:  exch,
		lead:  DefaultLead,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns a valid access token, refreshing first when the record is
// inside the lead window. Implements the broker client's TokenSource.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cred, err := m.currentLocked(ctx)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", ErrNoToken
	}

	if !cred.ExpiresWithin(m.now(), m.lead) {
		return cred.AccessToken, nil
	}

	// NearExpiry: refresh synchronously while holding the lock so every
	// other reader sees either this record or its replacement.
	renewed, err := m.refreshLocked(ctx, *cred)
	if err != nil {
		return "", err
	}
	return renewed.AccessToken, nil
}

// ExchangeCode swaps a one-time authorization code for a fresh credential
// pair, replacing the whole record.
func (m *Manager) ExchangeCode(ctx context.Context, code string) error {
	cred, err := m.exch.ExchangeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("token: code exchange: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.SaveCredential(ctx, cred); err != nil {
		return fmt.Errorf("token: persisting credential: %w", err)
	}
	m.cur = &cred
	m.loaded = true
	log.Printf("[token] credential replaced via code exchange, expires %s", expiryLabel(cred))
	return nil
}

// ExpiresAt reports the current record's expiry for status display.
// ok is false when no record exists.
func (m *Manager) ExpiresAt(ctx context.Context) (expiry time.Time, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cred, err := m.currentLocked(ctx)
	if err != nil || cred == nil {
		return time.Time{}, false
	}
	return cred.ExpiresAt, true
}

// currentLocked lazily loads the persisted record. Returns nil when none
// exists. Caller holds m.mu.
func (m *Manager) currentLocked(ctx context.Context) (*model.Credential, error) {
	if m.loaded {
		return m.cur, nil
	}
	cred, ok, err := m.store.LoadCredential(ctx)
	if err != nil {
		return nil, fmt.Errorf("token: loading credential: %w", err)
	}
	m.loaded = true
	if ok {
		m.cur = &cred
	}
	return m.cur, nil
}

// refreshLocked renews a near-expiry record. Caller holds m.mu.
func (m *Manager) refreshLocked(ctx context.Context, cred model.Credential) (model.Credential, error) {
	if cred.RefreshToken == "" {
		return model.Credential{}, fmt.Errorf("%w: no refresh token stored", ErrRefreshFailed)
	}

	if m.met != nil {
		m.met.TokenRefreshes.Inc()
	}
	renewed, err := m.exch.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		if m.met != nil {
			m.met.TokenRefreshErrors.Inc()
		}
		return model.Credential{}, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}
	// Brokers may omit the refresh token from the renewal payload; keep
	// the previous one so the next cycle can renew again.
	if renewed.RefreshToken == "" {
		renewed.RefreshToken = cred.RefreshToken
	}

	if err := m.store.SaveCredential(ctx, renewed); err != nil {
		return model.Credential{}, fmt.Errorf("token: persisting renewed credential: %w", err)
	}
	m.cur = &renewed
	log.Printf("[token] credential refreshed, expires %s", expiryLabel(renewed))
	return renewed, nil
}

func expiryLabel(cred model.Credential) string {
	if !cred.HasExpiry() {
		return "never"
	}
	return cred.ExpiresAt.Format(time.RFC3339)
}
