package metrics

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the screening engine.
type Metrics struct {
	SymbolsScreened *prometheus.CounterVec // labels: trend=bullish|bearish|neutral
	SymbolsFailed   *prometheus.CounterVec // labels: kind (error taxonomy)
	PassDuration    prometheus.Histogram
	SymbolDuration  prometheus.Histogram

	// Data path
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	StoreHits      prometheus.Counter
	BrokerFetches  prometheus.Counter
	SyntheticFills prometheus.Counter

	// Credential lifecycle
	TokenRefreshes     prometheus.Counter
	TokenRefreshErrors prometheus.Counter

	// Order placement
	TradesPlaced *prometheus.CounterVec // labels: leg=buy|target
	TradesFailed prometheus.Counter
}

// NewMetrics registers and returns all Prometheus metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		SymbolsScreened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_symbols_screened_total",
			Help: "Symbols classified per pass (by resulting trend)",
		}, []string{"trend"}),
		SymbolsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_symbols_failed_total",
			Help: "Symbols that produced no signal (by failure kind)",
		}, []string{"kind"}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "screener_pass_duration_seconds",
			Help:    "Wall-clock duration of a full screening pass",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		}),
		SymbolDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "screener_symbol_duration_seconds",
			Help:    "Per-symbol fetch plus classification latency",
			Buckets: prometheus.DefBuckets,
		}),

		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_cache_hits_total",
			Help: "Daily series served from the Redis cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_cache_misses_total",
			Help: "Daily series not found in the Redis cache",
		}),
		StoreHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_store_hits_total",
			Help: "Daily series served from the SQLite store",
		}),
		BrokerFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_broker_fetches_total",
			Help: "Daily series fetched from the broker API",
		}),
		SyntheticFills: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_synthetic_fills_total",
			Help: "Symbols screened against generated fallback data",
		}),

		TokenRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_token_refreshes_total",
			Help: "Successful access-token refreshes",
		}),
		TokenRefreshErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_token_refresh_errors_total",
			Help: "Failed access-token refresh attempts",
		}),

		TradesPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_trades_placed_total",
			Help: "Option orders placed (by bracket leg)",
		}, []string{"leg"}),
		TradesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_trades_failed_total",
			Help: "Option trades that failed before both legs were placed",
		}),
	}

	prometheus.MustRegister(
		m.SymbolsScreened,
		m.SymbolsFailed,
		m.PassDuration,
		m.SymbolDuration,
		m.CacheHits,
		m.CacheMisses,
		m.StoreHits,
		m.BrokerFetches,
		m.SyntheticFills,
		m.TokenRefreshes,
		m.TokenRefreshErrors,
		m.TradesPlaced,
		m.TradesFailed,
	)

	return m
}

// HealthStatus represents the screener's dependency health.
type HealthStatus struct {
	mu sync.RWMutex

	RedisConnected bool
	SQLiteOK       bool
	TokenExpiresAt time.Time
	LastPassAt     time.Time
	LastPassCount  int

	RedisLatencyMs  float64
	SQLiteLatencyMs float64
	LastCheckAt     time.Time
	StartedAt       time.Time
}

// NewHealthStatus returns a default health status.
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{
		StartedAt: time.Now(),
	}
}

// SetRedisConnected records the cache's initial connectivity.
func (h *HealthStatus) SetRedisConnected(ok bool) {
	h.mu.Lock()
	h.RedisConnected = ok
	h.mu.Unlock()
}

// SetSQLiteOK records the store's initial health.
func (h *HealthStatus) SetSQLiteOK(ok bool) {
	h.mu.Lock()
	h.SQLiteOK = ok
	h.mu.Unlock()
}

func (h *HealthStatus) SetTokenExpiry(t time.Time) {
	h.mu.Lock()
	h.TokenExpiresAt = t
	h.mu.Unlock()
}

// SetLastPass records the completion of a screening pass.
func (h *HealthStatus) SetLastPass(at time.Time, signals int) {
	h.mu.Lock()
	h.LastPassAt = at
	h.LastPassCount = signals
	h.mu.Unlock()
}

// CheckRedis pings Redis and records latency + connectivity.
func (h *HealthStatus) CheckRedis(ctx context.Context, rdb *goredis.Client) {
	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start)

	h.mu.Lock()
	h.RedisConnected = err == nil
	h.RedisLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// CheckSQLite runs a trivial query and records latency + health.
func (h *HealthStatus) CheckSQLite(ctx context.Context, db *sql.DB) {
	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	h.mu.Lock()
	h.SQLiteOK = err == nil
	h.SQLiteLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// StartLivenessChecker runs periodic dependency checks.
func (h *HealthStatus) StartLivenessChecker(ctx context.Context, rdb *goredis.Client, sqlDB *sql.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				if rdb != nil {
					h.CheckRedis(probeCtx, rdb)
				}
				if sqlDB != nil {
					h.CheckSQLite(probeCtx, sqlDB)
				}
				cancel()
			}
		}
	}()
}

// ServeHTTP handles the /healthz endpoint.
func (h *HealthStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	overallStatus := "healthy"
	httpCode := http.StatusOK
	if !h.RedisConnected || !h.SQLiteOK {
		overallStatus = "degraded"
		httpCode = http.StatusServiceUnavailable
	}
	if !h.RedisConnected && !h.SQLiteOK {
		overallStatus = "unhealthy"
	}

	tokenExpiry := ""
	if !h.TokenExpiresAt.IsZero() {
		tokenExpiry = h.TokenExpiresAt.Format(time.RFC3339)
	}
	lastPass := ""
	if !h.LastPassAt.IsZero() {
		lastPass = h.LastPassAt.Format(time.RFC3339)
	}

	status := struct {
		Status          string  `json:"status"`
		Uptime          string  `json:"uptime"`
		RedisConnected  bool    `json:"redis_connected"`
		RedisLatencyMs  float64 `json:"redis_latency_ms"`
		SQLiteOK        bool    `json:"sqlite_ok"`
		SQLiteLatencyMs float64 `json:"sqlite_latency_ms"`
		TokenExpiresAt  string  `json:"token_expires_at"`
		LastPassAt      string  `json:"last_pass_at"`
		LastPassSignals int     `json:"last_pass_signals"`
		LastCheckAt     string  `json:"last_check_at"`
	}{
		Status:          overallStatus,
		Uptime:          time.Since(h.StartedAt).Round(time.Second).String(),
		RedisConnected:  h.RedisConnected,
		RedisLatencyMs:  h.RedisLatencyMs,
		SQLiteOK:        h.SQLiteOK,
		SQLiteLatencyMs: h.SQLiteLatencyMs,
		TokenExpiresAt:  tokenExpiry,
		LastPassAt:      lastPass,
		LastPassSignals: h.LastPassCount,
		LastCheckAt:     h.LastCheckAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if httpCode != http.StatusOK {
		w.WriteHeader(httpCode)
	}
	json.NewEncoder(w).Encode(status)
}

// Server runs an HTTP server exposing /metrics and /healthz.
type Server struct {
	health *HealthStatus
	addr   string
	srv    *http.Server
}

// NewServer creates a metrics and health server.
func NewServer(addr string, health *HealthStatus) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.ServeHTTP)

	return &Server{
		health: health,
		addr:   addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
