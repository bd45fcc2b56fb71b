// Package upstox is a typed client for the Upstox V2 REST API, mirroring the
// route set the screener depends on: historical and intraday candles, option
// contracts, LTP quotes, order placement, and the authorization-code /
// refresh-token exchange.
package upstox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.upstox.com"

var routes = map[string]string{
	"api.candles.daily":    "/v2/historical-candle/%s/day/%s/%s",
	"api.candles.intraday": "/v2/historical-candle/intraday/%s/%s",
	"api.option.contract":  "/v2/option/contract",
	"api.ltp":              "/v2/market-quote/ltp",
	"api.order.place":      "/v2/order/place",
	"api.order.details":    "/v2/order/details",
	"api.token":            "/v2/login/authorization/token",
	"api.user.profile":     "/v2/user/profile",
}

// TokenSource supplies a bearer token for authenticated routes. Consumers of
// the credential lifecycle only ever see the token value, never the record.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config configures the API client.
type Config struct {
	APIKey      string
	APISecret   string
	RedirectURL string

	BaseURL        string        // default https://api.upstox.com
	Timeout        time.Duration // per-request, default 5s
	RequestsPerSec int           // client-side rate limit, default 10
}

// Client is the Upstox V2 API client. Safe for concurrent use.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenSource
}

// NewClient creates a client. tokens may be nil for clients used only for
// the token-exchange routes, which authenticate with the API key pair.
func NewClient(cfg Config, tokens TokenSource) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.RequestsPerSec == 0 {
		cfg.RequestsPerSec = 10
	}
	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.RequestsPerSec),
		tokens:     tokens,
	}
}

func (c *Client) buildURL(route string, args ...any) (string, error) {
	uri, ok := routes[route]
	if !ok {
		return "", fmt.Errorf("upstox: unknown route %q", route)
	}
	if len(args) > 0 {
		escaped := make([]any, len(args))
		for i, a := range args {
			escaped[i] = url.PathEscape(fmt.Sprint(a))
		}
		uri = fmt.Sprintf(uri, escaped...)
	}
	return c.baseURL + uri, nil
}

// doJSON performs an authenticated JSON request and decodes the envelope
// into out. Non-2xx statuses are mapped to typed APIErrors.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, query url.Values, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindOf(err), Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindTransport, Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Kind:    kindFromStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: apiMessage(raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Kind: KindTransport, Status: resp.StatusCode,
				Message: fmt.Sprintf("decoding response: %v", err)}
		}
	}
	return nil
}

// bearer resolves the token for an authenticated request. A missing token
// source or a lifecycle failure both surface as KindNoCredential so a pass
// fails closed rather than crashing.
func (c *Client) bearer(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", &APIError{Kind: KindNoCredential, Message: "no token source configured"}
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", &APIError{Kind: KindNoCredential, Message: err.Error()}
	}
	return token, nil
}

// apiMessage digs the human-readable message out of an error envelope.
func apiMessage(raw []byte) string {
	var env struct {
		Status string `json:"status"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Errors) > 0 && env.Errors[0].Message != "" {
			return env.Errors[0].Message
		}
		if env.Message != "" {
			return env.Message
		}
	}
	msg := string(raw)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
