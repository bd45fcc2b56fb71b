package upstox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// tokenResponse is the token-endpoint payload for both grant types.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ExchangeCode swaps a one-time authorization code for a fresh credential
// pair. This is the externally triggered re-authentication path; it replaces
// the whole credential record.
func (c *Client) ExchangeCode(ctx context.Context, code string) (model.Credential, error) {
	form := url.Values{
		"client_id":     {c.cfg.APIKey},
		"client_secret": {c.cfg.APISecret},
		"redirect_uri":  {c.cfg.RedirectURL},
		"code":          {code},
		"grant_type":    {"authorization_code"},
	}
	return c.tokenGrant(ctx, form)
}

// Refresh exchanges a refresh token for a new credential pair. A 401 from
// the token endpoint means the refresh token itself has expired and a full
// re-authentication is required.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (model.Credential, error) {
	form := url.Values{
		"client_id":     {c.cfg.APIKey},
		"client_secret": {c.cfg.APISecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	}
	return c.tokenGrant(ctx, form)
}

// tokenGrant posts a form-encoded grant to the token endpoint. Transport
// failures are retried briefly with exponential backoff; HTTP-level
// rejections are not; a rejected grant will not improve on retry.
func (c *Client) tokenGrant(ctx context.Context, form url.Values) (model.Credential, error) {
	rawURL, err := c.buildURL("api.token")
	if err != nil {
		return model.Credential{}, err
	}

	var raw []byte
	var status int
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err // transport error, retryable
		}
		defer resp.Body.Close()
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		status = resp.StatusCode
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return model.Credential{}, &APIError{Kind: KindOf(err), Message: err.Error()}
	}

	if status != http.StatusOK {
		return model.Credential{}, &APIError{
			Kind:    kindFromStatus(status),
			Status:  status,
			Message: apiMessage(raw),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return model.Credential{}, &APIError{Kind: KindTransport, Message: "decoding token response: " + err.Error()}
	}
	if tr.AccessToken == "" {
		return model.Credential{}, &APIError{Kind: KindTransport, Message: "token response without access_token"}
	}

	now := time.Now()
	cred := model.Credential{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		IssuedAt:     now,
	}
	if tr.ExpiresIn > 0 {
		cred.ExpiresAt = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return cred, nil
}

type profileEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		UserID string `json:"user_id"`
		Name   string `json:"user_name"`
		Email  string `json:"email"`
	} `json:"data"`
}

// Profile identifies the authenticated broker account.
type Profile struct {
	UserID string
	Name   string
	Email  string
}

// GetProfile verifies the current credential by fetching the account profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	rawURL, err := c.buildURL("api.user.profile")
	if err != nil {
		return Profile{}, err
	}
	var env profileEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rawURL, nil, nil, &env); err != nil {
		return Profile{}, err
	}
	return Profile{UserID: env.Data.UserID, Name: env.Data.Name, Email: env.Data.Email}, nil
}
