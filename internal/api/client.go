package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"prosono/client/internal/config"
	"prosono/client/internal/security"
	"prosono/client/internal/tokenstore"
)

const requestIDHeader = "X-Request-Id"

// Client wraps every outbound call to the ProSono backend: it injects the
// bearer credential, proactively refreshes an expired access token before the
// call, and normalizes non-success responses into *Error.
type Client struct {
	baseURL          string
	http             *http.Client
	store            *tokenstore.Store
	log              zerolog.Logger
	onSessionExpired func()

	refreshMu sync.Mutex
}

func New(cfg *config.AppConfig, store *tokenstore.Store, logger zerolog.Logger) *Client {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.API.BaseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     logger,
	}
}

// OnSessionExpired registers the hook fired when the transparent refresh
// fails. Both tokens are already cleared when it runs; the hook routes the
// user back to the login entry point.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.request(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, out)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	if err := c.refreshIfNeeded(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if token := c.store.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("endpoint", endpoint).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		// Best effort: an unparsable error body still yields a usable status.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("endpoint", endpoint).
			Msg("api request failed")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// refreshIfNeeded exchanges the refresh token for a new access token when the
// stored one is present but past its expiry claim. A failed exchange is a
// hard session termination: tokens are cleared and the expiry hook fires.
//
// Only one goroutine may run the exchange at a time: the backend accepts a
// rotated refresh token once, so a second concurrent exchange would be
// rejected and tear down the session the first one just renewed. Callers that
// queue on the mutex re-check the store and usually find a fresh token.
func (c *Client) refreshIfNeeded(ctx context.Context) error {
	if !c.needsRefresh() {
		return nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	if !c.needsRefresh() {
		return nil
	}
	refresh := c.store.RefreshToken()

	c.log.Debug().Msg("access token expired, refreshing")

	payload, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return fmt.Errorf("encode refresh body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.expireSession()
		return ErrSessionExpired
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.expireSession()
		return ErrSessionExpired
	}

	var refreshed struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&refreshed); err != nil {
		c.expireSession()
		return ErrSessionExpired
	}

	c.store.SetPair(refreshed.Token, refreshed.RefreshToken)
	return nil
}

func (c *Client) needsRefresh() bool {
	token := c.store.AccessToken()
	return token != "" && c.store.RefreshToken() != "" && security.IsExpired(token)
}

func (c *Client) expireSession() {
	c.log.Warn().Msg("token refresh failed, terminating session")
	c.store.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
