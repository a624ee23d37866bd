package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/lumeapp/sync-client/internal/config"
)

// Client is the shared HTTP wrapper every feature service goes through. It
// owns the base URL, cookie-style credentials and the single 403 → token
// refresh → retry-once interceptor. There is no other retry policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	// refreshMu serializes refresh so a burst of 403s performs one
	// round-trip; followers reuse the fresh token.
	refreshMu sync.Mutex
}

func New(cfg *config.Config, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type envelope struct {
	Status  bool            `json:"status"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// doJSON issues one request with the envelope contract applied. A nil out
// skips data decoding. body may be nil, an io.Reader (sent as-is with
// contentType) or any other value (JSON-encoded).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, contentType string, out any) error {
	payload, bodyType, err := encodeBody(body, contentType)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, payload, bodyType, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // .

	return decodeEnvelope(resp, out)
}

func encodeBody(body any, contentType string) ([]byte, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		raw, err := io.ReadAll(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read request body: %w", err)
		}
		return raw, contentType, nil
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		return raw, "application/json", nil
	}
}

// send performs the request, refreshing credentials and retrying exactly
// once when the backend answers 403.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, allowRetry bool) (*http.Response, error) {
	access, _, err := c.tokens.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, payload, contentType, access)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode == http.StatusForbidden && allowRetry {
		_ = resp.Body.Close()

		if err := c.refresh(ctx, access); err != nil {
			return nil, fmt.Errorf("failed to refresh session: %w", err)
		}

		return c.send(ctx, method, path, payload, contentType, false)
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte, contentType, access string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: access})
	}

	return req, nil
}

// refresh exchanges the stored refresh token for a new pair. staleAccess is
// the token that just failed: if another caller already rotated it while we
// waited on the mutex, the round-trip is skipped.
func (c *Client) refresh(ctx context.Context, staleAccess string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refreshToken, err := c.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if access != staleAccess {
		return nil
	}

	if refreshToken == "" {
		return ErrUnauthorized
	}

	reqBody, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token/refresh", bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute refresh request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeEnvelope(resp, &tokens); err != nil {
		return err
	}

	if err := c.tokens.SaveTokens(ctx, tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	return nil
}

func decodeEnvelope(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNotFound {
		return &Error{StatusCode: resp.StatusCode, Message: "not found"}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if env.Error || resp.StatusCode >= http.StatusBadRequest {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	data := env.Data
	if data == nil {
		return fmt.Errorf("response has no data payload")
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
