package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "gamegestor/core/errors"
	"gamegestor/feature/catalog/models"
)

// providerName identifies the provider in errors and logs.
const providerName = "rawg"

const userAgent = "GameGestor/1.0"

// Client is the HTTP client for the RAWG API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a RAWG client with a timeout-bounded HTTP client.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 7
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// FetchGameByExternalID retrieves one game from the provider and returns it
// normalized to the catalog model. The returned game is not persisted; the
// catalog reconciliation service decides whether to merge or create.
func (c *Client) FetchGameByExternalID(ctx context.Context, externalID string) (*models.Game, error) {
	payload, err := c.get(ctx, "/games/"+url.PathEscape(externalID))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Name) == "" {
		return nil, apperrors.NewParseError(providerName, errors.New("game payload has no name"))
	}
	return normalize(payload), nil
}

// get performs one authenticated lookup and decodes the response body.
func (c *Client) get(ctx context.Context, path string) (*gamePayload, error) {
	if c.cfg.APIKey == "" {
		return nil, apperrors.NewConfigError(providerName, "missing RAWG API key")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	endpoint := fmt.Sprintf("%s%s%skey=%s", c.cfg.BaseURL, path, sep, url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewTimeoutError(providerName, err)
		}
		return nil, &apperrors.UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewTimeoutError(providerName, err)
		}
		return nil, &apperrors.UpstreamError{Provider: providerName, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, apperrors.NewUpstreamError(providerName, resp.StatusCode, string(body))
	}

	var payload gamePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewParseError(providerName, err)
	}
	return &payload, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
