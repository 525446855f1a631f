package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	userAgent      = "Meridian-Midpoint-Service/1.0 (https://github.com/UnknownOlympus/meridian)"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// statusError carries a non-200 reply so providers can map it onto their own errors.
type statusError struct {
	provider string
	code     int
	body     string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.provider, e.code, e.body)
}

// getJSON issues a GET for baseURL with the given query and decodes a 200 reply into out.
func getJSON(
	ctx context.Context,
	client HTTPClient,
	log *slog.Logger,
	provider, baseURL string,
	query url.Values,
	out any,
) error {
	reqURL, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.ErrorContext(ctx, "Geocoding API error", "provider", provider, "status", resp.StatusCode, "body", string(body))
		return &statusError{provider: provider, code: resp.StatusCode, body: string(body)}
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", provider, err)
	}

	return nil
}
