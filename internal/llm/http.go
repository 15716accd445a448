package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Veraticus/lifeone/internal/common"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// postJSON sends body to url and returns the raw response body of a 200 reply.
// Rate limiting and server failures come back as *common.RetryableError.
func postJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &common.RetryableError{Err: fmt.Errorf("%s request failed: %w", provider, err), Retryable: ctx.Err() == nil}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(provider, resp, raw)
	}
	return raw, nil
}

func statusError(provider string, resp *http.Response, body []byte) error {
	err := fmt.Errorf("%s API error (status %d): %s", provider, resp.StatusCode, string(body))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: %w", common.ErrRateLimit, err),
			After:     retryAfter(resp.Header.Get("Retry-After")),
			Retryable: true,
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &common.RetryableError{
			Err:       err,
			After:     retryAfter(resp.Header.Get("Retry-After")),
			Retryable: true,
		}
	}
	return err
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(value string) time.Duration {
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
