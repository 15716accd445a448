package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/common"
)

func TestNewOpenAIClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid config", config: Config{APIKey: "test-key"}},
		{name: "missing API key for hosted service", config: Config{}, wantErr: true},
		{name: "local server needs no key", config: Config{BaseURL: "http://localhost:8080/v1/"}},
		{
			name: "custom model and settings",
			config: Config{
				APIKey:      "test-key",
				Model:       "gpt-4o",
				Temperature: 0.5,
				MaxTokens:   200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := newOpenAIClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrMissingConfig)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	var received struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"diary\":[]}"}}]}`))
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "local-lora"})
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "사용자 입력: 메모")
	require.NoError(t, err)
	assert.Equal(t, `{"diary":[]}`, got)

	assert.Equal(t, "local-lora", received.Model)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "사용자 입력: 메모", received.Messages[1].Content)
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		retryAfter    string
		wantRetryable bool
		wantRateLimit bool
		wantAfter     time.Duration
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, retryAfter: "2", wantRetryable: true, wantRateLimit: true, wantAfter: 2 * time.Second},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, wantRetryable: true},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad"}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "garbage body", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), "prompt")
			require.Error(t, err)
			assert.Equal(t, tt.wantRetryable, common.IsRetryable(err))
			assert.Equal(t, tt.wantRateLimit, errors.Is(err, common.ErrRateLimit))

			var retryErr *common.RetryableError
			if errors.As(err, &retryErr) {
				assert.Equal(t, tt.wantAfter, retryErr.After)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, retryAfter("3"))
	assert.Equal(t, time.Duration(0), retryAfter(""))
	assert.Equal(t, time.Duration(0), retryAfter("-1"))
	assert.Equal(t, time.Duration(0), retryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
