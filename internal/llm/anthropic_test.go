package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/common"
)

func TestNewAnthropicClient(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	client, err := newAnthropicClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, defaultAnthropicBaseURL, client.baseURL)
	assert.Equal(t, defaultMaxTokens, client.maxTokens)
}

func TestAnthropicClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, extractionSystemPrompt, body["system"])

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"schedule\":"},{"type":"text","text":"[]}"}]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"schedule":[]}`, got)
}

func TestAnthropicClient_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyResponse)
}
