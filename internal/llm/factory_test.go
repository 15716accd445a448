package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/common"
)

// scriptedClient returns the queued errors first, then its reply.
type scriptedClient struct {
	reply string
	errs  []error
	calls atomic.Int32
}

func (c *scriptedClient) Complete(_ context.Context, _ string) (string, error) {
	n := int(c.calls.Add(1))
	if n <= len(c.errs) {
		return "", c.errs[n-1]
	}
	return c.reply, nil
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "openai", config: Config{Provider: "openai", APIKey: "k"}},
		{name: "anthropic is case insensitive", config: Config{Provider: "Anthropic", APIKey: "k"}},
		{name: "unknown provider", config: Config{Provider: "gpt2"}, wantErr: common.ErrInvalidConfig},
		{name: "missing key", config: Config{Provider: "anthropic"}, wantErr: common.ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewClient(tt.config)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer func() { _ = gen.Close() }()
		})
	}
}

func TestGenerator_CachesByPrompt(t *testing.T) {
	inner := &scriptedClient{reply: `{"diary":[]}`}
	gen := Wrap(inner, Config{Model: "local"})
	defer func() { _ = gen.Close() }()

	for i := 0; i < 3; i++ {
		got, err := gen.Complete(context.Background(), "same prompt")
		require.NoError(t, err)
		assert.Equal(t, `{"diary":[]}`, got)
	}
	assert.Equal(t, int32(1), inner.calls.Load())

	_, err := gen.Complete(context.Background(), "other prompt")
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
	assert.Equal(t, "local", gen.Name())
}

func TestGenerator_RetriesTransientFailures(t *testing.T) {
	inner := &scriptedClient{
		reply: "ok",
		errs: []error{
			&common.RetryableError{Err: errors.New("bad gateway"), Retryable: true},
			&common.RetryableError{Err: errors.New("bad gateway"), Retryable: true},
		},
	}
	gen := Wrap(inner, Config{MaxRetries: 3, RetryDelay: time.Millisecond})
	defer func() { _ = gen.Close() }()

	got, err := gen.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestGenerator_GivesUp(t *testing.T) {
	permanent := &common.RetryableError{Err: errors.New("bad request"), Retryable: false}
	inner := &scriptedClient{errs: []error{permanent}}
	gen := Wrap(inner, Config{MaxRetries: 3, RetryDelay: time.Millisecond})
	defer func() { _ = gen.Close() }()

	_, err := gen.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, int32(1), inner.calls.Load())

	_, found := gen.cache.get("prompt")
	assert.False(t, found, "failures are not cached")
}
