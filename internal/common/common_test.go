package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/service"
)

func TestWithRetry(t *testing.T) {
	fast := service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		failures  int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first try", failures: 0, wantCalls: 1},
		{name: "succeeds after retries", failures: 2, failWith: errBoom, wantCalls: 3},
		{name: "gives up", failures: 5, failWith: errBoom, wantCalls: 3, wantErr: ErrMaxRetries},
		{
			name:      "non-retryable stops immediately",
			failures:  5,
			failWith:  &RetryableError{Err: errBoom, Retryable: false},
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{
			name:      "server delay is capped",
			failures:  1,
			failWith:  &RetryableError{Err: ErrRateLimit, Retryable: true, After: time.Hour},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			}, fast)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return errors.New("boom") },
		service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(fmt.Errorf("call: %w", ErrRateLimit)))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("503"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("400"), Retryable: false}))
	assert.False(t, IsRetryable(errors.New("other")))
}

func TestUserError(t *testing.T) {
	err := NewUserError("잘못된 요청입니다", ErrInvalidRequest)

	assert.Equal(t, "잘못된 요청입니다: invalid request", err.Error())
	assert.ErrorIs(t, err, ErrInvalidRequest)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "잘못된 요청입니다", userErr.UserMessage)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: " warn ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, setupLogger(&buf, slog.LevelInfo, "json"))
	LogInfo("processed", Fields{"reason": "local_keyword"})
	LogDebug("hidden", nil)

	assert.Contains(t, buf.String(), `"msg":"processed"`)
	assert.Contains(t, buf.String(), `"reason":"local_keyword"`)
	assert.NotContains(t, buf.String(), "hidden")

	assert.ErrorIs(t, setupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}
