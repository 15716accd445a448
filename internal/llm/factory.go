package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/service"
)

// Generator wraps a provider with a rate limiter, retries and a continuation cache.
type Generator struct {
	client  Client
	limiter *rateLimiter
	cache   *completionCache
	retry   service.RetryOptions
	name    string
}

// NewClient builds the provider named by cfg.Provider and wraps it.
func NewClient(cfg Config) (*Generator, error) {
	var (
		client Client
		err    error
	)

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		client, err = newOpenAIClient(cfg)
	case ProviderAnthropic:
		client, err = newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %q", common.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return Wrap(client, cfg), nil
}

// Wrap layers the configured policies around an existing client.
func Wrap(client Client, cfg Config) *Generator {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	name := cfg.Model
	if name == "" {
		name = strings.ToLower(cfg.Provider)
	}

	return &Generator{
		client:  client,
		limiter: newRateLimiter(cfg.RateLimit),
		cache:   newCompletionCache(cfg.CacheTTL),
		name:    name,
		retry: service.RetryOptions{
			MaxAttempts:  maxRetries,
			InitialDelay: retryDelay,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Complete returns a cached continuation or asks the provider for a new one.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	if cached, ok := g.cache.get(prompt); ok {
		slog.Debug("Using cached continuation", "model", g.name)
		return cached, nil
	}

	var continuation string
	err := common.WithRetry(ctx, func() error {
		if err := g.limiter.wait(ctx); err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}

		out, err := g.client.Complete(ctx, prompt)
		if err != nil {
			return err
		}
		continuation = out
		return nil
	}, g.retry)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	g.cache.set(prompt, continuation)
	return continuation, nil
}

// Name identifies the model behind the generator.
func (g *Generator) Name() string {
	return g.name
}

// Close releases the cache's background worker.
func (g *Generator) Close() error {
	g.cache.Close()
	return nil
}
