package llm

import (
	"context"
	"time"
)

// Client produces a continuation for a prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings and the policies wrapped around it.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	Timeout     time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// Supported providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 512
	defaultTimeout     = 30 * time.Second
)
