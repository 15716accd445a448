package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/llm"
)

// LoadLLMConfig reads the generator settings. It follows this precedence:
// 1. Viper configuration (config file or LIFEONE_ env vars)
// 2. Provider environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY)
// 3. Default values
//
// A provider of "none" (the default) means extraction runs on the rule-based
// fallback alone.
func LoadLLMConfig() (llm.Config, error) {
	provider := strings.ToLower(strings.TrimSpace(viper.GetString("llm.provider")))
	if provider == "" {
		provider = llm.ProviderNone
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		MaxRetries:  viper.GetInt("llm.max_retries"),
		RetryDelay:  viper.GetDuration("llm.retry_delay"),
		CacheTTL:    viper.GetDuration("llm.cache_ttl"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		Timeout:     viper.GetDuration("llm.timeout"),
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 1000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	switch provider {
	case llm.ProviderNone:
		return cfg, nil

	case llm.ProviderOpenAI:
		cfg.APIKey = viper.GetString("llm.openai_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.APIKey == "" && cfg.BaseURL == "" {
			return llm.Config{}, fmt.Errorf("%w: OpenAI API key not found in config or OPENAI_API_KEY environment variable", common.ErrMissingConfig)
		}

	case llm.ProviderAnthropic:
		cfg.APIKey = viper.GetString("llm.anthropic_api_key")
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.APIKey == "" {
			return llm.Config{}, fmt.Errorf("%w: anthropic API key not found in config or ANTHROPIC_API_KEY environment variable", common.ErrMissingConfig)
		}

	default:
		return llm.Config{}, fmt.Errorf("%w: unsupported LLM provider %q (use openai, anthropic or none)", common.ErrInvalidConfig, provider)
	}

	return cfg, nil
}
