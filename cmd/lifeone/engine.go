package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/lifeone/internal/config"
	"github.com/Veraticus/lifeone/internal/engine"
	"github.com/Veraticus/lifeone/internal/llm"
	"github.com/Veraticus/lifeone/internal/storage"
)

// runtime bundles the engine with the resources that must be released after use.
type runtime struct {
	engine    *engine.Engine
	generator *llm.Generator
	history   *storage.SQLiteStorage
	provider  string
}

func (r *runtime) Close() {
	if r.generator != nil {
		_ = r.generator.Close()
	}
	if r.history != nil {
		_ = r.history.Close()
	}
}

// newRuntime builds the engine from configuration. The history store is opened
// only when withHistory is set and history is enabled.
func newRuntime(ctx context.Context, withHistory bool) (*runtime, error) {
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return nil, err
	}

	rt := &runtime{provider: llmCfg.Provider}
	cfg := engine.Config{}

	if llmCfg.Provider != llm.ProviderNone {
		gen, err := llm.NewClient(llmCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", llmCfg.Provider, err)
		}
		rt.generator = gen
		cfg.Generator = gen
		cfg.ModelName = gen.Name()
		slog.Debug("Using language model", "provider", llmCfg.Provider, "model", gen.Name())
	}

	if withHistory {
		historyCfg := config.LoadHistoryConfig()
		if historyCfg.Enabled {
			store, err := openHistory(ctx, historyCfg.DatabasePath)
			if err != nil {
				rt.Close()
				return nil, err
			}
			rt.history = store
			cfg.History = store
		}
	}

	rt.engine = engine.New(cfg)
	return rt, nil
}

func openHistory(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return store, nil
}
