package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/lifeone/internal/config"
	"github.com/Veraticus/lifeone/internal/model"
)

// loadSnapshot reads a context snapshot from a JSON file. An empty path yields
// an empty snapshot.
func loadSnapshot(path string) (model.Snapshot, error) {
	if path == "" {
		return model.Snapshot{}, nil
	}

	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read context file: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse context file %s: %w", path, err)
	}
	return snap, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
