package engine

import (
	"context"
)

// Generator produces a model continuation for an extraction prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
