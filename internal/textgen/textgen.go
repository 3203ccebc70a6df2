// Package textgen wraps the generative-text collaborator behind a one-method
// interface so callers can be tested without a live model and failures can be
// contained by a circuit breaker.
package textgen

import (
	"context"
	"errors"
)

// ErrNoContent means the model answered but produced nothing usable.
var ErrNoContent = errors.New("model returned no content")

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
