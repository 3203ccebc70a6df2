package textgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithBreaker_PassesThrough(t *testing.T) {
	gen := WithBreaker(GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	}))

	out, err := gen.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", out)
}

func TestWithBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	gen := WithBreaker(GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "", errors.New("model unavailable")
	}))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := gen.Generate(ctx, "x")
		require.Error(t, err)
	}
	assert.Equal(t, 3, calls)

	// Circuit is open now; the inner generator is not reached.
	_, err := gen.Generate(ctx, "x")
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}
