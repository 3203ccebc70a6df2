package textgen

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// WithBreaker decorates a Generator with a circuit breaker so a struggling
// model endpoint fails fast instead of holding request slots open.
func WithBreaker(inner Generator) Generator {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "textgen",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return cb.Execute(func() (string, error) {
			return inner.Generate(ctx, prompt)
		})
	})
}
