// Package payment is the opaque boundary to the card processor. The
// storefront hands over an amount and currency and gets back an intent it can
// surface to the client; it never inspects processor internals.
package payment

import (
	"context"
	"errors"
)

// ErrPaymentUnavailable wraps processor failures. Payment errors are
// commerce-critical: callers must surface them as retryable, never swallow.
var ErrPaymentUnavailable = errors.New("payment processor unavailable")

// Intent is the client-side handle for completing a charge.
type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Charger creates payment intents for order totals.
type Charger interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
}
