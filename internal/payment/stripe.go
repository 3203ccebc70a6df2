package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeCharger creates payment intents against the Stripe API.
type StripeCharger struct {
	api *client.API
}

func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

func (s *StripeCharger) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// toMinorUnits converts dollars to cents the way the processor expects.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
