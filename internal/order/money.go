package order

import (
	"fmt"
	"math"
)

// Round2 rounds to cents for display and payment capture. Internal arithmetic
// stays unrounded so repeated operations don't accumulate bias.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAmount renders a display string like $14.03.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", Round2(amount))
}

// Tax computes the tax portion of a subtotal.
func Tax(subtotal, rate float64) float64 {
	return subtotal * rate
}

// PercentageDiscount takes value percent off the subtotal.
func PercentageDiscount(subtotal, value float64) float64 {
	return subtotal * (value / 100)
}

// FixedDiscount caps a flat discount at the subtotal; a coupon can never push
// an order negative.
func FixedDiscount(subtotal, value float64) float64 {
	return math.Min(value, subtotal)
}
