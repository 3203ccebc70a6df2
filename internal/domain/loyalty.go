package domain

type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "bronze"
	TierSilver LoyaltyTier = "silver"
	TierGold   LoyaltyTier = "gold"
)

// PointsPerDollar is how many loyalty points a dollar of subtotal earns.
const PointsPerDollar = 10

// DiscountRate returns the fraction of the subtotal the tier takes off.
// Unknown tiers get no discount.
func (t LoyaltyTier) DiscountRate() float64 {
	switch t {
	case TierSilver:
		return 0.05
	case TierGold:
		return 0.10
	default:
		return 0
	}
}

// TierForPoints maps a loyalty point balance to its tier.
func TierForPoints(points int) LoyaltyTier {
	switch {
	case points >= 1500:
		return TierGold
	case points >= 500:
		return TierSilver
	default:
		return TierBronze
	}
}
