package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomization_IsZero(t *testing.T) {
	var nilCust *Customization
	assert.True(t, nilCust.IsZero())
	assert.True(t, (&Customization{}).IsZero())
	assert.False(t, (&Customization{Size: "Large"}).IsZero())
	assert.False(t, (&Customization{Addons: []string{"Extra Shot"}}).IsZero())
}

func TestCanonicalKey_AddonOrderInsensitive(t *testing.T) {
	a := &Customization{Size: "Large", Addons: []string{"Extra Shot", "Whipped Cream"}}
	b := &Customization{Size: "Large", Addons: []string{"Whipped Cream", "Extra Shot"}}

	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestCanonicalKey_DistinguishesOptions(t *testing.T) {
	a := &Customization{Size: "Large"}
	b := &Customization{Size: "Small"}
	c := &Customization{Size: "Large", MilkType: "Oat"}

	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
	assert.NotEqual(t, a.CanonicalKey(), c.CanonicalKey())
}

func TestCanonicalKey_NilAndEmptyAgree(t *testing.T) {
	var nilCust *Customization
	assert.Equal(t, "", nilCust.CanonicalKey())
	assert.Equal(t, "", (&Customization{}).CanonicalKey())
}

func TestCanonicalKey_DoesNotMutateAddons(t *testing.T) {
	c := &Customization{Addons: []string{"Whipped Cream", "Extra Shot"}}
	c.CanonicalKey()
	assert.Equal(t, []string{"Whipped Cream", "Extra Shot"}, c.Addons)
}

func TestCartLineKey_PlainLineIsItemID(t *testing.T) {
	l := &CartLine{Item: MenuItem{ID: "coffee-01"}}
	assert.Equal(t, "coffee-01", l.Key())

	l.Customization = &Customization{}
	assert.Equal(t, "coffee-01", l.Key())
}

func TestCartLineKey_StableAcrossSerialization(t *testing.T) {
	l := CartLine{
		Item:          MenuItem{ID: "coffee-01"},
		Quantity:      2,
		Customization: &Customization{Size: "Large", Addons: []string{"Extra Shot"}},
	}
	before := l.Key()

	data, err := json.Marshal(l)
	require.NoError(t, err)
	var back CartLine
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, before, back.Key())
}

func TestCustomizationClone_Detached(t *testing.T) {
	orig := &Customization{Size: "Large", Addons: []string{"Extra Shot"}}
	cp := orig.Clone()

	cp.Size = "Small"
	cp.Addons[0] = "Vanilla Syrup"

	assert.Equal(t, "Large", orig.Size)
	assert.Equal(t, "Extra Shot", orig.Addons[0])

	var nilCust *Customization
	assert.Nil(t, nilCust.Clone())
}

func TestLoyaltyTiers(t *testing.T) {
	assert.Equal(t, TierBronze, TierForPoints(0))
	assert.Equal(t, TierBronze, TierForPoints(499))
	assert.Equal(t, TierSilver, TierForPoints(500))
	assert.Equal(t, TierSilver, TierForPoints(1499))
	assert.Equal(t, TierGold, TierForPoints(1500))

	assert.Zero(t, TierBronze.DiscountRate())
	assert.InDelta(t, 0.05, TierSilver.DiscountRate(), 1e-9)
	assert.InDelta(t, 0.10, TierGold.DiscountRate(), 1e-9)
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPreparing.IsTerminal())
}
