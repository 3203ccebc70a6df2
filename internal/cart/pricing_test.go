package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

func TestLineTotal(t *testing.T) {
	item := espresso()

	tests := []struct {
		name     string
		quantity int
		cust     *domain.Customization
		want     float64
	}{
		{"plain single", 1, nil, 3.25},
		{"plain multiple", 3, nil, 9.75},
		{"small discounts", 1, &domain.Customization{Size: "Small"}, 2.75},
		{"large surcharge scales with quantity", 2, &domain.Customization{Size: "Large"}, 8.00},
		{"addon per unit", 2, &domain.Customization{Addons: []string{"Extra Shot"}}, 8.50},
		{"unknown size ignored", 1, &domain.Customization{Size: "Venti"}, 3.25},
		{"unknown addon ignored", 1, &domain.Customization{Addons: []string{"Caramel Drizzle"}}, 3.25},
		{"instructions are free", 1, &domain.Customization{SpecialInstructions: "extra hot"}, 3.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LineTotal(item, tt.quantity, tt.cust), 1e-9)
		})
	}
}

func TestLineTotal_NoScheduleOnItem(t *testing.T) {
	item := latte() // no customization schedule at all
	got := LineTotal(item, 2, &domain.Customization{Size: "Large", Addons: []string{"Extra Shot"}})
	assert.InDelta(t, 9.50, got, 1e-9)
}
