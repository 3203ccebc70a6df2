package cart

import "github.com/giridhar-narapusetty/Sunnycafe/internal/domain"

// LineTotal prices one cart line: unit price times quantity, plus the matched
// size modifier and each matched addon, also times quantity. Selections that
// don't exist in the item's schedule contribute nothing; they are ignored,
// not rejected.
func LineTotal(item domain.MenuItem, quantity int, c *domain.Customization) float64 {
	total := item.Price * float64(quantity)
	if c == nil {
		return total
	}

	if c.Size != "" {
		if size, ok := item.Customizations.SizeByName(c.Size); ok {
			total += size.PriceModifier * float64(quantity)
		}
	}
	for _, name := range c.Addons {
		if addon, ok := item.Customizations.AddonByName(name); ok {
			total += addon.Price * float64(quantity)
		}
	}
	return total
}
