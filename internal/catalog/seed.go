package catalog

import "github.com/giridhar-narapusetty/Sunnycafe/internal/domain"

// DefaultMenu is the built-in Sunny Cafe menu, served when no document store
// is configured. Drinks carry the standard size/addon schedule.
func DefaultMenu() []domain.MenuItem {
	drinkSchedule := &domain.CustomizationSchedule{
		Sizes: []domain.SizeOption{
			{Name: "Small", PriceModifier: -0.50},
			{Name: "Medium", PriceModifier: 0},
			{Name: "Large", PriceModifier: 0.75},
		},
		SugarLevels: []string{"No Sugar", "Less Sugar", "Normal", "Extra Sweet"},
		MilkTypes:   []string{"Whole", "Skim", "Oat", "Almond", "Soy"},
		Addons: []domain.AddonOption{
			{ID: "addon-shot", Name: "Extra Shot", Price: 1.00},
			{ID: "addon-cream", Name: "Whipped Cream", Price: 0.75},
			{ID: "addon-syrup", Name: "Vanilla Syrup", Price: 0.50},
		},
	}

	return []domain.MenuItem{
		{ID: "coffee-01", Name: "Artisan Espresso", Price: 3.25, Category: domain.CategoryHot,
			Description: "A concentrated, bold shot of our signature dark roast with a rich crema.",
			Available:   true, Featured: true, Customizations: drinkSchedule},
		{ID: "coffee-02", Name: "Golden Latte", Price: 4.75, Category: domain.CategoryHot,
			Description: "Silky steamed milk poured over rich espresso with a hint of Madagascar vanilla.",
			Available:   true, Featured: true, Customizations: drinkSchedule},
		{ID: "tea-01", Name: "Morning Mist Green Tea", Price: 3.50, Category: domain.CategoryHot,
			Description: "Premium Japanese sencha leaves providing a delicate, grassy finish.",
			Available:   true, Customizations: drinkSchedule},
		{ID: "hot-03", Name: "Midnight Mocha", Price: 5.25, Category: domain.CategoryHot,
			Description: "Rich dark chocolate melted into espresso and topped with whipped cream.",
			Available:   true, Customizations: drinkSchedule},
		{ID: "cold-01", Name: "Iced Caramel Cloud", Price: 5.50, Category: domain.CategoryCold,
			Description: "Cold-pressed espresso over ice, swirled with caramel and topped with cold foam.",
			Available:   true, Featured: true, Customizations: drinkSchedule},
		{ID: "cold-02", Name: "Tropical Sun Smoothie", Price: 6.50, Category: domain.CategoryCold,
			Description: "A refreshing blend of mango, pineapple, and coconut water.",
			Available:   true, Customizations: drinkSchedule},
		{ID: "cold-03", Name: "Berry Bliss Smoothie", Price: 6.75, Category: domain.CategoryCold,
			Description: "Antioxidant-packed blueberries, strawberries, and Greek yogurt.",
			Available:   true, Customizations: drinkSchedule},
		{ID: "cold-04", Name: "Sunny Cold Brew", Price: 5.00, Category: domain.CategoryCold,
			Description: "Slow-steeped for 18 hours for a super smooth, low-acid caffeine kick.",
			Available:   true, Customizations: drinkSchedule},
		{ID: "spec-01", Name: "Butter Croissant", Price: 3.75, Category: domain.CategorySpecialty,
			Description: "Flaky, golden-brown pastry made with 100% French butter.",
			Available:   true, Featured: true},
		{ID: "spec-02", Name: "Avocado Smash Toast", Price: 9.00, Category: domain.CategorySpecialty,
			Description: "Fresh sourdough topped with crushed avocado, chili flakes, and a poached egg.",
			Available:   true},
		{ID: "spec-03", Name: "Blueberry Lemon Muffin", Price: 4.00, Category: domain.CategorySpecialty,
			Description: "Bursting with fresh berries and a zesty lemon sugar topping.",
			Available:   true},
		{ID: "spec-04", Name: "Double Choc Brownie", Price: 4.50, Category: domain.CategorySpecialty,
			Description: "Fudgy, dense chocolate brownie with chunks of dark Belgian chocolate.",
			Available:   true},
	}
}
