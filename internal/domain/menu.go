package domain

import "time"

type Category string

const (
	CategoryHot       Category = "Hot"
	CategoryCold      Category = "Cold"
	CategorySpecialty Category = "Specialty"
)

// SizeOption is a named size with a price delta relative to the base price.
type SizeOption struct {
	Name          string  `json:"name" firestore:"name"`
	PriceModifier float64 `json:"price_modifier" firestore:"priceModifier"`
}

// AddonOption is a flat-priced extra (whipped cream, extra shot, ...).
type AddonOption struct {
	ID    string  `json:"id" firestore:"id"`
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
}

// CustomizationSchedule lists the options a menu item may be customized with.
// Only sizes and addons carry a price; sugar levels and milk types are free.
type CustomizationSchedule struct {
	Sizes       []SizeOption  `json:"sizes,omitempty" firestore:"sizes"`
	SugarLevels []string      `json:"sugar_levels,omitempty" firestore:"sugarLevels"`
	MilkTypes   []string      `json:"milk_types,omitempty" firestore:"milkTypes"`
	Addons      []AddonOption `json:"addons,omitempty" firestore:"addons"`
}

// SizeByName returns the size option matching name, if the schedule has one.
func (s *CustomizationSchedule) SizeByName(name string) (SizeOption, bool) {
	if s == nil {
		return SizeOption{}, false
	}
	for _, size := range s.Sizes {
		if size.Name == name {
			return size, true
		}
	}
	return SizeOption{}, false
}

// AddonByName returns the addon option matching name, if the schedule has one.
func (s *CustomizationSchedule) AddonByName(name string) (AddonOption, bool) {
	if s == nil {
		return AddonOption{}, false
	}
	for _, addon := range s.Addons {
		if addon.Name == name {
			return addon, true
		}
	}
	return AddonOption{}, false
}

// MenuItem is one purchasable catalog entry. The catalog owns these; the cart
// only ever reads them.
type MenuItem struct {
	ID             string                 `json:"id" firestore:"-"`
	Name           string                 `json:"name" firestore:"name"`
	Description    string                 `json:"description" firestore:"description"`
	Price          float64                `json:"price" firestore:"price"`
	Category       Category               `json:"category" firestore:"category"`
	Image          string                 `json:"image" firestore:"image"`
	Available      bool                   `json:"available" firestore:"available"`
	Featured       bool                   `json:"featured" firestore:"featured"`
	Customizations *CustomizationSchedule `json:"customizations,omitempty" firestore:"customizations"`
	Tags           []string               `json:"tags,omitempty" firestore:"tags"`
	CreatedAt      time.Time              `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time              `json:"updated_at" firestore:"updatedAt"`
}
