package domain

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
)

// Customization is the options a customer picked for one cart line.
type Customization struct {
	Size                string   `json:"size,omitempty"`
	SugarLevel          string   `json:"sugar_level,omitempty"`
	MilkType            string   `json:"milk_type,omitempty"`
	Addons              []string `json:"addons,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// IsZero reports whether no option was picked at all. A nil customization and
// an all-empty one are the same thing for line identity.
func (c *Customization) IsZero() bool {
	if c == nil {
		return true
	}
	return c.Size == "" && c.SugarLevel == "" && c.MilkType == "" &&
		len(c.Addons) == 0 && c.SpecialInstructions == ""
}

// CanonicalKey renders the customization in a stable form (fixed field order,
// sorted addons) so structurally equal payloads compare equal as strings.
func (c *Customization) CanonicalKey() string {
	if c.IsZero() {
		return ""
	}
	norm := Customization{
		Size:                c.Size,
		SugarLevel:          c.SugarLevel,
		MilkType:            c.MilkType,
		SpecialInstructions: c.SpecialInstructions,
	}
	if len(c.Addons) > 0 {
		norm.Addons = append([]string(nil), c.Addons...)
		sort.Strings(norm.Addons)
	}
	// Marshaling a fixed struct cannot fail.
	b, _ := json.Marshal(norm)
	return string(b)
}

// Clone returns a detached copy.
func (c *Customization) Clone() *Customization {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Addons != nil {
		cp.Addons = append([]string(nil), c.Addons...)
	}
	return &cp
}

// CartLine is one distinct purchasable configuration in the cart. It carries a
// snapshot of the menu item so a persisted cart survives catalog edits.
type CartLine struct {
	Item          MenuItem       `json:"item"`
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
	LineTotal     float64        `json:"line_total"`
}

// Key is the line's routing identity: the item id alone for plain lines, or
// the id plus a short digest of the canonical customization. URL safe, stable
// across serialization. Merge identity compares the full canonical encoding,
// not this digest.
func (l *CartLine) Key() string {
	ck := l.Customization.CanonicalKey()
	if ck == "" {
		return l.Item.ID
	}
	h := fnv.New64a()
	h.Write([]byte(ck))
	return fmt.Sprintf("%s~%016x", l.Item.ID, h.Sum64())
}

// Clone returns a detached copy of the line.
func (l CartLine) Clone() CartLine {
	cp := l
	cp.Customization = l.Customization.Clone()
	return cp
}
