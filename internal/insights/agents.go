// Package insights generates business reports over recent order history:
// combo suggestions, pricing review and low-performer analysis. Prompt
// assembly is pure; generation failures degrade to static fallbacks.
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/textgen"
)

const (
	fallbackCombos        = "Unable to generate combo suggestions at this time."
	fallbackPricing       = "Unable to analyze pricing at this time."
	fallbackLowPerformers = "Unable to analyze menu performance at this time."
)

type Agent struct {
	gen textgen.Generator
	log logrus.FieldLogger
}

func NewAgent(gen textgen.Generator, log logrus.FieldLogger) *Agent {
	return &Agent{gen: gen, log: log}
}

// SuggestCombos proposes bundle deals from the top sellers in stats.
func (a *Agent) SuggestCombos(ctx context.Context, stats orders.Stats) string {
	if len(stats.TopItems) == 0 {
		return fallbackCombos
	}
	return a.generate(ctx, comboPrompt(stats), fallbackCombos)
}

// ReviewPricing asks whether an item's price fits its sales velocity.
func (a *Agent) ReviewPricing(ctx context.Context, item domain.MenuItem, stats orders.Stats) string {
	return a.generate(ctx, pricingPrompt(item, stats), fallbackPricing)
}

// AnalyzeLowPerformers reports on menu items with no recorded sales.
func (a *Agent) AnalyzeLowPerformers(ctx context.Context, menu []domain.MenuItem, stats orders.Stats) string {
	low := LowPerformers(menu, stats)
	if len(low) == 0 {
		return "Every menu item recorded sales in this window."
	}
	return a.generate(ctx, lowPerformerPrompt(low), fallbackLowPerformers)
}

func (a *Agent) generate(ctx context.Context, prompt, fallback string) string {
	if a.gen == nil {
		return fallback
	}
	out, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.WithError(err).Warn("insights generation failed, using fallback")
		return fallback
	}
	return out
}

// LowPerformers returns the menu items that never appear in the window's
// sales. Pure, so reports stay testable without a model.
func LowPerformers(menu []domain.MenuItem, stats orders.Stats) []domain.MenuItem {
	sold := make(map[string]struct{}, len(stats.TopItems))
	for _, s := range stats.TopItems {
		sold[s.MenuItemID] = struct{}{}
	}

	var low []domain.MenuItem
	for _, item := range menu {
		if _, ok := sold[item.ID]; !ok {
			low = append(low, item)
		}
	}
	return low
}

func comboPrompt(stats orders.Stats) string {
	names := make([]string, 0, len(stats.TopItems))
	for i, s := range stats.TopItems {
		if i == 10 {
			break
		}
		names = append(names, s.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on these top-selling cafe items: %s\n\n", strings.Join(names, ", "))
	b.WriteString("Suggest 3 profitable combo deals that would appeal to customers.\n")
	b.WriteString("For each combo give a name, the items included, a suggested price, ")
	b.WriteString("and why it would sell well. Keep it concise and actionable.")
	return b.String()
}

func pricingPrompt(item domain.MenuItem, stats orders.Stats) string {
	var sold int
	for _, s := range stats.TopItems {
		if s.MenuItemID == item.ID {
			sold = s.Quantity
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Item: %s\nCurrent Price: $%.2f\nCategory: %s\nRecent sales: %d units\n\n",
		item.Name, item.Price, item.Category, sold)
	b.WriteString("Analyze if the pricing is optimal considering market positioning, ")
	b.WriteString("sales velocity and category standards. ")
	b.WriteString("Provide a brief recommendation (2-3 sentences).")
	return b.String()
}

func lowPerformerPrompt(low []domain.MenuItem) string {
	names := make([]string, len(low))
	for i, item := range low {
		names[i] = item.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "These cafe menu items have low or no sales: %s\n\n", strings.Join(names, ", "))
	b.WriteString("Provide actionable recommendations: should any be removed, repriced, ")
	b.WriteString("or promoted differently? Keep it brief.")
	return b.String()
}
