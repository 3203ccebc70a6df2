// Package recommend suggests drinks for a customer's mood using the
// generative-text collaborator. Recommendations are best effort: any failure
// degrades to the caller-supplied fallback, never to an error.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/textgen"
)

// DefaultFallback is served when the model is unreachable or empty-handed.
const DefaultFallback = "I recommend a warm Green Tea and a Muffin to keep you refreshed!"

type Recommender struct {
	gen textgen.Generator
	log logrus.FieldLogger
}

func New(gen textgen.Generator, log logrus.FieldLogger) *Recommender {
	return &Recommender{gen: gen, log: log}
}

// ForMood returns a short suggestion for the given mood over the current
// menu. fallback is returned verbatim on any failure; pass DefaultFallback
// unless the caller has something more specific.
func (r *Recommender) ForMood(ctx context.Context, mood string, menu []domain.MenuItem, fallback string) string {
	if r.gen == nil {
		return fallback
	}

	out, err := r.gen.Generate(ctx, moodPrompt(mood, menu))
	if err != nil {
		r.log.WithError(err).Warn("drink recommendation failed, using fallback")
		return fallback
	}
	return out
}

func moodPrompt(mood string, menu []domain.MenuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User says they are feeling: %q.\n", mood)
	b.WriteString("Based on the following Sunny Cafe menu:\n")
	for _, category := range []domain.Category{domain.CategoryHot, domain.CategoryCold, domain.CategorySpecialty} {
		names := namesIn(menu, category)
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s.\n", strings.ToUpper(string(category)), strings.Join(names, ", "))
	}
	b.WriteString("\nSuggest the best combination (e.g., a drink and a snack, or just a drink) " +
		"for their mood in a friendly, sunny tone. Keep it short (max 2 sentences).")
	return b.String()
}

func namesIn(menu []domain.MenuItem, category domain.Category) []string {
	var names []string
	for _, item := range menu {
		if item.Category == category {
			names = append(names, item.Name)
		}
	}
	return names
}
