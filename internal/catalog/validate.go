package catalog

import (
	"fmt"
	"strings"

	"github.com/fjod/go_shop/internal/domain"
)

// Validate checks the seed configuration before the catalog is built and
// returns one warning per finding. Warnings are never fatal: a discount
// referencing an unknown product simply never applies, and a whitespace-
// padded catalog key is fixed by normalization at load time. The caller
// decides whether to display them.
func Validate(products []domain.Product, rules map[string]domain.DiscountRule) []string {
	var warnings []string

	known := make(map[string]bool, len(products))
	for _, p := range products {
		if p.Name != strings.TrimSpace(p.Name) {
			warnings = append(warnings, fmt.Sprintf("catalog key %q has leading/trailing whitespace", p.Name))
		}
		if !p.Price.IsPositive() {
			warnings = append(warnings, fmt.Sprintf("catalog entry %q has non-positive price %s", p.Name, p.Price))
		}
		known[Normalize(p.Name)] = true
	}

	for name, rule := range rules {
		if !known[Normalize(name)] {
			warnings = append(warnings, fmt.Sprintf("discount rule references unknown product %q", name))
		}
		if rule.BuyCount <= 0 || rule.FreeCount <= 0 {
			warnings = append(warnings, fmt.Sprintf("discount rule for %q has non-positive counts (buy %d, free %d)", name, rule.BuyCount, rule.FreeCount))
		}
	}

	return warnings
}
