package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/domain"
)

// Calculator turns cart contents into an invoice using the catalog prices
// and the per-product discount rules.
type Calculator struct {
	catalog *catalog.Catalog
	rules   map[string]domain.DiscountRule
}

// NewCalculator creates a calculator. Rule keys are normalized so they
// match catalog entries regardless of casing or padding in the seed data.
func NewCalculator(c *catalog.Catalog, rules map[string]domain.DiscountRule) *Calculator {
	normalized := make(map[string]domain.DiscountRule, len(rules))
	for name, rule := range rules {
		normalized[catalog.Normalize(name)] = rule
	}
	return &Calculator{catalog: c, rules: normalized}
}

// BuildInvoice prices each cart item and applies discounts. Items whose
// product is no longer in the catalog are skipped; the catalog is static
// here so that path is a safety net, not a normal flow. The cart is not
// mutated. Totals are exact decimal sums; rounding happens only at render
// time.
func (calc *Calculator) BuildInvoice(items []domain.CartItem) *domain.Invoice {
	inv := &domain.Invoice{
		ID:        uuid.New().String(),
		Subtotal:  decimal.Zero,
		Savings:   decimal.Zero,
		Total:     decimal.Zero,
		CreatedAt: time.Now(),
	}

	for _, item := range items {
		product, err := calc.catalog.Get(item.Name)
		if err != nil {
			continue // stale cart entry
		}

		free := 0
		if rule, ok := calc.rules[product.Name]; ok && rule.Type == domain.RuleBuyNGetMFree {
			free = FreeUnits(item.Quantity, rule.BuyCount, rule.FreeCount)
		}

		billable := item.Quantity - free
		amount := product.Price.Mul(decimal.NewFromInt(int64(billable)))

		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			FreeUnits: free,
			Amount:    amount,
		})
		if free > 0 {
			inv.Discounts = append(inv.Discounts, domain.DiscountDetail{
				Name:      product.Name,
				Quantity:  item.Quantity,
				FreeUnits: free,
				Amount:    amount,
			})
		}

		inv.Subtotal = inv.Subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		inv.Total = inv.Total.Add(amount)
	}

	inv.Savings = inv.Subtotal.Sub(inv.Total)
	return inv
}
