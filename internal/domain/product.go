package domain

import "github.com/shopspring/decimal"

// Product represents a catalog item available for purchase.
type Product struct {
	Name  string
	Price decimal.Decimal
}

// RuleType identifies the kind of a discount rule.
type RuleType string

const (
	// RuleBuyNGetMFree grants FreeCount free units for every BuyCount
	// units purchased.
	RuleBuyNGetMFree RuleType = "buy_n_get_m_free"
)

// DiscountRule is a discount specification attached to a single product.
type DiscountRule struct {
	Type      RuleType
	BuyCount  int
	FreeCount int
}
