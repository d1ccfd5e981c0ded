package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed cart entry on an invoice.
type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	FreeUnits int
	Amount    decimal.Decimal // (Quantity - FreeUnits) * UnitPrice
}

// DiscountDetail records a discount applied to one invoice line.
type DiscountDetail struct {
	Name      string
	Quantity  int
	FreeUnits int
	Amount    decimal.Decimal // amount actually billed for the line
}

// Invoice is the rendered summary of a checkout. It is derived from the
// cart at checkout time and never stored.
type Invoice struct {
	ID        string
	Lines     []InvoiceLine
	Discounts []DiscountDetail
	Subtotal  decimal.Decimal // pre-discount sum
	Savings   decimal.Decimal // Subtotal - Total
	Total     decimal.Decimal
	CreatedAt time.Time
}
