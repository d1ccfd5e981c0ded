package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/domain"
)

// Column widths for the fixed-width tables: names left-aligned, money
// right-aligned with a currency prefix and two decimals.
const (
	nameWidth  = 20
	moneyWidth = 10
)

// Renderer writes catalog, cart and invoice views as formatted text.
// It never mutates what it renders.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func money(d decimal.Decimal) string {
	return fmt.Sprintf("$%*s", moneyWidth, d.StringFixed(2))
}

// Catalog renders all products in insertion order, or a single
// "no products" line when the catalog is empty.
func (r *Renderer) Catalog(c *catalog.Catalog) {
	fmt.Fprintln(r.w, "--- Products ---")
	if c.Len() == 0 {
		fmt.Fprintln(r.w, "No products available.")
		return
	}
	for _, p := range c.Products() {
		fmt.Fprintf(r.w, "%-*s %s\n", nameWidth, p.Name, money(p.Price))
	}
}

// Cart renders each cart entry with its pre-discount subtotal and a
// running total. Entries whose product is no longer in the catalog are
// skipped; the catalog is static, so this is a safety net only.
func (r *Renderer) Cart(items []domain.CartItem, c *catalog.Catalog) {
	fmt.Fprintln(r.w, "--- Your Cart ---")
	if len(items) == 0 {
		fmt.Fprintln(r.w, "Your cart is empty.")
		return
	}
	total := decimal.Zero
	for _, item := range items {
		product, err := c.Get(item.Name)
		if err != nil {
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(r.w, "%-*s x%-4d %s\n", nameWidth, product.Name, item.Quantity, money(subtotal))
		total = total.Add(subtotal)
	}
	fmt.Fprintf(r.w, "Total: %s\n", money(total))
}

// Invoice renders the checkout summary: item lines, the discounts applied,
// and the subtotal / savings / total footer.
func (r *Renderer) Invoice(inv *domain.Invoice) {
	fmt.Fprintln(r.w, "========== INVOICE ==========")
	fmt.Fprintf(r.w, "Invoice #%s\n", inv.ID)
	for _, line := range inv.Lines {
		fmt.Fprintf(r.w, "%-*s x%-4d @ %s %s\n", nameWidth, line.Name, line.Quantity, money(line.UnitPrice), money(line.Amount))
	}
	if len(inv.Discounts) > 0 {
		fmt.Fprintln(r.w, "--- Discounts ---")
		for _, d := range inv.Discounts {
			fmt.Fprintf(r.w, "%-*s %d of %d units free\n", nameWidth, d.Name, d.FreeUnits, d.Quantity)
		}
	}
	fmt.Fprintf(r.w, "Subtotal: %s\n", money(inv.Subtotal))
	fmt.Fprintf(r.w, "Savings:  %s\n", money(inv.Savings))
	fmt.Fprintf(r.w, "Total:    %s\n", money(inv.Total))
}
