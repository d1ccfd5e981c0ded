package cart

import (
	"github.com/go-faster/errors"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/domain"
)

// Errors returned by cart operations. All are recoverable: the caller
// informs the user and continues.
var (
	ErrUnknownProduct  = errors.New("product not in catalog")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNotInCart       = errors.New("product not in cart")
)

// Cart is the session-scoped product->quantity working set. Only products
// present in the catalog may be inserted, and quantities are always
// positive. Iteration preserves insertion order.
type Cart struct {
	catalog    *catalog.Catalog
	quantities map[string]int
	order      []string
}

// New creates an empty cart bound to the given catalog.
func New(c *catalog.Catalog) *Cart {
	return &Cart{
		catalog:    c,
		quantities: make(map[string]int),
	}
}

// AddItem adds quantity units of the named product, accumulating onto any
// existing entry. Adding q1 then q2 is equivalent to a single add of q1+q2.
func (c *Cart) AddItem(name string, quantity int) error {
	key := catalog.Normalize(name)
	if !c.catalog.Has(key) {
		return ErrUnknownProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if _, exists := c.quantities[key]; !exists {
		c.order = append(c.order, key)
	}
	c.quantities[key] += quantity
	return nil
}

// UpdateQuantity replaces the quantity of an existing entry. A quantity of
// zero removes the entry; this is the explicit removal path, not an error.
func (c *Cart) UpdateQuantity(name string, quantity int) error {
	key := catalog.Normalize(name)
	if _, exists := c.quantities[key]; !exists {
		return ErrNotInCart
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.remove(key)
		return nil
	}
	c.quantities[key] = quantity
	return nil
}

func (c *Cart) remove(key string) {
	delete(c.quantities, key)
	for i, name := range c.order {
		if name == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot of the cart contents in insertion order.
func (c *Cart) Items() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(c.order))
	for _, name := range c.order {
		items = append(items, domain.CartItem{Name: name, Quantity: c.quantities[name]})
	}
	return items
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

// Clear discards all entries. Checkout calls this after rendering the
// invoice; the cart itself stays usable for the rest of the session.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.order = nil
}
