package catalog

import (
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fjod/go_shop/internal/domain"
)

// ErrProductNotFound is returned when a requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

var titleCase = cases.Title(language.English)

// Normalize canonicalizes a product name for lookup: leading/trailing
// whitespace is trimmed and the name is title-cased. Every catalog access
// goes through this, so "  iphone 11 " and "Iphone 11" resolve to the
// same entry.
func Normalize(name string) string {
	return titleCase.String(strings.ToLower(strings.TrimSpace(name)))
}

// Catalog is the immutable product->price reference data. Keys are
// normalized at construction; listing preserves insertion order.
type Catalog struct {
	products map[string]domain.Product
	order    []string
}

// New builds a catalog from the given products. Names are normalized
// before insertion; a later product with the same normalized name
// overwrites the earlier price but keeps its position.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make(map[string]domain.Product, len(products)),
	}
	for _, p := range products {
		name := Normalize(p.Name)
		if _, exists := c.products[name]; !exists {
			c.order = append(c.order, name)
		}
		c.products[name] = domain.Product{Name: name, Price: p.Price}
	}
	return c
}

// Get returns the product for the given (unnormalized) name.
func (c *Catalog) Get(name string) (domain.Product, error) {
	p, exists := c.products[Normalize(name)]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Has reports whether the given name resolves to a catalog entry.
func (c *Catalog) Has(name string) bool {
	_, exists := c.products[Normalize(name)]
	return exists
}

// Products returns all catalog entries in insertion order.
func (c *Catalog) Products() []domain.Product {
	result := make([]domain.Product, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.products[name])
	}
	return result
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.order)
}
