package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/fjod/go_shop/internal/cart"
	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/pricing"
)

// Menu drives the interactive session: it reads choices from a single
// input stream, dispatches to the catalog/cart/pricing components, and
// returns to the main menu after every action. Input errors become
// re-prompts; no error escapes Run.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	render  *Renderer
	catalog *catalog.Catalog
	cart    *cart.Cart
	calc    *pricing.Calculator
}

// NewMenu wires a menu over the given streams.
func NewMenu(in io.Reader, out io.Writer, c *catalog.Catalog, ct *cart.Cart, calc *pricing.Calculator) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		render:  NewRenderer(out),
		catalog: c,
		cart:    ct,
		calc:    calc,
	}
}

// Run loops until the user exits or input is exhausted.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, "\n===== Main Menu =====\n"+
			"1. View Products\n"+
			"2. Add Item\n"+
			"3. View Cart\n"+
			"4. Update/Remove Item\n"+
			"5. Checkout\n"+
			"6. Exit\n")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.render.Catalog(m.catalog)
		case "2":
			m.addItem()
		case "3":
			m.render.Cart(m.cart.Items(), m.catalog)
		case "4":
			m.updateItem()
		case "5":
			m.checkout()
		case "6":
			if m.confirmExit() {
				fmt.Fprintln(m.out, "Goodbye!")
				return
			}
		default:
			fmt.Fprintln(m.out, "Invalid choice, enter a number from 1 to 6.")
		}
	}
}

func (m *Menu) addItem() {
	for {
		name, ok := m.prompt("Product name (blank to cancel): ")
		if !ok || name == "" {
			return
		}
		if !m.catalog.Has(name) {
			fmt.Fprintf(m.out, "%q is not in the catalog.\n", strings.TrimSpace(name))
			continue
		}

		for {
			quantity, ok := m.promptInt("Quantity: ")
			if !ok {
				return
			}
			err := m.cart.AddItem(name, quantity)
			if errors.Is(err, cart.ErrInvalidQuantity) {
				fmt.Fprintln(m.out, "Quantity must be positive.")
				continue
			}
			if err != nil {
				fmt.Fprintf(m.out, "Could not add item: %v\n", err)
				return
			}
			fmt.Fprintf(m.out, "Added %d x %s.\n", quantity, catalog.Normalize(name))
			return
		}
	}
}

func (m *Menu) updateItem() {
	name, ok := m.prompt("Product name (blank to cancel): ")
	if !ok || name == "" {
		return
	}

	for {
		quantity, ok := m.promptInt("New quantity (0 removes): ")
		if !ok {
			return
		}
		err := m.cart.UpdateQuantity(name, quantity)
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			fmt.Fprintln(m.out, "Quantity cannot be negative.")
			continue
		case errors.Is(err, cart.ErrNotInCart):
			fmt.Fprintf(m.out, "%q is not in your cart.\n", catalog.Normalize(name))
			return
		case err != nil:
			fmt.Fprintf(m.out, "Could not update item: %v\n", err)
			return
		}
		if quantity == 0 {
			fmt.Fprintf(m.out, "Removed %s from your cart.\n", catalog.Normalize(name))
		} else {
			fmt.Fprintf(m.out, "Set %s to %d.\n", catalog.Normalize(name), quantity)
		}
		return
	}
}

func (m *Menu) checkout() {
	if m.cart.IsEmpty() {
		fmt.Fprintln(m.out, "Your cart is empty, nothing to check out.")
		return
	}
	invoice := m.calc.BuildInvoice(m.cart.Items())
	m.render.Invoice(invoice)
	m.cart.Clear()
	fmt.Fprintln(m.out, "Thank you for your purchase!")
}

// confirmExit asks for confirmation when the cart still holds items.
func (m *Menu) confirmExit() bool {
	if m.cart.IsEmpty() {
		return true
	}
	answer, ok := m.prompt("Your cart is not empty. Exit anyway? (y/N): ")
	if !ok {
		return true
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// prompt prints the prompt and reads one trimmed line. ok is false when
// input is exhausted.
func (m *Menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptInt re-prompts until the input parses as an integer.
func (m *Menu) promptInt(label string) (value int, ok bool) {
	for {
		line, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a whole number.")
			continue
		}
		return value, true
	}
}
