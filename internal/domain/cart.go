package domain

// CartItem is a single product entry in the session cart.
// Quantity is always positive; zero-quantity entries are removed, never stored.
type CartItem struct {
	Name     string
	Quantity int
}
