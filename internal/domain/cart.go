package domain

import "math"

// CartItem represents one cart line with the product name and unit price
// denormalized at add time
type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// CartTotals represents cart totals computed at a point in time
type CartTotals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Cart is an ordered (by first insertion) set of POS cart lines
// Owned exclusively by one terminal session, never persisted
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{items: make([]CartItem, 0)}
}

// AddProduct adds one unit of the product to the cart
// An existing line is incremented, a new product starts a new line at the end
func (c *Cart) AddProduct(product *Product) {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
}

// UpdateQuantity adds delta to the line's quantity
// A resulting quantity <= 0 removes the line entirely
// Returns false if the product is not in the cart
func (c *Cart) UpdateQuantity(productID int64, delta int) bool {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return true
		}
	}
	return false
}

// RemoveItem removes the line regardless of quantity
// Returns false if the product is not in the cart
func (c *Cart) RemoveItem(productID int64) bool {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Totals computes subtotal, tax and total at the given tax rate
// Always computed from the current lines, never cached
func (c *Cart) Totals(taxRate float64) CartTotals {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * taxRate)
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}
}

// roundCents rounds a money amount to whole cents
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
