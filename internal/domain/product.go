package domain

import "time"

// ProductCategory represents a POS catalog section (restaurant, bar, ...)
type ProductCategory struct {
	ID        int64
	Name      string
	SortOrder int
}

// Product represents a sellable catalog item
// Read-only from the POS core's perspective
type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Price       float64
	Description *string
	Active      bool

	CreatedAt time.Time
}
