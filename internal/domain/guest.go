package domain

import (
	"strings"
	"time"
)

// Guest represents a hotel guest
// One guest may have many bookings over time
type Guest struct {
	ID        int64
	FirstName string
	LastName  string
	Email     *string
	Phone     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the guest's display name ("First Last")
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}
