package domain

import "time"

// Customer represents a coworking customer
type Customer struct {
	ID       int64
	Name     string
	Email    *string
	Phone    *string
	Company  *string
	VAT      *string
	Notes    *string
	IsActive bool

	// Derived counters, populated on read
	BookingCount    int
	OpenBorrowCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}
