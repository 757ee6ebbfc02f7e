package stats

import (
	"fmt"

	bookingRepo "triptailor/database/repository/booking"
	catalogRepo "triptailor/database/repository/catalog"
	paymentRepo "triptailor/database/repository/payment"
	userRepo "triptailor/database/repository/user"
)

// Totals is the per-collection document count snapshot served by /total.
type Totals struct {
	Users    int64 `json:"users"`
	Packages int64 `json:"packages"`
	Stories  int64 `json:"stories"`
	Bookings int64 `json:"bookings"`
	Payments int64 `json:"payments"`
}

// StatsService aggregates counts across the collections.
type StatsService interface {
	Totals() (*Totals, error)
}

// DefaultStatsService implements StatsService by fanning count queries across
// the repositories.
type DefaultStatsService struct {
	Users    userRepo.UserRepository
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}

// Totals counts documents in every collection.
func (s *DefaultStatsService) Totals() (*Totals, error) {
	var t Totals
	var err error

	if t.Users, err = s.Users.Count(); err != nil {
		return nil, fmt.Errorf("failed to total users: %w", err)
	}
	if t.Packages, err = s.Catalog.CountPackages(); err != nil {
		return nil, fmt.Errorf("failed to total packages: %w", err)
	}
	if t.Stories, err = s.Catalog.CountStories(); err != nil {
		return nil, fmt.Errorf("failed to total stories: %w", err)
	}
	if t.Bookings, err = s.Bookings.CountBookings(); err != nil {
		return nil, fmt.Errorf("failed to total bookings: %w", err)
	}
	if t.Payments, err = s.Payments.Count(); err != nil {
		return nil, fmt.Errorf("failed to total payments: %w", err)
	}
	return &t, nil
}
