package booking

import (
	"errors"
	"fmt"

	"triptailor/database/repository"
	bookingRepo "triptailor/database/repository/booking"
	"triptailor/models"
	"triptailor/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrUnknownStatus marks a transition to a status outside the
	// Accepted / Rejected pair.
	ErrUnknownStatus = errors.New("unknown booking status")
	// ErrTerminalStatus marks a transition attempted on a booking that has
	// already been accepted or rejected, when overrides are disabled.
	ErrTerminalStatus = errors.New("booking already in a terminal state")
	// ErrBookingNotFound marks a transition on a booking id with no document.
	ErrBookingNotFound = errors.New("booking not found")
)

// DefaultBookingService implements BookingService.
//
// AllowStatusOverride keeps the historical behavior where re-accepting or
// re-rejecting a booking that is already terminal silently overwrites the
// status. With it disabled, such transitions fail with ErrTerminalStatus.
type DefaultBookingService struct {
	Repo                bookingRepo.BookingRepository
	AllowStatusOverride bool
}

// Create inserts a booking. Status defaults to pending when the caller
// leaves it unset.
func (s *DefaultBookingService) Create(b models.Booking) (*mongo.InsertOneResult, error) {
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	result, err := s.Repo.CreateBooking(&b)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking created",
		zap.String("email", b.Email),
		zap.String("guide", b.SelectedTourGuide))
	return result, nil
}

// List returns bookings, optionally filtered by requester email.
func (s *DefaultBookingService) List(email string) ([]models.Booking, error) {
	return s.Repo.Bookings(email)
}

// ByID returns one booking by hex id.
func (s *DefaultBookingService) ByID(idHex string) (*models.Booking, error) {
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.BookingByID(id)
}

// ByGuide returns bookings assigned to the named tour guide.
func (s *DefaultBookingService) ByGuide(guideName string) ([]models.Booking, error) {
	return s.Repo.BookingsByGuide(guideName)
}

// SetStatus moves a booking to Accepted or Rejected.
func (s *DefaultBookingService) SetStatus(idHex, status string) (*mongo.UpdateResult, error) {
	if status != models.BookingAccepted && status != models.BookingRejected {
		return nil, ErrUnknownStatus
	}
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}

	if !s.AllowStatusOverride {
		existing, err := s.Repo.BookingByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrBookingNotFound
		}
		if existing.Status == models.BookingAccepted || existing.Status == models.BookingRejected {
			return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, existing.Status)
		}
	}

	result, err := s.Repo.SetBookingStatus(id, status)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking status updated",
		zap.String("id", idHex),
		zap.String("status", status))
	return result, nil
}

// Cancel deletes a booking by hex id.
func (s *DefaultBookingService) Cancel(idHex string) (*mongo.DeleteResult, error) {
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.DeleteBooking(id)
}
