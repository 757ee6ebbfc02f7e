package booking

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingService owns the booking lifecycle and the wishlist.
type BookingService interface {
	// Create inserts a booking; status defaults to pending when unset.
	Create(b models.Booking) (*mongo.InsertOneResult, error)
	// List returns bookings, optionally filtered by requester email.
	List(email string) ([]models.Booking, error)
	// ByID returns one booking by hex id, nil when absent.
	ByID(idHex string) (*models.Booking, error)
	// ByGuide returns bookings assigned to the named tour guide.
	ByGuide(guideName string) ([]models.Booking, error)
	// SetStatus moves a booking to Accepted or Rejected.
	SetStatus(idHex, status string) (*mongo.UpdateResult, error)
	// Cancel deletes a booking by hex id.
	Cancel(idHex string) (*mongo.DeleteResult, error)

	// AddToWishlist inserts an entry unless its (email, tripTitle) pair
	// already exists; duplicate reports which case occurred.
	AddToWishlist(item models.WishlistItem) (result *mongo.InsertOneResult, duplicate bool, err error)
	// Wishlist returns entries, optionally filtered by email.
	Wishlist(email string) ([]models.WishlistItem, error)
	// RemoveFromWishlist deletes an entry by hex id.
	RemoveFromWishlist(idHex string) (*mongo.DeleteResult, error)
}
