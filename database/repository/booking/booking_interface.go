package bookingRepo

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for bookings and wishlist entries.
// Both collections belong to the trip-planning side of the store, so one
// repository owns them.
type BookingRepository interface {
	// CreateBooking inserts a new booking document.
	CreateBooking(b *models.Booking) (*mongo.InsertOneResult, error)
	// Bookings retrieves all bookings, optionally filtered by requester email.
	Bookings(email string) ([]models.Booking, error)
	// BookingByID retrieves one booking, or nil when absent.
	BookingByID(id primitive.ObjectID) (*models.Booking, error)
	// BookingsByGuide retrieves bookings assigned to the named tour guide.
	BookingsByGuide(guideName string) ([]models.Booking, error)
	// SetBookingStatus patches the status field of one booking.
	SetBookingStatus(id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	// DeleteBooking removes a booking by id.
	DeleteBooking(id primitive.ObjectID) (*mongo.DeleteResult, error)
	// CountBookings returns the number of booking documents.
	CountBookings() (int64, error)

	// WishlistItemByKey retrieves an entry by its (email, tripTitle) natural
	// key, or nil when absent.
	WishlistItemByKey(email, tripTitle string) (*models.WishlistItem, error)
	// CreateWishlistItem inserts a new wishlist entry.
	CreateWishlistItem(item *models.WishlistItem) (*mongo.InsertOneResult, error)
	// WishlistByEmail retrieves a user's wishlist.
	WishlistByEmail(email string) ([]models.WishlistItem, error)
	// DeleteWishlistItem removes a wishlist entry by id.
	DeleteWishlistItem(id primitive.ObjectID) (*mongo.DeleteResult, error)
}
