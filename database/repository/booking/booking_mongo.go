package bookingRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository over the bookings and
// wishlists collections.
type MongoBookingRepo struct {
	bookings  *mongo.Collection
	wishlists *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{
		bookings:  db.Collection("bookings"),
		wishlists: db.Collection("wishlists"),
	}
}

// CreateBooking inserts a new booking document.
func (r *MongoBookingRepo) CreateBooking(b *models.Booking) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	result, err := r.bookings.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return result, nil
}

// Bookings retrieves all bookings, optionally filtered by requester email.
func (r *MongoBookingRepo) Bookings(email string) ([]models.Booking, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	return r.findBookings(filter)
}

// BookingByID retrieves one booking by its id.
func (r *MongoBookingRepo) BookingByID(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id.Hex(), err)
	}
	return &b, nil
}

// BookingsByGuide retrieves bookings assigned to the named tour guide.
func (r *MongoBookingRepo) BookingsByGuide(guideName string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"selectedTourGuide": guideName})
}

// SetBookingStatus patches the status field of one booking.
func (r *MongoBookingRepo) SetBookingStatus(id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	result, err := r.bookings.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id.Hex(), err)
	}
	return result, nil
}

// DeleteBooking removes a booking by id.
func (r *MongoBookingRepo) DeleteBooking(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	result, err := r.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking %s: %w", id.Hex(), err)
	}
	return result, nil
}

// CountBookings returns the number of booking documents.
func (r *MongoBookingRepo) CountBookings() (int64, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	n, err := r.bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

func (r *MongoBookingRepo) findBookings(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	cursor, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
