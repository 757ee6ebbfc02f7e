package paymentRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

// Create inserts an append-only payment record.
func (r *MongoPaymentRepo) Create(p *models.Payment) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	result, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}
	return result, nil
}

// ByBookingID retrieves the payment for a booking.
func (r *MongoPaymentRepo) ByBookingID(bookingID string) (*models.Payment, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	var p models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for booking %s: %w", bookingID, err)
	}
	return &p, nil
}

// Count returns the number of payment documents.
func (r *MongoPaymentRepo) Count() (int64, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return n, nil
}
