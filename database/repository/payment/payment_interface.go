package paymentRepo

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	// Create inserts an append-only payment record.
	Create(p *models.Payment) (*mongo.InsertOneResult, error)
	// ByBookingID retrieves the payment for a booking, or nil when absent.
	ByBookingID(bookingID string) (*models.Payment, error)
	// Count returns the number of payment documents.
	Count() (int64, error)
}
