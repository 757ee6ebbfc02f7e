package payment

import (
	"errors"
	"fmt"

	paymentRepo "triptailor/database/repository/payment"
	"triptailor/models"
	"triptailor/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Charges are card-only and in a single fixed currency.
const currency = "usd"

// ErrInvalidPrice is returned when an intent is requested for a non-positive
// amount.
var ErrInvalidPrice = errors.New("price must be positive")

// PaymentService creates Stripe charge intents and keeps the append-only
// payment ledger.
type PaymentService interface {
	// CreateIntent asks Stripe for a payment intent and returns its client
	// secret for the browser-side confirmation flow.
	CreateIntent(price float64) (clientSecret string, err error)
	// Record appends a completed payment.
	Record(p models.Payment) (*mongo.InsertOneResult, error)
	// StatusByBooking returns the payment recorded for a booking, nil when
	// none exists.
	StatusByBooking(bookingID string) (*models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo paymentRepo.PaymentRepository
}

// AmountInCents converts a price into the smallest currency unit Stripe
// expects.
func AmountInCents(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent asks Stripe for a card payment intent.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidPrice
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(AmountInCents(price)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	utils.GetLogger().Info("Payment intent created",
		zap.Int64("amount", AmountInCents(price)),
		zap.String("intent", intent.ID))
	return intent.ClientSecret, nil
}

// Record appends a completed payment.
func (s *DefaultPaymentService) Record(p models.Payment) (*mongo.InsertOneResult, error) {
	result, err := s.Repo.Create(&p)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Payment recorded",
		zap.String("bookingId", p.BookingID),
		zap.Float64("price", p.Price))
	return result, nil
}

// StatusByBooking returns the payment recorded for a booking.
func (s *DefaultPaymentService) StatusByBooking(bookingID string) (*models.Payment, error) {
	return s.Repo.ByBookingID(bookingID)
}
