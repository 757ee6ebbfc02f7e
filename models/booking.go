package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. The capitalization of the terminal states is part of the
// wire contract consumed by the frontend.
const (
	BookingPending  = "pending"
	BookingAccepted = "Accepted"
	BookingRejected = "Rejected"
)

// Booking is a tourist's request for a guided trip. Status starts at pending
// and is moved to Accepted or Rejected by the selected guide.
type Booking struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email             string             `bson:"email" json:"email"`
	TouristName       string             `bson:"touristName,omitempty" json:"touristName,omitempty"`
	TripTitle         string             `bson:"tripTitle,omitempty" json:"tripTitle,omitempty"`
	SelectedTourGuide string             `bson:"selectedTourGuide" json:"selectedTourGuide"`
	TourDate          string             `bson:"tourDate,omitempty" json:"tourDate,omitempty"`
	Price             float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// WishlistItem marks a trip a user wants to come back to. Identity is the
// (email, tripTitle) pair; duplicates are rejected at insert time.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	TripTitle string             `bson:"tripTitle" json:"tripTitle"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
