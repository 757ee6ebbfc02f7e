package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TourPackage is a bookable trip offering. Packages are immutable once
// created; there is no update surface.
type TourPackage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TripTitle string             `bson:"tripTitle" json:"tripTitle"`
	TourType  []string           `bson:"tourType" json:"tourType"`
	Price     float64            `bson:"price" json:"price"`
	Duration  string             `bson:"duration,omitempty" json:"duration,omitempty"`
	About     string             `bson:"about,omitempty" json:"about,omitempty"`
	Images    []string           `bson:"images,omitempty" json:"images,omitempty"`
	TourPlan  []string           `bson:"tourPlan,omitempty" json:"tourPlan,omitempty"`
}

// Story is a traveler-written narrative. Created once, never updated.
type Story struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Story       string             `bson:"story" json:"story"`
	AuthorName  string             `bson:"authorName,omitempty" json:"authorName,omitempty"`
	AuthorEmail string             `bson:"authorEmail,omitempty" json:"authorEmail,omitempty"`
	AuthorPhoto string             `bson:"authorPhoto,omitempty" json:"authorPhoto,omitempty"`
	Rating      float64            `bson:"rating" json:"rating"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}
