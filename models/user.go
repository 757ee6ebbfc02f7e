package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleGuest     = "guest"
	RoleTourGuide = "tour guide"
	RoleAdmin     = "admin"
)

// Role-elevation statuses. A guest asks to become a guide by moving to
// StatusRequested; an admin promotion forces StatusAccepted.
const (
	StatusNone      = "none"
	StatusRequested = "requested"
	StatusAccepted  = "accepted"
)

// User represents a platform user, identified by email.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name" json:"name"`
	Photo  string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role   string             `bson:"role" json:"role"`
	Status string             `bson:"status" json:"status"`

	// Tour guide profile fields, filled in once the request is accepted.
	PhoneNumber         string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Education           string `bson:"education,omitempty" json:"education,omitempty"`
	Skills              string `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience          string `bson:"experience,omitempty" json:"experience,omitempty"`
	ProfileUpdateStatus string `bson:"profileUpdateStatus,omitempty" json:"profileUpdateStatus,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
