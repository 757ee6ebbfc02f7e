package userRepo

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Search retrieves users whose name contains the given substring,
	// case-insensitively. An empty needle returns all users.
	Search(name string) ([]models.User, error)
	// TourGuides retrieves all users holding the tour guide role.
	TourGuides() ([]models.User, error)
	// SetStatus patches only the status field of the user with that email.
	SetStatus(email, status string) (*mongo.UpdateResult, error)
	// SetFields patches the given document fields on the user with that email.
	SetFields(email string, fields bson.M) (*mongo.UpdateResult, error)
	// UpsertByEmail writes the full user document keyed on email, inserting
	// when no document matches.
	UpsertByEmail(user *models.User) (*mongo.UpdateResult, error)
	// Promote sets the role and forces status to accepted.
	Promote(id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	// Count returns the number of user documents.
	Count() (int64, error)
}
