package user

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertOutcome reports which branch the user save took. Existing is set only
// on the no-op branch, where the stored record is echoed back unchanged.
type UpsertOutcome struct {
	MatchedCount  int64        `json:"matchedCount"`
	ModifiedCount int64        `json:"modifiedCount"`
	UpsertedID    any          `json:"upsertedId,omitempty"`
	Existing      *models.User `json:"-"`
}

// UserService is the user directory: identity by email, role, and the
// role-elevation status lifecycle.
type UserService interface {
	// Upsert saves a user per the directory rules (see DefaultUserService.Upsert).
	Upsert(u models.User) (*UpsertOutcome, error)
	// GetByEmail returns a user, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Search lists users filtered by a case-insensitive name substring.
	Search(name string) ([]models.User, error)
	// TourGuides lists users holding the tour guide role.
	TourGuides() ([]models.User, error)
	// Promote elevates the user with the given hex id to the role and forces
	// status to accepted.
	Promote(idHex, role string) (*mongo.UpdateResult, error)
}
