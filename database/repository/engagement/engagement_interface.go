package engagementRepo

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EngagementRepository defines data access for the append-only comment and
// newsletter collections.
type EngagementRepository interface {
	// CreateComment inserts a new comment document.
	CreateComment(c *models.Comment) (*mongo.InsertOneResult, error)
	// Comments retrieves all comments.
	Comments() ([]models.Comment, error)
	// Subscribe inserts a newsletter subscription.
	Subscribe(sub *models.NewsletterSubscription) (*mongo.InsertOneResult, error)
}
