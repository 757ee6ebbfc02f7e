package engagementRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEngagementRepo implements EngagementRepository over the comments and
// newsletters collections.
type MongoEngagementRepo struct {
	comments    *mongo.Collection
	newsletters *mongo.Collection
}

// NewMongoEngagementRepo creates a new instance of EngagementRepository using MongoDB.
func NewMongoEngagementRepo(db *mongo.Database) EngagementRepository {
	return &MongoEngagementRepo{
		comments:    db.Collection("comments"),
		newsletters: db.Collection("newsletters"),
	}
}

// CreateComment inserts a new comment document.
func (r *MongoEngagementRepo) CreateComment(c *models.Comment) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	result, err := r.comments.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return result, nil
}

// Comments retrieves all comments.
func (r *MongoEngagementRepo) Comments() ([]models.Comment, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	cursor, err := r.comments.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	for cursor.Next(ctx) {
		var c models.Comment
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Subscribe inserts a newsletter subscription.
func (r *MongoEngagementRepo) Subscribe(sub *models.NewsletterSubscription) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now()
	}
	result, err := r.newsletters.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter subscription: %w", err)
	}
	return result, nil
}
