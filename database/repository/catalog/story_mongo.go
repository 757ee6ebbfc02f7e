package catalogRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStory inserts a new story document.
func (r *MongoCatalogRepo) CreateStory(story *models.Story) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	result, err := r.stories.InsertOne(ctx, story)
	if err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	return result, nil
}

// Stories retrieves all stories.
func (r *MongoCatalogRepo) Stories() ([]models.Story, error) {
	return r.findStories(bson.M{}, nil)
}

// LimitedStories retrieves the first limit stories.
func (r *MongoCatalogRepo) LimitedStories(limit int64) ([]models.Story, error) {
	return r.findStories(bson.M{}, options.Find().SetLimit(limit))
}

// FeaturedStories retrieves stories with a five-star rating.
func (r *MongoCatalogRepo) FeaturedStories() ([]models.Story, error) {
	return r.findStories(bson.M{"rating": 5}, nil)
}

// CountStories returns the number of story documents.
func (r *MongoCatalogRepo) CountStories() (int64, error) {
	return count(r.stories)
}

func (r *MongoCatalogRepo) findStories(filter bson.M, opts *options.FindOptions) ([]models.Story, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.stories.Find(ctx, filter, opts)
	} else {
		cursor, err = r.stories.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []models.Story
	for cursor.Next(ctx) {
		var s models.Story
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode story: %w", err)
		}
		stories = append(stories, s)
	}
	return stories, nil
}
