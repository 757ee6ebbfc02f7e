package bookingRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WishlistItemByKey retrieves an entry by its (email, tripTitle) natural key.
func (r *MongoBookingRepo) WishlistItemByKey(email, tripTitle string) (*models.WishlistItem, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	var item models.WishlistItem
	filter := bson.M{"email": email, "tripTitle": tripTitle}
	if err := r.wishlists.FindOne(ctx, filter).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch wishlist item for %s: %w", email, err)
	}
	return &item, nil
}

// CreateWishlistItem inserts a new wishlist entry.
func (r *MongoBookingRepo) CreateWishlistItem(item *models.WishlistItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	result, err := r.wishlists.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return result, nil
}

// WishlistByEmail retrieves a user's wishlist.
func (r *MongoBookingRepo) WishlistByEmail(email string) ([]models.WishlistItem, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := r.wishlists.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.WishlistItem
	for cursor.Next(ctx) {
		var item models.WishlistItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode wishlist item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteWishlistItem removes a wishlist entry by id.
func (r *MongoBookingRepo) DeleteWishlistItem(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	result, err := r.wishlists.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete wishlist item %s: %w", id.Hex(), err)
	}
	return result, nil
}
