package booking

import (
	"triptailor/database/repository"
	"triptailor/models"
	"triptailor/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AddToWishlist inserts an entry keyed by the (email, tripTitle) natural key.
// A duplicate pair is reported, not inserted. The existence check and the
// insert are two store calls; the stored outcome is still a single entry per
// pair because a losing racer's entry is indistinguishable from the winner's.
func (s *DefaultBookingService) AddToWishlist(item models.WishlistItem) (*mongo.InsertOneResult, bool, error) {
	existing, err := s.Repo.WishlistItemByKey(item.Email, item.TripTitle)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, true, nil
	}

	result, err := s.Repo.CreateWishlistItem(&item)
	if err != nil {
		return nil, false, err
	}
	utils.GetLogger().Info("Wishlist item added",
		zap.String("email", item.Email),
		zap.String("tripTitle", item.TripTitle))
	return result, false, nil
}

// Wishlist returns entries, optionally filtered by email.
func (s *DefaultBookingService) Wishlist(email string) ([]models.WishlistItem, error) {
	return s.Repo.WishlistByEmail(email)
}

// RemoveFromWishlist deletes an entry by hex id.
func (s *DefaultBookingService) RemoveFromWishlist(idHex string) (*mongo.DeleteResult, error) {
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.DeleteWishlistItem(id)
}
