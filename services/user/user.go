package user

import (
	"errors"
	"fmt"

	"triptailor/database/repository"
	userRepo "triptailor/database/repository/user"
	"triptailor/models"
	"triptailor/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrUnknownRole is returned when a promotion names a role outside the
// admin / tour guide pair.
var ErrUnknownRole = errors.New("unknown role")

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Upsert saves a user keyed by email.
//
// Existing record + incoming status "requested": only the status is patched
// (a guest asking to become a guide). Existing record + incoming status
// "accepted": the guide profile fields are patched and profileUpdateStatus is
// marked updated. Existing record otherwise: no write, the stored record is
// returned as-is. No record: the whole document is written with the upsert
// option, so two racing first-time saves still converge on one document.
func (s *DefaultUserService) Upsert(u models.User) (*UpsertOutcome, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if existing != nil {
		switch u.Status {
		case models.StatusRequested:
			result, err := s.Repo.SetStatus(u.Email, u.Status)
			if err != nil {
				return nil, err
			}
			logger.Info("User requested role elevation", zap.String("email", u.Email))
			return outcomeFromUpdate(result), nil
		case models.StatusAccepted:
			fields := bson.M{
				"phoneNumber":         u.PhoneNumber,
				"education":           u.Education,
				"skills":              u.Skills,
				"experience":          u.Experience,
				"profileUpdateStatus": "updated",
			}
			result, err := s.Repo.SetFields(u.Email, fields)
			if err != nil {
				return nil, err
			}
			logger.Info("Guide profile updated", zap.String("email", u.Email))
			return outcomeFromUpdate(result), nil
		default:
			return &UpsertOutcome{MatchedCount: 1, Existing: existing}, nil
		}
	}

	if u.Role == "" {
		u.Role = models.RoleGuest
	}
	if u.Status == "" {
		u.Status = models.StatusNone
	}
	result, err := s.Repo.UpsertByEmail(&u)
	if err != nil {
		return nil, err
	}
	logger.Info("User saved", zap.String("email", u.Email))
	return outcomeFromUpdate(result), nil
}

// GetByEmail returns a user, or nil when absent.
func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// Search lists users filtered by a case-insensitive name substring.
func (s *DefaultUserService) Search(name string) ([]models.User, error) {
	return s.Repo.Search(name)
}

// TourGuides lists users holding the tour guide role.
func (s *DefaultUserService) TourGuides() ([]models.User, error) {
	return s.Repo.TourGuides()
}

// Promote elevates a user to admin or tour guide. Promotion always forces
// status to accepted, regardless of the prior status.
func (s *DefaultUserService) Promote(idHex, role string) (*mongo.UpdateResult, error) {
	if role != models.RoleAdmin && role != models.RoleTourGuide {
		return nil, ErrUnknownRole
	}
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	result, err := s.Repo.Promote(id, role)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("User promoted", zap.String("id", idHex), zap.String("role", role))
	return result, nil
}

func outcomeFromUpdate(result *mongo.UpdateResult) *UpsertOutcome {
	return &UpsertOutcome{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}
}
