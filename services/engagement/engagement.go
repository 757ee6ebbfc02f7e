package engagement

import (
	"errors"

	engagementRepo "triptailor/database/repository/engagement"
	"triptailor/models"
	"triptailor/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrMissingEmail is returned when a newsletter signup arrives without one.
var ErrMissingEmail = errors.New("email is required")

// EngagementService handles the append-only comment and newsletter records.
type EngagementService interface {
	CreateComment(c models.Comment) (*mongo.InsertOneResult, error)
	Comments() ([]models.Comment, error)
	Subscribe(email string) (*mongo.InsertOneResult, error)
}

// DefaultEngagementService implements EngagementService.
type DefaultEngagementService struct {
	Repo engagementRepo.EngagementRepository
}

// CreateComment appends a visitor comment.
func (s *DefaultEngagementService) CreateComment(c models.Comment) (*mongo.InsertOneResult, error) {
	return s.Repo.CreateComment(&c)
}

// Comments lists all comments.
func (s *DefaultEngagementService) Comments() ([]models.Comment, error) {
	return s.Repo.Comments()
}

// Subscribe appends a newsletter subscription.
func (s *DefaultEngagementService) Subscribe(email string) (*mongo.InsertOneResult, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	result, err := s.Repo.Subscribe(&models.NewsletterSubscription{Email: email})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Newsletter subscription", zap.String("email", email))
	return result, nil
}
