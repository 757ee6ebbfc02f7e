package catalog

import (
	"errors"

	"triptailor/database/repository"
	catalogRepo "triptailor/database/repository/catalog"
	"triptailor/models"
	"triptailor/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	highestPriceLimit = 3
	limitedStoryCount = 4
)

// ErrMissingTitle is returned when a package or story arrives without a title.
var ErrMissingTitle = errors.New("title is required")

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// CreatePackage inserts a new package. Packages are immutable afterwards.
func (s *DefaultCatalogService) CreatePackage(pkg models.TourPackage) (*mongo.InsertOneResult, error) {
	if pkg.TripTitle == "" {
		return nil, ErrMissingTitle
	}
	result, err := s.Repo.CreatePackage(&pkg)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Package created", zap.String("tripTitle", pkg.TripTitle))
	return result, nil
}

// Packages lists all packages.
func (s *DefaultCatalogService) Packages() ([]models.TourPackage, error) {
	return s.Repo.Packages()
}

// PackageByID returns one package by hex id.
func (s *DefaultCatalogService) PackageByID(idHex string) (*models.TourPackage, error) {
	id, err := repository.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.PackageByID(id)
}

// PackagesByTourType lists packages carrying the exact tag.
func (s *DefaultCatalogService) PackagesByTourType(tag string) ([]models.TourPackage, error) {
	return s.Repo.PackagesByTourType(tag)
}

// TourTypes flattens every package's tag list into a deduplicated set,
// keeping first-seen order.
func (s *DefaultCatalogService) TourTypes() ([]string, error) {
	pkgs, err := s.Repo.Packages()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	types := []string{}
	for _, p := range pkgs {
		for _, tag := range p.TourType {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			types = append(types, tag)
		}
	}
	return types, nil
}

// HighestPricePackages returns the top three packages by price descending.
func (s *DefaultCatalogService) HighestPricePackages() ([]models.TourPackage, error) {
	return s.Repo.HighestPriced(highestPriceLimit)
}

// CreateStory inserts a new story.
func (s *DefaultCatalogService) CreateStory(story models.Story) (*mongo.InsertOneResult, error) {
	if story.Title == "" {
		return nil, ErrMissingTitle
	}
	result, err := s.Repo.CreateStory(&story)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Story created", zap.String("title", story.Title))
	return result, nil
}

// Stories lists all stories.
func (s *DefaultCatalogService) Stories() ([]models.Story, error) {
	return s.Repo.Stories()
}

// LimitedStories lists the first four stories for the landing page.
func (s *DefaultCatalogService) LimitedStories() ([]models.Story, error) {
	return s.Repo.LimitedStories(limitedStoryCount)
}

// FeaturedStories lists five-star stories.
func (s *DefaultCatalogService) FeaturedStories() ([]models.Story, error) {
	return s.Repo.FeaturedStories()
}
