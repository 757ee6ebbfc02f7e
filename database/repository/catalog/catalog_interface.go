package catalogRepo

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository defines data access for tour packages and stories.
type CatalogRepository interface {
	// CreatePackage inserts a new package document.
	CreatePackage(pkg *models.TourPackage) (*mongo.InsertOneResult, error)
	// Packages retrieves all packages.
	Packages() ([]models.TourPackage, error)
	// PackageByID retrieves one package, or nil when absent.
	PackageByID(id primitive.ObjectID) (*models.TourPackage, error)
	// PackagesByTourType retrieves packages carrying the exact tag.
	PackagesByTourType(tag string) ([]models.TourPackage, error)
	// HighestPriced returns up to limit packages sorted by price descending.
	HighestPriced(limit int64) ([]models.TourPackage, error)
	// CountPackages returns the number of package documents.
	CountPackages() (int64, error)

	// CreateStory inserts a new story document.
	CreateStory(story *models.Story) (*mongo.InsertOneResult, error)
	// Stories retrieves all stories.
	Stories() ([]models.Story, error)
	// LimitedStories retrieves the first limit stories.
	LimitedStories(limit int64) ([]models.Story, error)
	// FeaturedStories retrieves stories with a five-star rating.
	FeaturedStories() ([]models.Story, error)
	// CountStories returns the number of story documents.
	CountStories() (int64, error)
}
