package catalog

import (
	"triptailor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService exposes the read-heavy package and story surface.
type CatalogService interface {
	CreatePackage(pkg models.TourPackage) (*mongo.InsertOneResult, error)
	Packages() ([]models.TourPackage, error)
	// PackageByID returns a package by hex id, nil when absent.
	PackageByID(idHex string) (*models.TourPackage, error)
	PackagesByTourType(tag string) ([]models.TourPackage, error)
	// TourTypes returns the deduplicated set of tags across all packages.
	TourTypes() ([]string, error)
	// HighestPricePackages returns the top three packages by price descending.
	HighestPricePackages() ([]models.TourPackage, error)

	CreateStory(story models.Story) (*mongo.InsertOneResult, error)
	Stories() ([]models.Story, error)
	LimitedStories() ([]models.Story, error)
	FeaturedStories() ([]models.Story, error)
}
