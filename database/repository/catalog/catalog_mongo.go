package catalogRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository over the packages and stories
// collections.
type MongoCatalogRepo struct {
	packages *mongo.Collection
	stories  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &MongoCatalogRepo{
		packages: db.Collection("packages"),
		stories:  db.Collection("stories"),
	}
}

// CreatePackage inserts a new package document.
func (r *MongoCatalogRepo) CreatePackage(pkg *models.TourPackage) (*mongo.InsertOneResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	result, err := r.packages.InsertOne(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return result, nil
}

// Packages retrieves all packages.
func (r *MongoCatalogRepo) Packages() ([]models.TourPackage, error) {
	return r.findPackages(bson.M{}, nil)
}

// PackageByID retrieves one package by its id.
func (r *MongoCatalogRepo) PackageByID(id primitive.ObjectID) (*models.TourPackage, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	var pkg models.TourPackage
	if err := r.packages.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package %s: %w", id.Hex(), err)
	}
	return &pkg, nil
}

// PackagesByTourType retrieves packages carrying the exact tag. Matching an
// element of the tourType array is Mongo's default equality semantics.
func (r *MongoCatalogRepo) PackagesByTourType(tag string) ([]models.TourPackage, error) {
	return r.findPackages(bson.M{"tourType": tag}, nil)
}

// HighestPriced returns up to limit packages sorted by price descending.
func (r *MongoCatalogRepo) HighestPriced(limit int64) ([]models.TourPackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: -1}}).SetLimit(limit)
	return r.findPackages(bson.M{}, opts)
}

// CountPackages returns the number of package documents.
func (r *MongoCatalogRepo) CountPackages() (int64, error) {
	return count(r.packages)
}

func (r *MongoCatalogRepo) findPackages(filter bson.M, opts *options.FindOptions) ([]models.TourPackage, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.packages.Find(ctx, filter, opts)
	} else {
		cursor, err = r.packages.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.TourPackage
	for cursor.Next(ctx) {
		var p models.TourPackage
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

func count(coll *mongo.Collection) (int64, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}
	return n, nil
}
