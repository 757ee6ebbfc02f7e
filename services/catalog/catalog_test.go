package catalog

import (
	"errors"
	"sort"
	"testing"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockCatalogRepo is an in-memory CatalogRepository.
type mockCatalogRepo struct {
	packages []models.TourPackage
	stories  []models.Story
}

func (m *mockCatalogRepo) CreatePackage(pkg *models.TourPackage) (*mongo.InsertOneResult, error) {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	m.packages = append(m.packages, *pkg)
	return &mongo.InsertOneResult{InsertedID: pkg.ID}, nil
}

func (m *mockCatalogRepo) Packages() ([]models.TourPackage, error) {
	return m.packages, nil
}

func (m *mockCatalogRepo) PackageByID(id primitive.ObjectID) (*models.TourPackage, error) {
	for _, p := range m.packages {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepo) PackagesByTourType(tag string) ([]models.TourPackage, error) {
	var out []models.TourPackage
	for _, p := range m.packages {
		for _, t := range p.TourType {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) HighestPriced(limit int64) ([]models.TourPackage, error) {
	sorted := append([]models.TourPackage(nil), m.packages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *mockCatalogRepo) CountPackages() (int64, error) {
	return int64(len(m.packages)), nil
}

func (m *mockCatalogRepo) CreateStory(story *models.Story) (*mongo.InsertOneResult, error) {
	if story.ID.IsZero() {
		story.ID = primitive.NewObjectID()
	}
	m.stories = append(m.stories, *story)
	return &mongo.InsertOneResult{InsertedID: story.ID}, nil
}

func (m *mockCatalogRepo) Stories() ([]models.Story, error) {
	return m.stories, nil
}

func (m *mockCatalogRepo) LimitedStories(limit int64) ([]models.Story, error) {
	if int64(len(m.stories)) > limit {
		return m.stories[:limit], nil
	}
	return m.stories, nil
}

func (m *mockCatalogRepo) FeaturedStories() ([]models.Story, error) {
	var out []models.Story
	for _, s := range m.stories {
		if s.Rating == 5 {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) CountStories() (int64, error) {
	return int64(len(m.stories)), nil
}

func TestTourTypesFlattensAndDeduplicates(t *testing.T) {
	repo := &mockCatalogRepo{packages: []models.TourPackage{
		{TripTitle: "A", TourType: []string{"hiking", "beach"}},
		{TripTitle: "B", TourType: []string{"beach", "wildlife"}},
		{TripTitle: "C", TourType: []string{"hiking"}},
	}}
	svc := &DefaultCatalogService{Repo: repo}

	types, err := svc.TourTypes()
	if err != nil {
		t.Fatalf("TourTypes failed: %v", err)
	}

	seen := map[string]int{}
	for _, tag := range types {
		seen[tag]++
	}
	for tag, n := range seen {
		if n > 1 {
			t.Errorf("tag %q appears %d times, expected a set", tag, n)
		}
	}
	for _, want := range []string{"hiking", "beach", "wildlife"} {
		if seen[want] != 1 {
			t.Errorf("expected tag %q in the set, got %v", want, types)
		}
	}
	if len(types) != 3 {
		t.Errorf("expected 3 distinct tags, got %d", len(types))
	}
}

func TestHighestPricePackagesReturnsTopThreeDescending(t *testing.T) {
	repo := &mockCatalogRepo{packages: []models.TourPackage{
		{TripTitle: "cheap", Price: 100},
		{TripTitle: "mid", Price: 300},
		{TripTitle: "high", Price: 700},
		{TripTitle: "top", Price: 900},
		{TripTitle: "low", Price: 150},
	}}
	svc := &DefaultCatalogService{Repo: repo}

	pkgs, err := svc.HighestPricePackages()
	if err != nil {
		t.Fatalf("HighestPricePackages failed: %v", err)
	}
	if len(pkgs) != 3 {
		t.Fatalf("expected at most 3 packages, got %d", len(pkgs))
	}
	for i := 1; i < len(pkgs); i++ {
		if pkgs[i].Price > pkgs[i-1].Price {
			t.Errorf("expected descending prices, got %v then %v", pkgs[i-1].Price, pkgs[i].Price)
		}
	}
	if pkgs[0].TripTitle != "top" {
		t.Errorf("expected the most expensive package first, got %q", pkgs[0].TripTitle)
	}
}

func TestCreatePackageRequiresTitle(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &mockCatalogRepo{}}
	if _, err := svc.CreatePackage(models.TourPackage{Price: 10}); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
}

func TestPackageByIDRejectsMalformedID(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &mockCatalogRepo{}}
	if _, err := svc.PackageByID("nope"); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
