package booking

import (
	"errors"
	"testing"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockBookingRepo is an in-memory BookingRepository.
type mockBookingRepo struct {
	bookings  map[primitive.ObjectID]*models.Booking
	wishlists map[primitive.ObjectID]*models.WishlistItem
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		bookings:  map[primitive.ObjectID]*models.Booking{},
		wishlists: map[primitive.ObjectID]*models.WishlistItem{},
	}
}

func (m *mockBookingRepo) CreateBooking(b *models.Booking) (*mongo.InsertOneResult, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	copied := *b
	m.bookings[b.ID] = &copied
	return &mongo.InsertOneResult{InsertedID: b.ID}, nil
}

func (m *mockBookingRepo) Bookings(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if email == "" || b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) BookingByID(id primitive.ObjectID) (*models.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (m *mockBookingRepo) BookingsByGuide(guideName string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.SelectedTourGuide == guideName {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) SetBookingStatus(id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	b, ok := m.bookings[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	b.Status = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockBookingRepo) DeleteBooking(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := m.bookings[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(m.bookings, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (m *mockBookingRepo) CountBookings() (int64, error) {
	return int64(len(m.bookings)), nil
}

func (m *mockBookingRepo) WishlistItemByKey(email, tripTitle string) (*models.WishlistItem, error) {
	for _, item := range m.wishlists {
		if item.Email == email && item.TripTitle == tripTitle {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) CreateWishlistItem(item *models.WishlistItem) (*mongo.InsertOneResult, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	copied := *item
	m.wishlists[item.ID] = &copied
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (m *mockBookingRepo) WishlistByEmail(email string) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	for _, item := range m.wishlists {
		if email == "" || item.Email == email {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) DeleteWishlistItem(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := m.wishlists[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(m.wishlists, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	repo := newMockBookingRepo()
	svc := &DefaultBookingService{Repo: repo, AllowStatusOverride: true}

	result, err := svc.Create(models.Booking{Email: "a@x.com", SelectedTourGuide: "G"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	if repo.bookings[id].Status != models.BookingPending {
		t.Errorf("expected pending status, got %q", repo.bookings[id].Status)
	}
}

func TestAcceptThenRejectOverwrites(t *testing.T) {
	repo := newMockBookingRepo()
	svc := &DefaultBookingService{Repo: repo, AllowStatusOverride: true}

	result, err := svc.Create(models.Booking{Email: "a@x.com", SelectedTourGuide: "G"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	idHex := result.InsertedID.(primitive.ObjectID).Hex()

	if _, err := svc.SetStatus(idHex, models.BookingAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	b, err := svc.ByID(idHex)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if b.Status != models.BookingAccepted {
		t.Errorf("expected Accepted, got %q", b.Status)
	}

	// With overrides on, a second transition on a terminal booking silently
	// overwrites the status.
	if _, err := svc.SetStatus(idHex, models.BookingRejected); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	b, _ = svc.ByID(idHex)
	if b.Status != models.BookingRejected {
		t.Errorf("expected Rejected, got %q", b.Status)
	}
}

func TestTerminalTransitionBlockedWithoutOverride(t *testing.T) {
	repo := newMockBookingRepo()
	svc := &DefaultBookingService{Repo: repo, AllowStatusOverride: false}

	result, err := svc.Create(models.Booking{Email: "a@x.com", SelectedTourGuide: "G"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	idHex := result.InsertedID.(primitive.ObjectID).Hex()

	if _, err := svc.SetStatus(idHex, models.BookingAccepted); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}
	if _, err := svc.SetStatus(idHex, models.BookingRejected); !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}

	b, _ := svc.ByID(idHex)
	if b.Status != models.BookingAccepted {
		t.Errorf("expected status preserved as Accepted, got %q", b.Status)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: newMockBookingRepo(), AllowStatusOverride: true}
	if _, err := svc.SetStatus(primitive.NewObjectID().Hex(), "Maybe"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestSetStatusRejectsMalformedID(t *testing.T) {
	svc := &DefaultBookingService{Repo: newMockBookingRepo(), AllowStatusOverride: true}
	if _, err := svc.SetStatus("zz", models.BookingAccepted); !errors.Is(err, repository.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestCancelRemovesBooking(t *testing.T) {
	repo := newMockBookingRepo()
	svc := &DefaultBookingService{Repo: repo, AllowStatusOverride: true}

	result, _ := svc.Create(models.Booking{Email: "a@x.com", SelectedTourGuide: "G"})
	idHex := result.InsertedID.(primitive.ObjectID).Hex()

	deleted, err := svc.Cancel(idHex)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if deleted.DeletedCount != 1 {
		t.Errorf("expected one deleted document, got %d", deleted.DeletedCount)
	}
	if len(repo.bookings) != 0 {
		t.Error("expected booking removed")
	}
}

func TestAddToWishlistIsIdempotentOnNaturalKey(t *testing.T) {
	repo := newMockBookingRepo()
	svc := &DefaultBookingService{Repo: repo, AllowStatusOverride: true}

	item := models.WishlistItem{Email: "a@x.com", TripTitle: "Sundarbans"}

	result, duplicate, err := svc.AddToWishlist(item)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if duplicate || result == nil {
		t.Fatal("expected first add to insert")
	}

	result, duplicate, err = svc.AddToWishlist(item)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if !duplicate || result != nil {
		t.Fatal("expected second add to report a duplicate without inserting")
	}
	if len(repo.wishlists) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(repo.wishlists))
	}

	// Same title for another user is a different natural key.
	_, duplicate, err = svc.AddToWishlist(models.WishlistItem{Email: "b@x.com", TripTitle: "Sundarbans"})
	if err != nil {
		t.Fatalf("third add failed: %v", err)
	}
	if duplicate {
		t.Error("expected a different email to insert")
	}
	if len(repo.wishlists) != 2 {
		t.Errorf("expected two entries, got %d", len(repo.wishlists))
	}
}
