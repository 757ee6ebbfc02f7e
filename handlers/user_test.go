package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"triptailor/database/repository"
	"triptailor/models"
	"triptailor/services/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockUserService returns canned directory responses.
type mockUserService struct {
	upsertOutcome *user.UpsertOutcome
	user          *models.User
	promoted      []string
}

func (m *mockUserService) Upsert(u models.User) (*user.UpsertOutcome, error) {
	return m.upsertOutcome, nil
}

func (m *mockUserService) GetByEmail(email string) (*models.User, error) {
	return m.user, nil
}

func (m *mockUserService) Search(name string) ([]models.User, error) {
	if m.user == nil {
		return nil, nil
	}
	return []models.User{*m.user}, nil
}

func (m *mockUserService) TourGuides() ([]models.User, error) {
	return nil, nil
}

func (m *mockUserService) Promote(idHex, role string) (*mongo.UpdateResult, error) {
	if _, err := repository.ParseID(idHex); err != nil {
		return nil, err
	}
	m.promoted = append(m.promoted, idHex+":"+role)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestSaveUserHandlerRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&mockUserService{})
	r := gin.New()
	r.PUT("/users", h.SaveUserHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSaveUserHandlerEchoesExistingRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	existing := &models.User{Email: "a@x.com", Name: "A", Role: models.RoleGuest}
	h := NewUserHandler(&mockUserService{
		upsertOutcome: &user.UpsertOutcome{MatchedCount: 1, Existing: existing},
	})
	r := gin.New()
	r.PUT("/users", h.SaveUserHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"name":"A"`) {
		t.Errorf("expected the existing record in the body, got %s", w.Body.String())
	}
}

func TestGetUserHandlerMissSerializesNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&mockUserService{user: nil})
	r := gin.New()
	r.GET("/user/:email", h.GetUserHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/ghost@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Errorf("expected null body for a miss, got %s", w.Body.String())
	}
}

func TestPromoteHandlerRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&mockUserService{})
	r := gin.New()
	r.PATCH("/users/admin/:id", h.MakeAdminHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-hex", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
