package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"triptailor/config"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", TokenAuthMiddleware(), func(c *gin.Context) {
		claims, _ := c.Get(ContextClaims)
		email := c.GetString(ContextUserEmail)
		c.JSON(http.StatusOK, gin.H{"email": email, "hasClaims": claims != nil})
	})
	return r
}

func TestGateRejectsMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "gate-secret"
	r := gatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unauthorized access") {
		t.Errorf("expected fixed unauthorized body, got %s", w.Body.String())
	}
}

func TestGateRejectsInvalidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "gate-secret"
	r := gatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	config.AppConfig.JWTSecret = "gate-secret"
	r := gatedRouter()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("gate-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGateAttachesClaims(t *testing.T) {
	config.AppConfig.JWTSecret = "gate-secret"
	r := gatedRouter()

	token, err := utils.IssueToken(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"email":"a@x.com"`) {
		t.Errorf("expected claims email in response, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"hasClaims":true`) {
		t.Errorf("expected claims to be attached, got %s", w.Body.String())
	}
}
