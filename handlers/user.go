package handlers

import (
	"errors"
	"net/http"

	"triptailor/database/repository"
	"triptailor/models"
	"triptailor/services/user"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the user directory.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// SaveUserHandler handles PUT /users.
func (h *UserHandler) SaveUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if u.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	outcome, err := h.Service.Upsert(u)
	if err != nil {
		logger.Error("Failed to save user", zap.String("email", u.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if outcome.Existing != nil {
		c.JSON(http.StatusOK, outcome.Existing)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// GetUserHandler handles GET /user/:email.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	email := c.Param("email")
	usr, err := h.Service.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// A miss serializes as null, matching the historical surface.
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /users with an optional name search.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.Search(c.Query("search"))
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// TourGuidesHandler handles GET /tourGuides.
func (h *UserHandler) TourGuidesHandler(c *gin.Context) {
	guides, err := h.Service.TourGuides()
	if err != nil {
		utils.GetLogger().Error("Failed to list tour guides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, guides)
}

// MakeAdminHandler handles PATCH /users/admin/:id.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	h.promote(c, models.RoleAdmin)
}

// MakeTourGuideHandler handles PATCH /users/tourGuide/:id.
func (h *UserHandler) MakeTourGuideHandler(c *gin.Context) {
	h.promote(c, models.RoleTourGuide)
}

func (h *UserHandler) promote(c *gin.Context, role string) {
	id := c.Param("id")
	result, err := h.Service.Promote(id, role)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		utils.GetLogger().Error("Failed to promote user",
			zap.String("id", id), zap.String("role", role), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
