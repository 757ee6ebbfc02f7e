package handlers

import (
	"errors"
	"net/http"

	"triptailor/models"
	"triptailor/services/engagement"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EngagementHandler exposes comments and newsletter signups.
type EngagementHandler struct {
	Service engagement.EngagementService
}

// NewEngagementHandler creates an EngagementHandler.
func NewEngagementHandler(svc engagement.EngagementService) *EngagementHandler {
	return &EngagementHandler{Service: svc}
}

// CreateCommentHandler handles POST /comments.
func (h *EngagementHandler) CreateCommentHandler(c *gin.Context) {
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.CreateComment(comment)
	if err != nil {
		utils.GetLogger().Error("Failed to create comment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCommentsHandler handles GET /comments.
func (h *EngagementHandler) ListCommentsHandler(c *gin.Context) {
	comments, err := h.Service.Comments()
	if err != nil {
		utils.GetLogger().Error("Failed to list comments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// SubscribeHandler handles POST /newsletters.
func (h *EngagementHandler) SubscribeHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Subscribe(req.Email)
	if err != nil {
		if errors.Is(err, engagement.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to subscribe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
