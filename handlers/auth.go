package handlers

import (
	"net/http"

	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct{}

// IssueTokenHandler handles POST /jwt. The request body is carried into the
// token verbatim as the claims object.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.IssueToken(claims)
	if err != nil {
		utils.GetLogger().Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
