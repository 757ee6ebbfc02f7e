package handlers

import (
	"errors"
	"net/http"

	"triptailor/database/repository"
	"triptailor/models"
	"triptailor/services/catalog"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes packages and stories.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreatePackageHandler handles POST /packages.
func (h *CatalogHandler) CreatePackageHandler(c *gin.Context) {
	var pkg models.TourPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.CreatePackage(pkg)
	if err != nil {
		if errors.Is(err, catalog.ErrMissingTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPackagesHandler handles GET /packages.
func (h *CatalogHandler) ListPackagesHandler(c *gin.Context) {
	pkgs, err := h.Service.Packages()
	if err != nil {
		utils.GetLogger().Error("Failed to list packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackageHandler handles GET /package/:id.
func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	id := c.Param("id")
	pkg, err := h.Service.PackageByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package id"})
			return
		}
		utils.GetLogger().Error("Failed to fetch package", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// TourTypesHandler handles GET /tour-types.
func (h *CatalogHandler) TourTypesHandler(c *gin.Context) {
	types, err := h.Service.TourTypes()
	if err != nil {
		utils.GetLogger().Error("Failed to list tour types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// PackagesByTourTypeHandler handles GET /tour-types/:category.
func (h *CatalogHandler) PackagesByTourTypeHandler(c *gin.Context) {
	category := c.Param("category")
	pkgs, err := h.Service.PackagesByTourType(category)
	if err != nil {
		utils.GetLogger().Error("Failed to list packages by tour type",
			zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// HighestPricePackagesHandler handles GET /highestPricePackages.
func (h *CatalogHandler) HighestPricePackagesHandler(c *gin.Context) {
	pkgs, err := h.Service.HighestPricePackages()
	if err != nil {
		utils.GetLogger().Error("Failed to list highest priced packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// CreateStoryHandler handles POST /stories.
func (h *CatalogHandler) CreateStoryHandler(c *gin.Context) {
	var story models.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.CreateStory(story)
	if err != nil {
		if errors.Is(err, catalog.ErrMissingTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create story", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListStoriesHandler handles GET /stories.
func (h *CatalogHandler) ListStoriesHandler(c *gin.Context) {
	stories, err := h.Service.Stories()
	if err != nil {
		utils.GetLogger().Error("Failed to list stories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// LimitedStoriesHandler handles GET /limitedStories.
func (h *CatalogHandler) LimitedStoriesHandler(c *gin.Context) {
	stories, err := h.Service.LimitedStories()
	if err != nil {
		utils.GetLogger().Error("Failed to list limited stories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// FeaturedStoriesHandler handles GET /featuredStories.
func (h *CatalogHandler) FeaturedStoriesHandler(c *gin.Context) {
	stories, err := h.Service.FeaturedStories()
	if err != nil {
		utils.GetLogger().Error("Failed to list featured stories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}
