package handlers

import (
	"errors"
	"net/http"

	"triptailor/database/repository"
	"triptailor/models"
	"triptailor/services/booking"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes bookings and the wishlist.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if b.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	result, err := h.Service.Create(b)
	if err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBookingsHandler handles GET /bookings with an optional email filter.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Query("email"))
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /singleBooking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// MyToursHandler handles GET /myTours/:name, the guide-side booking view.
func (h *BookingHandler) MyToursHandler(c *gin.Context) {
	name := c.Param("name")
	bookings, err := h.Service.ByGuide(name)
	if err != nil {
		utils.GetLogger().Error("Failed to list guide bookings", zap.String("guide", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AcceptBookingHandler handles PATCH /wishlist/accept/:id. The path is a
// holdover from the original frontend; it transitions a booking.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	h.setStatus(c, models.BookingAccepted)
}

// RejectBookingHandler handles PATCH /wishlist/reject/:id.
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	h.setStatus(c, models.BookingRejected)
}

func (h *BookingHandler) setStatus(c *gin.Context, status string) {
	id := c.Param("id")
	result, err := h.Service.SetStatus(id, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrTerminalStatus):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to update booking status",
				zap.String("id", id), zap.String("status", status), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBookingHandler handles DELETE /booking/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.Cancel(id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}
		utils.GetLogger().Error("Failed to cancel booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddWishlistHandler handles POST /wishlist.
func (h *BookingHandler) AddWishlistHandler(c *gin.Context) {
	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Email == "" || item.TripTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and tripTitle are required"})
		return
	}

	result, duplicate, err := h.Service.AddToWishlist(item)
	if err != nil {
		utils.GetLogger().Error("Failed to add wishlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if duplicate {
		// Historical contract: a duplicate pair answers with a message, not
		// an error status.
		c.JSON(http.StatusOK, gin.H{"message": "already exists in wishlist"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListWishlistHandler handles GET /wishlist with an optional email filter.
func (h *BookingHandler) ListWishlistHandler(c *gin.Context) {
	items, err := h.Service.Wishlist(c.Query("email"))
	if err != nil {
		utils.GetLogger().Error("Failed to list wishlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteWishlistHandler handles DELETE /wishlist/:id.
func (h *BookingHandler) DeleteWishlistHandler(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.RemoveFromWishlist(id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist id"})
			return
		}
		utils.GetLogger().Error("Failed to delete wishlist item", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
