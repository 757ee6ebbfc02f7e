package handlers

import (
	"errors"
	"net/http"

	"triptailor/models"
	"triptailor/services/payment"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the Stripe intent flow and the payment ledger.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Service.CreateIntent(req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPaymentHandler handles POST /payments.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Record(p)
	if err != nil {
		utils.GetLogger().Error("Failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentStatusHandler handles GET /payments/:bookingId.
func (h *PaymentHandler) PaymentStatusHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")
	p, err := h.Service.StatusByBooking(bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch payment", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
