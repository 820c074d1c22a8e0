package handlers

import (
	"errors"
	"net/http"
	"time"

	"gymdesk_backend/internal/middleware"
	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/services"
	"gymdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// ListPayments handles GET /api/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	gymID := middleware.GymID(c)

	payments, degraded := services.Resolve(middleware.BackendAvailable(c),
		models.DemoPayments,
		func() ([]models.Payment, error) { return h.paymentService.ListPayments(gymID) },
	)
	if degraded {
		markDegraded(c)
	}
	c.JSON(http.StatusOK, gin.H{"data": payments, "error": nil})
}

// LogManualPayment handles POST /api/payments/manual. The ledger entry
// and the member balance adjustment commit together.
func (h *PaymentHandler) LogManualPayment(c *gin.Context) {
	var req services.ManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	gymID := middleware.GymID(c)

	synth := func() *models.Payment {
		now := time.Now()
		paymentType := req.Type
		if paymentType == "" {
			paymentType = models.PaymentTypePayment
		}
		return &models.Payment{
			ID:          services.SyntheticID(),
			GymID:       gymID,
			MemberID:    req.MemberID,
			Amount:      req.Amount,
			Method:      req.Method,
			Type:        paymentType,
			Status:      models.PaymentStatusPaid,
			Description: req.Description,
			PaymentDate: now,
			CreatedAt:   now,
		}
	}

	if !middleware.BackendAvailable(c) {
		markDegraded(c)
		c.JSON(http.StatusOK, gin.H{"data": synth(), "error": nil})
		return
	}

	payment, err := h.paymentService.LogManualPayment(gymID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrPaymentValidation):
			utils.RespondValidationFailed(c, err.Error())
		default:
			utils.LogError(err, "LogManualPayment: store operation failed, serving synthesized result")
			markDegraded(c)
			c.JSON(http.StatusOK, gin.H{"data": synth(), "error": nil})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payment, "error": nil})
}
