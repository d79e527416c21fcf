package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/minhducmx/banhang-api/internal/application/service"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/request"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/response"
)

// CheckoutHandler drives cart submission
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Submit finalizes the terminal's cart into a persisted order. The route
// sits behind the idempotency middleware so a retried request with the same
// Idempotency-Key replays the original response.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req request.SubmitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentStatus := enum.PaymentStatusPaid
	if req.PaymentStatus != nil {
		paymentStatus = enum.PaymentStatus(*req.PaymentStatus)
	}

	order, err := h.checkoutService.Submit(c.Request.Context(), &service.SubmitInput{
		Terminal:      c.Param("terminal"),
		CustomerID:    req.CustomerID,
		PaymentStatus: paymentStatus,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// State reports the terminal's checkout lifecycle state
func (h *CheckoutHandler) State(c *gin.Context) {
	state := h.checkoutService.State(c.Param("terminal"))
	response.OK(c, "Checkout state retrieved", gin.H{"state": state})
}
