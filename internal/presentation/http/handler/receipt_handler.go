package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/application/service"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/response"
	"github.com/minhducmx/banhang-api/pkg/receipt"
)

// ReceiptHandler handles receipt rendering and printing requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Render returns the receipt as a standalone HTML document. The paper query
// parameter picks the profile; template_id optionally overrides the default
// template for that size.
func (h *ReceiptHandler) Render(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	paper := receipt.Size(c.DefaultQuery("paper", "a4"))

	var templateID *uuid.UUID
	if templateIDStr := c.Query("template_id"); templateIDStr != "" {
		id, err := uuid.Parse(templateIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid template ID")
			return
		}
		templateID = &id
	}

	doc, err := h.receiptService.RenderOrder(c.Request.Context(), orderID, paper, templateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Print sends the receipt to the thermal printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.receiptService.PrintOrder(c.Request.Context(), orderID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// Status reports the printer connection state
func (h *ReceiptHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.Status())
}

// TestPrint sends a test page to the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	if err := h.receiptService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", nil)
}
