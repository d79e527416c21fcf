package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/application/service"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/request"
	"github.com/minhducmx/banhang-api/internal/presentation/http/dto/response"
)

// CartHandler exposes the terminal-scoped cart. Every endpoint takes the
// terminal id from the path and returns the full cart snapshot so the
// register UI always repaints from one payload.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the current cart snapshot
func (h *CartHandler) Get(c *gin.Context) {
	snap := h.cartService.Snapshot(c.Param("terminal"))
	response.OK(c, "Cart retrieved successfully", snap)
}

// AddItem adds a product to the cart, by id or by barcode
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	terminal := c.Param("terminal")
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if req.ProductID == nil && req.Barcode == "" {
		response.BadRequest(c, "Either product_id or barcode is required")
		return
	}

	var snap interface{}
	var err error
	if req.ProductID != nil {
		snap, err = h.cartService.AddItem(c.Request.Context(), terminal, *req.ProductID, quantity)
	} else {
		snap, err = h.cartService.AddItemByBarcode(c.Request.Context(), terminal, req.Barcode)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", snap)
}

// SetQuantity changes a line quantity; zero or less removes the line
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetQuantity(c.Param("terminal"), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", snap)
}

// SetItemPrice overrides a line's unit price and per-item discount
func (h *CartHandler) SetItemPrice(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.SetItemPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetItemPrice(c.Param("terminal"), productID, req.UnitPrice, req.DiscountPercent)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item price updated", snap)
}

// RemoveItem removes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	snap, err := h.cartService.RemoveItem(c.Param("terminal"), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", snap)
}

// SetDiscount sets the order-level discount percent
func (h *CartHandler) SetDiscount(c *gin.Context) {
	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetOrderDiscountPercent(c.Param("terminal"), req.DiscountPercent)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated", snap)
}

// SetReceived sets the received amount
func (h *CartHandler) SetReceived(c *gin.Context) {
	var req request.SetReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetReceivedAmount(c.Param("terminal"), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Received amount updated", snap)
}

// SetPaymentMethod sets the cart payment method
func (h *CartHandler) SetPaymentMethod(c *gin.Context) {
	var req request.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetPaymentMethod(c.Param("terminal"), enum.ParsePaymentMethod(req.Method))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method updated", snap)
}

// SetCustomer attaches or clears the cart customer
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.cartService.SetCustomer(c.Param("terminal"), req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", snap)
}

// Reset clears the cart and releases its order id
func (h *CartHandler) Reset(c *gin.Context) {
	snap := h.cartService.Reset(c.Param("terminal"))
	response.OK(c, "Cart reset", snap)
}
