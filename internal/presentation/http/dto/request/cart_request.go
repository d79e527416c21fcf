package request

import "github.com/google/uuid"

// AddItemRequest adds a product to the cart, by id or by scanned barcode
type AddItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Barcode   string     `json:"barcode"`
	Quantity  int        `json:"quantity" binding:"omitempty,min=1"`
}

// SetQuantityRequest changes a line item quantity; zero removes the line
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetItemPriceRequest overrides a line's unit price and per-item discount
type SetItemPriceRequest struct {
	UnitPrice       int64   `json:"unit_price" binding:"min=0"`
	DiscountPercent float64 `json:"discount_percent"`
}

// SetDiscountRequest sets the order-level discount percent
type SetDiscountRequest struct {
	DiscountPercent float64 `json:"discount_percent"`
}

// SetReceivedRequest sets the amount the customer handed over
type SetReceivedRequest struct {
	Amount int64 `json:"amount"`
}

// SetPaymentMethodRequest sets the cart payment method
type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required,oneof=cash card transfer e_wallet"`
}

// SetCustomerRequest attaches or clears the cart customer
type SetCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

// SubmitCheckoutRequest finalizes the cart into an order
type SubmitCheckoutRequest struct {
	CustomerID    *uuid.UUID `json:"customer_id"`
	PaymentStatus *int       `json:"payment_status" binding:"omitempty,oneof=0 1"`
	Notes         string     `json:"notes" binding:"omitempty,max=1000"`
}
