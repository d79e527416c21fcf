package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/pkg/money"
)

// CartLineItem is one product line in an in-memory cart. LineTotal is always
// derived through Recompute; it is never set directly.
type CartLineItem struct {
	ProductID       uuid.UUID `json:"product_id"`
	SKU             string    `json:"sku"`
	ProductName     string    `json:"product_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       int64     `json:"unit_price"`
	DiscountPercent float64   `json:"discount_percent"`
	LineTotal       int64     `json:"line_total"`
}

// Recompute refreshes the derived line total from the current quantity, unit
// price and discount. Called after every mutation so totals can never go stale.
func (l *CartLineItem) Recompute() {
	l.DiscountPercent = money.ClampPercent(l.DiscountPercent)
	l.LineTotal = money.LineTotal(l.Quantity, l.UnitPrice, l.DiscountPercent)
}

// Cart is NOT a database entity. It is the in-memory, pre-submission state of
// one checkout transaction, owned by exactly one terminal session. Insertion
// order of Items is display order.
type Cart struct {
	OrderID              string             `json:"order_id"`
	Items                []CartLineItem     `json:"items"`
	OrderDiscountPercent float64            `json:"order_discount_percent"`
	ReceivedAmount       int64              `json:"received_amount"`
	PaymentMethod        enum.PaymentMethod `json:"payment_method"`
	CustomerID           *uuid.UUID         `json:"customer_id,omitempty"`
	Locked               bool               `json:"locked"`
	CreatedAt            time.Time          `json:"created_at"`
}

// CartSnapshot is the derived aggregate view of a cart: a pure function of
// the cart's current state with no memoization.
type CartSnapshot struct {
	OrderID              string             `json:"order_id"`
	Items                []CartLineItem     `json:"items"`
	OrderDiscountPercent float64            `json:"order_discount_percent"`
	SubTotal             int64              `json:"sub_total"`
	DiscountAmount       int64              `json:"discount_amount"`
	Total                int64              `json:"total"`
	ReceivedAmount       int64              `json:"received_amount"`
	Change               int64              `json:"change"`
	PaymentMethod        enum.PaymentMethod `json:"payment_method"`
	CustomerID           *uuid.UUID         `json:"customer_id,omitempty"`
	Locked               bool               `json:"locked"`
}

// Snapshot computes the aggregates: subtotal as the sum of line totals, the
// order-level discount on top, and change against the received amount. An
// empty cart yields all zeros.
func (c *Cart) Snapshot() CartSnapshot {
	var subTotal int64
	for i := range c.Items {
		subTotal += c.Items[i].LineTotal
	}

	discount := money.PercentOf(subTotal, c.OrderDiscountPercent)
	total := subTotal - discount
	if total < 0 {
		total = 0
	}
	change := c.ReceivedAmount - total
	if change < 0 {
		change = 0
	}

	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)

	return CartSnapshot{
		OrderID:              c.OrderID,
		Items:                items,
		OrderDiscountPercent: c.OrderDiscountPercent,
		SubTotal:             subTotal,
		DiscountAmount:       discount,
		Total:                total,
		ReceivedAmount:       c.ReceivedAmount,
		Change:               change,
		PaymentMethod:        c.PaymentMethod,
		CustomerID:           c.CustomerID,
		Locked:               c.Locked,
	}
}

// FindItem returns the index of the line for a product, or -1.
func (c *Cart) FindItem(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
