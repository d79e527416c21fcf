package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is the immutable, persisted record of a completed checkout. All
// monetary fields are whole VND. Item names and prices are captured at
// submission time so later catalog edits never change a past receipt.
type Order struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo         string             `gorm:"size:100;unique;not null" json:"order_no"`
	ClientOrderID   string             `gorm:"size:100;index" json:"client_order_id"`
	CustomerID      *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OrderDate       time.Time          `gorm:"not null" json:"order_date"`
	SubTotal        int64              `gorm:"default:0" json:"sub_total"`
	DiscountPercent float64            `gorm:"default:0" json:"discount_percent"`
	DiscountAmount  int64              `gorm:"default:0" json:"discount_amount"`
	Total           int64              `gorm:"default:0" json:"total"`
	ReceivedAmount  int64              `gorm:"default:0" json:"received_amount"`
	ChangeAmount    int64              `gorm:"default:0" json:"change_amount"`
	PaymentMethod   enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PaymentStatus   enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	Notes           string             `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ReceiptNumber returns the number printed on the receipt: the store-assigned
// order number when present, the client-generated id otherwise.
func (o *Order) ReceiptNumber() string {
	if o.OrderNo != "" {
		return o.OrderNo
	}
	return o.ClientOrderID
}

// OrderItem is one line of a persisted order with the product name frozen at
// time of sale.
type OrderItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName     string         `gorm:"size:255;not null" json:"product_name"`
	SKU             string         `gorm:"size:100" json:"sku"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	UnitPrice       int64          `gorm:"not null" json:"unit_price"`
	DiscountPercent float64        `gorm:"default:0" json:"discount_percent"`
	LineTotal       int64          `gorm:"not null" json:"line_total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
