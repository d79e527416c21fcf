package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	SKU        string     `json:"sku" binding:"omitempty,max=100"`
	Name       string     `json:"name" binding:"required,min=1,max=255"`
	Barcode    string     `json:"barcode" binding:"omitempty,max=100"`
	SalePrice  int64      `json:"sale_price" binding:"min=0"`
	CostPrice  int64      `json:"cost_price" binding:"min=0"`
	Unit       string     `json:"unit" binding:"omitempty,max=50"`
	Quantity   int        `json:"quantity" binding:"min=0"`
	Notes      *string    `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Name       *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Barcode    *string    `json:"barcode" binding:"omitempty,max=100"`
	SalePrice  *int64     `json:"sale_price" binding:"omitempty,min=0"`
	CostPrice  *int64     `json:"cost_price" binding:"omitempty,min=0"`
	Unit       *string    `json:"unit" binding:"omitempty,max=50"`
	Quantity   *int       `json:"quantity" binding:"omitempty,min=0"`
	Notes      *string    `json:"notes"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
