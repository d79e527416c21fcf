package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/pagination"
	"github.com/minhducmx/banhang-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID *uuid.UUID
	SKU        string
	Name       string
	Barcode    string
	SalePrice  int64
	CostPrice  int64
	Unit       string
	Quantity   int
	Notes      *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "Name is required"}})
	}
	if input.SalePrice < 0 || input.CostPrice < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "sale_price", Message: "Prices cannot be negative"}})
	}

	// Auto-generate SKU if not provided
	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateProductCode()
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		CategoryID: input.CategoryID,
		SKU:        sku,
		Name:       input.Name,
		Slug:       utils.Slugify(input.Name),
		Barcode:    input.Barcode,
		SalePrice:  input.SalePrice,
		CostPrice:  input.CostPrice,
		Unit:       input.Unit,
		Quantity:   input.Quantity,
		Notes:      input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode retrieves a product by barcode, used by the scanner flow
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	CategoryID *uuid.UUID
	Name       *string
	Barcode    *string
	SalePrice  *int64
	CostPrice  *int64
	Unit       *string
	Quantity   *int
	Notes      *string
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.SalePrice != nil {
		if *input.SalePrice < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "sale_price", Message: "Sale price cannot be negative"}})
		}
		product.SalePrice = *input.SalePrice
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "cost_price", Message: "Cost price cannot be negative"}})
		}
		product.CostPrice = *input.CostPrice
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, id)
}

// DeleteProduct soft deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProductsInput represents the list products input
type ListProductsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListProducts retrieves products with pagination and filters
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) ([]entity.Product, int64, error) {
	params := &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		CategoryID: input.CategoryID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}
	return s.productRepo.List(ctx, params)
}

// CreateCategory creates a new category
func (s *ProductService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "Name is required"}})
	}
	category := &entity.Category{
		Name: name,
		Slug: utils.Slugify(name),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves all categories
func (s *ProductService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory soft deletes a category
func (s *ProductService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
