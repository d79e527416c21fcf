package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

// OrderService handles read-side order operations. Orders are created only
// through checkout; here they can be looked up, listed, exported and have
// their payment settled.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByNo retrieves an order by its receipt number
func (s *OrderService) GetOrderByNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrdersInput represents the list orders input
type ListOrdersInput struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	CustomerID    *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}

// ListOrders retrieves orders with pagination and filters
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) ([]entity.Order, int64, error) {
	params := &repository.OrderFilterParams{
		Pagination:    input.Pagination,
		Search:        input.Search,
		PaymentStatus: input.PaymentStatus,
		CustomerID:    input.CustomerID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
	}
	return s.orderRepo.List(ctx, params)
}

// MarkPaid settles an unpaid order, typically after a bank transfer arrives.
func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.UpdatePaymentStatus(ctx, id, enum.PaymentStatusPaid)
}

// DeleteOrder soft deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// ExportOrders writes the filtered orders to an xlsx workbook, one row per
// order with whole-VND amounts, and returns the file bytes.
func (s *OrderService) ExportOrders(ctx context.Context, input *ListOrdersInput) ([]byte, error) {
	// Nil pagination makes the repository return the full filtered set.
	exportInput := *input
	exportInput.Pagination = nil

	orders, _, err := s.ListOrders(ctx, &exportInput)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Số HĐ", "Ngày", "Khách hàng", "Tổng tiền hàng", "Giảm giá", "Thành tiền", "Thanh toán", "Trạng thái"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, order := range orders {
		row := i + 2
		customerName := "Khách lẻ"
		if order.Customer != nil {
			customerName = order.Customer.Name
		}
		status := "Chưa thanh toán"
		if order.PaymentStatus == enum.PaymentStatusPaid {
			status = "Đã thanh toán"
		}
		values := []interface{}{
			order.ReceiptNumber(),
			order.OrderDate.Format("02/01/2006 15:04"),
			customerName,
			order.SubTotal,
			order.DiscountAmount,
			order.Total,
			order.PaymentMethod.Label(),
			status,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}
	return buf.Bytes(), nil
}
