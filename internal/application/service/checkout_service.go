package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
)

// CheckoutService sequences a cart through the submission half of its
// lifecycle and hands the finalized payload to the order store. The cart
// engine owns all state up to Locked; this service owns Submitting,
// Completed and Failed.
type CheckoutService struct {
	carts        *CartService
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	carts *CartService,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// SubmitInput carries the operator's payment intent for one submission
type SubmitInput struct {
	Terminal      string
	CustomerID    *uuid.UUID
	PaymentStatus enum.PaymentStatus
	Notes         string
}

// Submit validates the terminal's cart, builds an immutable order payload
// (product names and prices captured now, independent of later catalog
// edits) and persists it through the order store.
//
// Failure leaves the cart untouched: the operator retries with the same
// locked order id and identical metadata, and no partial order is ever
// written. A submit while another is in flight is rejected outright.
func (s *CheckoutService) Submit(ctx context.Context, input *SubmitInput) (*entity.Order, error) {
	snap, err := s.carts.beginSubmit(input.Terminal)
	if err != nil {
		return nil, err
	}

	customerID := input.CustomerID
	if customerID == nil {
		customerID = snap.CustomerID
	}
	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil || customer == nil {
			s.carts.finishSubmit(input.Terminal, false)
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	items := make([]entity.OrderItem, 0, len(snap.Items))
	for _, line := range snap.Items {
		items = append(items, entity.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			SKU:             line.SKU,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			LineTotal:       line.LineTotal,
		})
	}

	order := &entity.Order{
		ClientOrderID:   snap.OrderID,
		CustomerID:      customerID,
		OrderDate:       time.Now(),
		SubTotal:        snap.SubTotal,
		DiscountPercent: snap.OrderDiscountPercent,
		DiscountAmount:  snap.DiscountAmount,
		Total:           snap.Total,
		ReceivedAmount:  snap.ReceivedAmount,
		ChangeAmount:    snap.Change,
		PaymentMethod:   snap.PaymentMethod,
		PaymentStatus:   input.PaymentStatus,
		Notes:           input.Notes,
		Items:           items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.carts.finishSubmit(input.Terminal, false)
		log.Printf("checkout: submission failed for %s (terminal %s): %v", snap.OrderID, input.Terminal, err)
		return nil, apperror.NewSubmissionError(err)
	}

	s.carts.finishSubmit(input.Terminal, true)

	persisted, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil || persisted == nil {
		// the order exists; fall back to the payload we just wrote
		return order, nil
	}
	return persisted, nil
}

// State reports the terminal's checkout lifecycle state.
func (s *CheckoutService) State(terminal string) enum.CheckoutState {
	return s.carts.State(terminal)
}
