package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/money"
	"github.com/minhducmx/banhang-api/pkg/utils"
)

// CartService is the cart engine: it owns one in-memory cart per terminal
// session and applies every mutation synchronously. Numeric inputs are
// sanitized here (clamped or coerced to zero), never rejected, so an invalid
// discount or a NaN can never reach a stored total.
type CartService struct {
	mu          sync.Mutex
	carts       map[string]*cartState
	productRepo repository.ProductRepository
}

// cartState pairs a cart with its checkout lifecycle state. The submitting
// flag is the single in-flight-submission guard per terminal.
type cartState struct {
	cart       *entity.Cart
	state      enum.CheckoutState
	submitting bool
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		carts:       make(map[string]*cartState),
		productRepo: productRepo,
	}
}

// newCart creates an empty cart with a fresh, still-regenerable order id.
func newCart() *entity.Cart {
	return &entity.Cart{
		OrderID:       utils.GenerateOrderID(),
		Items:         []entity.CartLineItem{},
		PaymentMethod: enum.PaymentMethodCash,
		CreatedAt:     time.Now(),
	}
}

// getOrCreate must be called with the mutex held.
func (s *CartService) getOrCreate(terminal string) *cartState {
	if cs, ok := s.carts[terminal]; ok {
		return cs
	}
	cs := &cartState{cart: newCart(), state: enum.CheckoutEmpty}
	s.carts[terminal] = cs
	return cs
}

// AddItem adds a product to the terminal's cart. Adding a product that is
// already in the cart increments its quantity instead of appending a second
// line. The first item locks the cart: from then on the order id is frozen
// until an explicit reset.
func (s *CartService) AddItem(ctx context.Context, terminal string, productID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entity.CartSnapshot{}, err
	}
	if product == nil {
		return entity.CartSnapshot{}, apperror.NewNotFoundError("Product")
	}

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.getOrCreate(terminal)
	cart := cs.cart

	if i := cart.FindItem(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
		cart.Items[i].Recompute()
	} else {
		line := entity.CartLineItem{
			ProductID:       product.ID,
			SKU:             product.SKU,
			ProductName:     product.Name,
			Quantity:        quantity,
			UnitPrice:       product.SalePrice,
			DiscountPercent: 0,
		}
		line.Recompute()
		cart.Items = append(cart.Items, line)
	}

	if !cart.Locked {
		cart.Locked = true
		cs.state = enum.CheckoutLocked
	}
	return cart.Snapshot(), nil
}

// AddItemByBarcode resolves a scanned barcode and adds the product.
func (s *CartService) AddItemByBarcode(ctx context.Context, terminal, barcode string) (entity.CartSnapshot, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return entity.CartSnapshot{}, err
	}
	if product == nil {
		return entity.CartSnapshot{}, apperror.NewNotFoundError("Product")
	}
	return s.AddItem(ctx, terminal, product.ID, 1)
}

// SetQuantity updates a line's quantity. A quantity of zero or less removes
// the line, matching the cashier clearing the quantity field.
func (s *CartService) SetQuantity(terminal string, productID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	if quantity <= 0 {
		return s.RemoveItem(terminal, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	i := cs.cart.FindItem(productID)
	if i < 0 {
		return entity.CartSnapshot{}, apperror.NewNotFoundError("Cart line")
	}

	cs.cart.Items[i].Quantity = quantity
	cs.cart.Items[i].Recompute()
	return cs.cart.Snapshot(), nil
}

// SetItemPrice is the manual price-edit action: it overrides the unit price
// taken from the catalog at add time and sets a per-item discount. A negative
// price coerces to zero; the discount is clamped to [0,100].
func (s *CartService) SetItemPrice(terminal string, productID uuid.UUID, unitPrice int64, discountPercent float64) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	i := cs.cart.FindItem(productID)
	if i < 0 {
		return entity.CartSnapshot{}, apperror.NewNotFoundError("Cart line")
	}

	if unitPrice < 0 {
		unitPrice = 0
	}
	cs.cart.Items[i].UnitPrice = unitPrice
	cs.cart.Items[i].DiscountPercent = money.ClampPercent(discountPercent)
	cs.cart.Items[i].Recompute()
	return cs.cart.Snapshot(), nil
}

// RemoveItem removes a line. Removing the last item does not unlock the
// cart: the order id stays stable until an explicit reset.
func (s *CartService) RemoveItem(terminal string, productID uuid.UUID) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	i := cs.cart.FindItem(productID)
	if i < 0 {
		return entity.CartSnapshot{}, apperror.NewNotFoundError("Cart line")
	}

	cs.cart.Items = append(cs.cart.Items[:i], cs.cart.Items[i+1:]...)
	return cs.cart.Snapshot(), nil
}

// SetOrderDiscountPercent sets the order-level discount, clamped to [0,100].
func (s *CartService) SetOrderDiscountPercent(terminal string, percent float64) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	cs.cart.OrderDiscountPercent = money.ClampPercent(percent)
	return cs.cart.Snapshot(), nil
}

// SetReceivedAmount records the cash received from the customer.
func (s *CartService) SetReceivedAmount(terminal string, amount int64) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	if amount < 0 {
		amount = 0
	}
	cs.cart.ReceivedAmount = amount
	return cs.cart.Snapshot(), nil
}

// SetPaymentMethod selects how the customer pays.
func (s *CartService) SetPaymentMethod(terminal string, method enum.PaymentMethod) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	cs.cart.PaymentMethod = method
	return cs.cart.Snapshot(), nil
}

// SetCustomer attaches (or detaches, with nil) a customer reference.
func (s *CartService) SetCustomer(terminal string, customerID *uuid.UUID) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	cs.cart.CustomerID = customerID
	return cs.cart.Snapshot(), nil
}

// Reset clears the terminal's cart and generates a fresh order id. This is
// the only way the order id lock is released.
func (s *CartService) Reset(terminal string) entity.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.getOrCreate(terminal)
	cs.cart = newCart()
	cs.state = enum.CheckoutEmpty
	cs.submitting = false
	return cs.cart.Snapshot()
}

// Snapshot returns the derived aggregates for the terminal's cart, creating
// an empty cart on first contact.
func (s *CartService) Snapshot(terminal string) entity.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(terminal).cart.Snapshot()
}

// State returns the checkout lifecycle state for the terminal.
func (s *CartService) State(terminal string) enum.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(terminal).state
}

// beginSubmit validates the cart and flips it into the Submitting state.
// It enforces both checkout guards: a second submit while one is in flight
// is rejected (not queued), and an empty cart never reaches the order store.
func (s *CartService) beginSubmit(terminal string) (entity.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return entity.CartSnapshot{}, apperror.ErrCartNotFound
	}
	if cs.submitting {
		return entity.CartSnapshot{}, apperror.ErrSubmissionInFlight
	}
	if cs.cart.IsEmpty() {
		return entity.CartSnapshot{}, apperror.ErrEmptyCart
	}

	cs.submitting = true
	cs.state = enum.CheckoutSubmitting
	return cs.cart.Snapshot(), nil
}

// finishSubmit records the submission outcome. On failure the cart (and its
// locked order id) is left untouched so the operator can retry.
func (s *CartService) finishSubmit(terminal string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.carts[terminal]
	if !ok {
		return
	}
	cs.submitting = false
	if succeeded {
		cs.state = enum.CheckoutCompleted
	} else {
		cs.state = enum.CheckoutFailed
	}
}
