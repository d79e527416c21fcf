package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func newCheckoutFixture(t *testing.T, products ...*entity.Product) (*CartService, *CheckoutService, *mockOrderRepo) {
	t.Helper()
	carts := NewCartService(newMockProductRepo(products...))
	orders := &mockOrderRepo{}
	checkout := NewCheckoutService(carts, orders, newMockCustomerRepo())
	return carts, checkout, orders
}

func TestSubmitEmptyCart(t *testing.T) {
	carts, checkout, orders := newCheckoutFixture(t)
	carts.Snapshot("quay-1") // touch the terminal so a cart exists

	_, err := checkout.Submit(context.Background(), &SubmitInput{Terminal: "quay-1"})
	assert.Equal(t, apperror.ErrEmptyCart, err)
	assert.Empty(t, orders.created)
}

func TestSubmitUnknownTerminal(t *testing.T) {
	_, checkout, orders := newCheckoutFixture(t)

	_, err := checkout.Submit(context.Background(), &SubmitInput{Terminal: "quay-9"})
	assert.Equal(t, apperror.ErrCartNotFound, err)
	assert.Empty(t, orders.created)
}

func TestSubmitPersistsFrozenPayload(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	carts, checkout, orders := newCheckoutFixture(t, tea)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "quay-1", tea.ID, 2)
	assert.NoError(t, err)
	_, err = carts.SetOrderDiscountPercent("quay-1", 10)
	assert.NoError(t, err)
	snap, err := carts.SetReceivedAmount("quay-1", 25000)
	assert.NoError(t, err)

	order, err := checkout.Submit(ctx, &SubmitInput{
		Terminal:      "quay-1",
		PaymentStatus: enum.PaymentStatusPaid,
		Notes:         "khách quen",
	})
	assert.NoError(t, err)
	assert.Len(t, orders.created, 1)

	assert.Equal(t, snap.OrderID, order.ClientOrderID)
	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, int64(24000), order.SubTotal)
	assert.Equal(t, int64(2400), order.DiscountAmount)
	assert.Equal(t, int64(21600), order.Total)
	assert.Equal(t, int64(25000), order.ReceivedAmount)
	assert.Equal(t, int64(3400), order.ChangeAmount)
	assert.Equal(t, enum.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "khách quen", order.Notes)

	// the line carries the name captured at sale time
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Trà đào", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(24000), order.Items[0].LineTotal)

	assert.Equal(t, enum.CheckoutCompleted, checkout.State("quay-1"))
}

func TestSubmitFailurePreservesCart(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	carts, checkout, orders := newCheckoutFixture(t, tea)
	orders.failCreate = true
	ctx := context.Background()

	before, err := carts.AddItem(ctx, "quay-1", tea.ID, 2)
	assert.NoError(t, err)

	_, err = checkout.Submit(ctx, &SubmitInput{Terminal: "quay-1"})
	assert.Error(t, err)
	assert.Empty(t, orders.created)
	assert.Equal(t, enum.CheckoutFailed, checkout.State("quay-1"))

	// cart and its locked order id survive for a retry
	after := carts.Snapshot("quay-1")
	assert.Equal(t, before.OrderID, after.OrderID)
	assert.Len(t, after.Items, 1)
	assert.True(t, after.Locked)

	// the retry succeeds once the store recovers
	orders.failCreate = false
	order, err := checkout.Submit(ctx, &SubmitInput{Terminal: "quay-1"})
	assert.NoError(t, err)
	assert.Equal(t, before.OrderID, order.ClientOrderID)
	assert.Equal(t, enum.CheckoutCompleted, checkout.State("quay-1"))
}

func TestSubmitUnknownCustomer(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	carts, checkout, orders := newCheckoutFixture(t, tea)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	ghost := uuid.New()
	_, err = checkout.Submit(ctx, &SubmitInput{Terminal: "quay-1", CustomerID: &ghost})
	assert.Error(t, err)
	assert.Empty(t, orders.created)
	assert.Equal(t, enum.CheckoutFailed, checkout.State("quay-1"))
}

func TestSubmitUsesCartCustomerWhenInputOmitsIt(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	customer := &entity.Customer{ID: uuid.New(), Name: "Chị Hoa", Phone: "0901234567"}

	carts := NewCartService(newMockProductRepo(tea))
	orders := &mockOrderRepo{}
	checkout := NewCheckoutService(carts, orders, newMockCustomerRepo(customer))
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "quay-1", tea.ID, 1)
	assert.NoError(t, err)
	_, err = carts.SetCustomer("quay-1", &customer.ID)
	assert.NoError(t, err)

	order, err := checkout.Submit(ctx, &SubmitInput{Terminal: "quay-1"})
	assert.NoError(t, err)
	assert.NotNil(t, order.CustomerID)
	assert.Equal(t, customer.ID, *order.CustomerID)
}

func TestSubmitWhileInFlight(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	carts, checkout, _ := newCheckoutFixture(t, tea)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	// hold the terminal in Submitting as a concurrent request would
	_, err = carts.beginSubmit("quay-1")
	assert.NoError(t, err)

	_, err = checkout.Submit(ctx, &SubmitInput{Terminal: "quay-1"})
	assert.Equal(t, apperror.ErrSubmissionInFlight, err)
	assert.Equal(t, enum.CheckoutSubmitting, checkout.State("quay-1"))

	carts.finishSubmit("quay-1", true)
	assert.Equal(t, enum.CheckoutCompleted, checkout.State("quay-1"))
}
