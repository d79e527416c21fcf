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

func newTestProduct(name string, price int64) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		SKU:       "SP-" + uuid.New().String()[:8],
		Name:      name,
		SalePrice: price,
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	coffee := newTestProduct("Cà phê sữa", 25000)
	svc := NewCartService(newMockProductRepo(coffee))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "quay-1", coffee.ID, 1)
	assert.NoError(t, err)

	snap, err := svc.AddItem(ctx, "quay-1", coffee.ID, 2)
	assert.NoError(t, err)

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, int64(75000), snap.Items[0].LineTotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := NewCartService(newMockProductRepo())

	_, err := svc.AddItem(context.Background(), "quay-1", uuid.New(), 1)
	assert.Error(t, err)
}

func TestAddItemCoercesQuantityToOne(t *testing.T) {
	coffee := newTestProduct("Cà phê sữa", 25000)
	svc := NewCartService(newMockProductRepo(coffee))

	snap, err := svc.AddItem(context.Background(), "quay-1", coffee.ID, -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestAddItemByBarcode(t *testing.T) {
	coffee := newTestProduct("Cà phê sữa", 25000)
	coffee.Barcode = "8935024112345"
	svc := NewCartService(newMockProductRepo(coffee))

	snap, err := svc.AddItemByBarcode(context.Background(), "quay-1", "8935024112345")
	assert.NoError(t, err)
	assert.Equal(t, coffee.ID, snap.Items[0].ProductID)

	_, err = svc.AddItemByBarcode(context.Background(), "quay-1", "0000000000000")
	assert.Error(t, err)
}

func TestSnapshotAggregates(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "quay-1", tea.ID, 2)
	assert.NoError(t, err)

	_, err = svc.SetOrderDiscountPercent("quay-1", 10)
	assert.NoError(t, err)

	snap, err := svc.SetReceivedAmount("quay-1", 25000)
	assert.NoError(t, err)

	assert.Equal(t, int64(24000), snap.SubTotal)
	assert.Equal(t, int64(2400), snap.DiscountAmount)
	assert.Equal(t, int64(21600), snap.Total)
	assert.Equal(t, int64(3400), snap.Change)

	// reading the snapshot again must not change anything
	again := svc.Snapshot("quay-1")
	assert.Equal(t, snap.SubTotal, again.SubTotal)
	assert.Equal(t, snap.Total, again.Total)
	assert.Equal(t, snap.Change, again.Change)
}

func TestChangeNeverNegative(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 2)
	assert.NoError(t, err)

	snap, err := svc.SetReceivedAmount("quay-1", 10000)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), snap.Change)
}

func TestSetItemPriceClamps(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	snap, err := svc.SetItemPrice("quay-1", tea.ID, -500, 150)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), snap.Items[0].UnitPrice)
	assert.Equal(t, float64(100), snap.Items[0].DiscountPercent)
	assert.Equal(t, int64(0), snap.Items[0].LineTotal)
}

func TestSetOrderDiscountClamps(t *testing.T) {
	tea := newTestProduct("Trà đào", 10000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	snap, err := svc.SetOrderDiscountPercent("quay-1", -20)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), snap.OrderDiscountPercent)

	snap, err = svc.SetOrderDiscountPercent("quay-1", 999)
	assert.NoError(t, err)
	assert.Equal(t, float64(100), snap.OrderDiscountPercent)
	assert.Equal(t, int64(0), snap.Total)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 3)
	assert.NoError(t, err)

	snap, err := svc.SetQuantity("quay-1", tea.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Equal(t, int64(0), snap.SubTotal)
}

func TestRemoveLastItemKeepsOrderIDLocked(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	first, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 1)
	assert.NoError(t, err)
	assert.True(t, first.Locked)

	snap, err := svc.RemoveItem("quay-1", tea.ID)
	assert.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Locked)
	assert.Equal(t, first.OrderID, snap.OrderID)
	assert.Equal(t, enum.CheckoutLocked, svc.State("quay-1"))
}

func TestResetRegeneratesOrderID(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	before, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	after := svc.Reset("quay-1")
	assert.Empty(t, after.Items)
	assert.False(t, after.Locked)
	assert.NotEqual(t, before.OrderID, after.OrderID)
	assert.Equal(t, enum.CheckoutEmpty, svc.State("quay-1"))
}

func TestTerminalsAreIsolated(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 5)
	assert.NoError(t, err)

	other := svc.Snapshot("quay-2")
	assert.Empty(t, other.Items)
	assert.NotEqual(t, svc.Snapshot("quay-1").OrderID, other.OrderID)
}

func TestMutationsOnUnknownTerminal(t *testing.T) {
	svc := NewCartService(newMockProductRepo())

	_, err := svc.SetQuantity("quay-9", uuid.New(), 2)
	assert.Equal(t, apperror.ErrCartNotFound, err)

	_, err = svc.SetItemPrice("quay-9", uuid.New(), 1000, 0)
	assert.Equal(t, apperror.ErrCartNotFound, err)

	_, err = svc.SetReceivedAmount("quay-9", 1000)
	assert.Equal(t, apperror.ErrCartNotFound, err)
}

func TestSetCustomerAndPaymentMethod(t *testing.T) {
	tea := newTestProduct("Trà đào", 12000)
	svc := NewCartService(newMockProductRepo(tea))

	_, err := svc.AddItem(context.Background(), "quay-1", tea.ID, 1)
	assert.NoError(t, err)

	customerID := uuid.New()
	snap, err := svc.SetCustomer("quay-1", &customerID)
	assert.NoError(t, err)
	assert.Equal(t, &customerID, snap.CustomerID)

	snap, err = svc.SetCustomer("quay-1", nil)
	assert.NoError(t, err)
	assert.Nil(t, snap.CustomerID)

	snap, err = svc.SetPaymentMethod("quay-1", enum.PaymentMethodTransfer)
	assert.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodTransfer, snap.PaymentMethod)
}
