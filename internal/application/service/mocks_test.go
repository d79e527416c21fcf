package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
)

type mockProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

// mockOrderRepo records every Create so tests can assert the store was (or
// was not) invoked, and can be flipped to fail to exercise the retry path.
type mockOrderRepo struct {
	created    []*entity.Order
	failCreate bool
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if m.failCreate {
		return errors.New("connection refused")
	}
	order.ID = uuid.New()
	order.OrderNo = "HD250901-0001"
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range m.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	for _, o := range m.created {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.GetByID(ctx, id)
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	orders := make([]entity.Order, 0, len(m.created))
	for _, o := range m.created {
		orders = append(orders, *o)
	}
	return orders, int64(len(orders)), nil
}

func (m *mockOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type mockCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newMockCustomerRepo(customers ...*entity.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return m.customers[id], nil
}

func (m *mockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (m *mockCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type mockSettingsRepo struct {
	settings *entity.StoreSettings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	return m.settings, nil
}

func (m *mockSettingsRepo) Create(ctx context.Context, settings *entity.StoreSettings) error {
	m.settings = settings
	return nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings *entity.StoreSettings) error {
	m.settings = settings
	return nil
}

type mockTemplateRepo struct {
	templates map[uuid.UUID]*entity.ReceiptTemplate
}

func newMockTemplateRepo(templates ...*entity.ReceiptTemplate) *mockTemplateRepo {
	m := &mockTemplateRepo{templates: make(map[uuid.UUID]*entity.ReceiptTemplate)}
	for _, t := range templates {
		m.templates[t.ID] = t
	}
	return m
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *entity.ReceiptTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	m.templates[template.ID] = template
	return nil
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	return m.templates[id], nil
}

func (m *mockTemplateRepo) GetDefault(ctx context.Context, paperSize string) (*entity.ReceiptTemplate, error) {
	for _, t := range m.templates {
		if t.PaperSize == paperSize && t.IsDefault {
			return t, nil
		}
	}
	for _, t := range m.templates {
		if t.PaperSize == paperSize {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTemplateRepo) Update(ctx context.Context, template *entity.ReceiptTemplate) error {
	m.templates[template.ID] = template
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.templates, id)
	return nil
}

func (m *mockTemplateRepo) List(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	out := make([]entity.ReceiptTemplate, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTemplateRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	target, ok := m.templates[id]
	if !ok {
		return errors.New("template not found")
	}
	for _, t := range m.templates {
		if t.PaperSize == target.PaperSize {
			t.IsDefault = false
		}
	}
	target.IsDefault = true
	return nil
}

// mockPrinter captures printed bytes.
type mockPrinter struct {
	printed [][]byte
	fail    bool
}

func (m *mockPrinter) Print(data []byte) error {
	if m.fail {
		return errors.New("printer offline")
	}
	m.printed = append(m.printed, data)
	return nil
}

func (m *mockPrinter) Close() error      { return nil }
func (m *mockPrinter) IsConnected() bool { return !m.fail }
