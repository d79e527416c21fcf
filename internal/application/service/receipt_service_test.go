package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/pkg/receipt"
	"github.com/stretchr/testify/assert"
)

func testSettings() *entity.StoreSettings {
	return &entity.StoreSettings{
		ID:               uuid.New(),
		StoreName:        "Tạp hóa Minh Đức",
		StoreAddress:     "12 Lê Lợi, Huế",
		StorePhone:       "0234 567 890",
		FooterNote:       "Cảm ơn quý khách!",
		DefaultPaperSize: "k80",
	}
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		OrderNo:        "HD250901-0042",
		ClientOrderID:  "HD-a1b2c3d4",
		OrderDate:      time.Date(2025, 9, 1, 8, 5, 0, 0, time.Local),
		SubTotal:       24000,
		DiscountPercent: 10,
		DiscountAmount: 2400,
		Total:          21600,
		ReceivedAmount: 25000,
		ChangeAmount:   3400,
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentStatus:  enum.PaymentStatusPaid,
		Items: []entity.OrderItem{
			{ProductName: "Trà đào", Quantity: 2, UnitPrice: 12000, LineTotal: 24000},
		},
	}
}

func TestBuildContextTokens(t *testing.T) {
	ctx := BuildContext(testOrder(), testSettings())

	assert.Equal(t, "Tạp hóa Minh Đức", ctx["Ten_Cua_Hang"])
	assert.Equal(t, "HD250901-0042", ctx["So_HD"])
	assert.Equal(t, "01", ctx["Ngay"])
	assert.Equal(t, "09", ctx["Thang"])
	assert.Equal(t, "2025", ctx["Nam"])
	assert.Equal(t, "08", ctx["Gio"])
	assert.Equal(t, "05", ctx["Phut"])
	assert.Equal(t, "24.000", ctx["Tong_Tien_Hang"])
	assert.Equal(t, "10", ctx["Phan_Tram_Giam"])
	assert.Equal(t, "2.400", ctx["Giam_Gia"])
	assert.Equal(t, "21.600", ctx["Thanh_Tien"])
	assert.Equal(t, "25.000", ctx["Tien_Khach_Dua"])
	assert.Equal(t, "3.400", ctx["Tien_Thua"])
	assert.NotEmpty(t, ctx["Tien_Bang_Chu"])
	assert.Equal(t, "1", ctx["Da_Thanh_Toan"])

	// no customer attached reads as a walk-in sale
	assert.Equal(t, "Khách lẻ", ctx["Ten_Khach_Hang"])

	// legacy single-item tokens carry the first line
	assert.Equal(t, "Trà đào", ctx["Ten_Hang_Hoa"])
	assert.Equal(t, "2", ctx["So_Luong"])
	assert.Equal(t, "12.000", ctx["Don_Gia"])
	assert.Equal(t, "24.000", ctx["Thanh_Tien_Hang"])
}

func TestBuildContextUnpaidOmitsFlag(t *testing.T) {
	order := testOrder()
	order.PaymentStatus = enum.PaymentStatusUnpaid

	ctx := BuildContext(order, testSettings())
	_, ok := ctx["Da_Thanh_Toan"]
	assert.False(t, ok)
}

func TestBuildContextFallsBackToClientOrderID(t *testing.T) {
	order := testOrder()
	order.OrderNo = ""

	ctx := BuildContext(order, testSettings())
	assert.Equal(t, "HD-a1b2c3d4", ctx["So_HD"])
}

func TestBuildContextCustomer(t *testing.T) {
	order := testOrder()
	order.Customer = &entity.Customer{Name: "Chị Hoa", Phone: "0901234567"}

	ctx := BuildContext(order, testSettings())
	assert.Equal(t, "Chị Hoa", ctx["Ten_Khach_Hang"])
	assert.Equal(t, "0901234567", ctx["SDT_Khach_Hang"])
}

func TestBuildContextQROnlyForTransfer(t *testing.T) {
	settings := testSettings()
	settings.BankID = "vietcombank"
	settings.BankAccountNo = "0123456789"

	cash := testOrder()
	ctx := BuildContext(cash, settings)
	_, ok := ctx["QR_Thanh_Toan"]
	assert.False(t, ok)

	transfer := testOrder()
	transfer.PaymentMethod = enum.PaymentMethodTransfer
	ctx = BuildContext(transfer, settings)
	assert.Contains(t, ctx["QR_Thanh_Toan"], "img.vietqr.io")
	assert.Contains(t, ctx["QR_Thanh_Toan"], "vietcombank")
	assert.Contains(t, ctx["QR_Thanh_Toan"], "amount=21600")
}

func TestBuildContextQRNeedsBankAccount(t *testing.T) {
	transfer := testOrder()
	transfer.PaymentMethod = enum.PaymentMethodTransfer

	ctx := BuildContext(transfer, testSettings())
	_, ok := ctx["QR_Thanh_Toan"]
	assert.False(t, ok)
}

func TestItemsTableEscapesNames(t *testing.T) {
	order := testOrder()
	order.Items = append(order.Items, entity.OrderItem{
		ProductName: `Bánh "<giòn>"`, Quantity: 1, UnitPrice: 5000, LineTotal: 5000,
	})

	table := itemsTable(order)
	assert.Contains(t, table, "Trà đào")
	assert.Contains(t, table, "&lt;giòn&gt;")
	assert.NotContains(t, table, "<giòn>")
	assert.Contains(t, table, "5.000")
}

func newReceiptFixture(order *entity.Order, settings *entity.StoreSettings, templates ...*entity.ReceiptTemplate) (*ReceiptService, *mockPrinter) {
	orders := &mockOrderRepo{created: []*entity.Order{order}}
	p := &mockPrinter{}
	svc := NewReceiptService(orders, &mockSettingsRepo{settings: settings}, newMockTemplateRepo(templates...), p, "usb")
	return svc, p
}

func TestRenderOrder(t *testing.T) {
	order := testOrder()
	tpl := &entity.ReceiptTemplate{
		ID:        uuid.New(),
		Name:      "Mặc định A4",
		PaperSize: "a4",
		IsDefault: true,
		Content: `<h1>(Ten_Cua_Hang)</h1>` +
			`<p>Số: (So_HD) - (Ngay)/(Thang)/(Nam)</p>` +
			`<!--BANG_KE-->` +
			`<p>(Da_Thanh_Toan ĐÃ THANH TOÁN|CHƯA THANH TOÁN)</p>` +
			`<p>(Loi_Cam_On)</p>`,
	}
	svc, _ := newReceiptFixture(order, testSettings(), tpl)

	html, err := svc.RenderOrder(context.Background(), order.ID, receipt.SizeA4, nil)
	assert.NoError(t, err)

	assert.Contains(t, html, "Tạp hóa Minh Đức")
	assert.Contains(t, html, "Số: HD250901-0042 - 01/09/2025")
	assert.Contains(t, html, "ĐÃ THANH TOÁN")
	assert.NotContains(t, html, "CHƯA THANH TOÁN")
	assert.Contains(t, html, "Cảm ơn quý khách!")

	// the items block replaced the marker
	assert.NotContains(t, html, "<!--BANG_KE-->")
	assert.Contains(t, html, `<table class="items">`)
	assert.Contains(t, html, "Trà đào")

	// wrapped into a full document for the requested paper
	assert.Contains(t, html, "<!DOCTYPE html>")
}

func TestRenderOrderExplicitTemplate(t *testing.T) {
	order := testOrder()
	def := &entity.ReceiptTemplate{ID: uuid.New(), Name: "Mặc định", PaperSize: "a4", IsDefault: true, Content: "default (So_HD)"}
	alt := &entity.ReceiptTemplate{ID: uuid.New(), Name: "Phụ", PaperSize: "a4", Content: "alternate (So_HD)"}
	svc, _ := newReceiptFixture(order, testSettings(), def, alt)

	html, err := svc.RenderOrder(context.Background(), order.ID, receipt.SizeA4, &alt.ID)
	assert.NoError(t, err)
	assert.Contains(t, html, "alternate HD250901-0042")
}

func TestRenderOrderMissingOrder(t *testing.T) {
	svc, _ := newReceiptFixture(testOrder(), testSettings())

	_, err := svc.RenderOrder(context.Background(), uuid.New(), receipt.SizeA4, nil)
	assert.Error(t, err)
}

func TestRenderOrderMissingTemplate(t *testing.T) {
	order := testOrder()
	svc, _ := newReceiptFixture(order, testSettings())

	_, err := svc.RenderOrder(context.Background(), order.ID, receipt.SizeA4, nil)
	assert.Error(t, err)
}

func TestPrintOrder(t *testing.T) {
	order := testOrder()
	svc, p := newReceiptFixture(order, testSettings())

	err := svc.PrintOrder(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Len(t, p.printed, 1)

	data := string(p.printed[0])
	assert.Contains(t, data, "Tạp hóa Minh Đức")
	assert.Contains(t, data, "HD250901-0042")
	assert.Contains(t, data, "21.600")
}

func TestPrintOrderFailure(t *testing.T) {
	order := testOrder()
	svc, p := newReceiptFixture(order, testSettings())
	p.fail = true

	err := svc.PrintOrder(context.Background(), order.ID)
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	svc, _ := newReceiptFixture(testOrder(), testSettings())

	status := svc.Status()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "usb", status.Type)
}
