package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/enum"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/money"
	"github.com/minhducmx/banhang-api/pkg/printer"
	"github.com/minhducmx/banhang-api/pkg/qrpay"
	"github.com/minhducmx/banhang-api/pkg/receipt"
	"github.com/minhducmx/banhang-api/pkg/vietnum"
)

// ReceiptService turns a persisted order into printable output: an HTML
// document for on-screen preview and A4/thermal printing, and an ESC/POS
// stream for the attached thermal printer.
type ReceiptService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	templateRepo repository.TemplateRepository
	printer      printer.Printer
	printerType  string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	templateRepo repository.TemplateRepository,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		templateRepo: templateRepo,
		printer:      p,
		printerType:  printerType,
	}
}

// BuildContext flattens an order plus store settings into the substitution
// context for one render. Every value is pre-formatted; the template engine
// only ever substitutes strings.
func BuildContext(order *entity.Order, settings *entity.StoreSettings) receipt.Context {
	ctx := receipt.Context{
		"Ten_Cua_Hang": settings.StoreName,
		"Dia_Chi":      settings.StoreAddress,
		"Dien_Thoai":   settings.StorePhone,
		"Ma_So_Thue":   settings.TaxCode,
		"Loi_Cam_On":   settings.FooterNote,

		"So_HD":          order.ReceiptNumber(),
		"Ngay":           fmt.Sprintf("%02d", order.OrderDate.Day()),
		"Thang":          fmt.Sprintf("%02d", int(order.OrderDate.Month())),
		"Nam":            strconv.Itoa(order.OrderDate.Year()),
		"Gio":            fmt.Sprintf("%02d", order.OrderDate.Hour()),
		"Phut":           fmt.Sprintf("%02d", order.OrderDate.Minute()),
		"Tong_Tien_Hang": money.FormatVND(order.SubTotal),
		"Phan_Tram_Giam": strconv.FormatFloat(order.DiscountPercent, 'f', -1, 64),
		"Giam_Gia":       money.FormatVND(order.DiscountAmount),
		"Thanh_Tien":     money.FormatVND(order.Total),
		"Tien_Khach_Dua": money.FormatVND(order.ReceivedAmount),
		"Tien_Thua":      money.FormatVND(order.ChangeAmount),
		"Tien_Bang_Chu":  vietnum.ToWords(order.Total),
		"Phuong_Thuc":    order.PaymentMethod.Label(),
		"Ghi_Chu":        order.Notes,
	}

	if order.PaymentStatus == enum.PaymentStatusPaid {
		ctx["Da_Thanh_Toan"] = "1"
	}

	if order.Customer != nil {
		ctx["Ten_Khach_Hang"] = order.Customer.Name
		ctx["SDT_Khach_Hang"] = order.Customer.Phone
	} else {
		ctx["Ten_Khach_Hang"] = "Khách lẻ"
	}

	// Single-item legacy tokens carry the first line only; the full table is
	// injected as a structured block, not through placeholders.
	if len(order.Items) > 0 {
		first := order.Items[0]
		ctx["Ten_Hang_Hoa"] = first.ProductName
		ctx["So_Luong"] = strconv.Itoa(first.Quantity)
		ctx["Don_Gia"] = money.FormatVND(first.UnitPrice)
		ctx["Thanh_Tien_Hang"] = money.FormatVND(first.LineTotal)
	}

	if qr := paymentQR(order, settings); qr != "" {
		ctx["QR_Thanh_Toan"] = qr
	}

	return ctx
}

// paymentQR returns the VietQR image URL for transfer payments, or "".
func paymentQR(order *entity.Order, settings *entity.StoreSettings) string {
	if order.PaymentMethod != enum.PaymentMethodTransfer {
		return ""
	}
	b := qrpay.NewBuilder(qrpay.Config{
		BankID:      settings.BankID,
		AccountNo:   settings.BankAccountNo,
		AccountName: settings.BankAccountName,
	})
	return b.ImageURL(order.Total, order.ReceiptNumber())
}

// itemsTable renders the structured multi-item block.
func itemsTable(order *entity.Order) string {
	var b strings.Builder
	b.WriteString(`<table class="items"><thead><tr>`)
	b.WriteString(`<th>Tên hàng</th><th>SL</th><th class="text-right">Đơn giá</th><th class="text-right">Thành tiền</th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for _, item := range order.Items {
		b.WriteString(`<tr class="sep">`)
		fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(item.ProductName))
		fmt.Fprintf(&b, `<td>%d</td>`, item.Quantity)
		fmt.Fprintf(&b, `<td class="text-right">%s</td>`, money.FormatVND(item.UnitPrice))
		fmt.Fprintf(&b, `<td class="text-right">%s</td>`, money.FormatVND(item.LineTotal))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// RenderOrder renders an order to a printable HTML document for the given
// paper size, using the explicit template when templateID is set and the
// paper size's default template otherwise.
func (s *ReceiptService) RenderOrder(ctx context.Context, orderID uuid.UUID, paper receipt.Size, templateID *uuid.UUID) (string, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil || order == nil {
		return "", apperror.NewNotFoundError("Order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", err
	}

	profile := receipt.ProfileFor(paper)

	var tpl *entity.ReceiptTemplate
	if templateID != nil {
		tpl, err = s.templateRepo.GetByID(ctx, *templateID)
	} else {
		tpl, err = s.templateRepo.GetDefault(ctx, string(profile.Size))
	}
	if err != nil || tpl == nil {
		return "", apperror.NewNotFoundError("Receipt template")
	}

	body := receipt.Render(tpl.Content, BuildContext(order, settings))
	body = receipt.InjectItems(body, itemsTable(order))
	return receipt.Wrap(body, profile), nil
}

// PrintOrder formats an order as ESC/POS and sends it to the configured
// thermal printer. Printing is outside the transactional boundary: the order
// is already persisted and a print failure only surfaces as an error message.
func (s *ReceiptService) PrintOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil || order == nil {
		return apperror.NewNotFoundError("Order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	data := formatEscpos(order, settings)
	if err := s.printer.Print(data); err != nil {
		log.Printf("receipt: print failed for order %s: %v", order.ReceiptNumber(), err)
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// formatEscpos converts an order into ESC/POS bytes for the configured roll.
func formatEscpos(order *entity.Order, settings *entity.StoreSettings) []byte {
	columns := printer.Columns80mm
	if settings.DefaultPaperSize == string(receipt.Size57m) {
		columns = printer.Columns57mm
	}

	doc := printer.NewDocument(columns)

	doc.Align(printer.AlignCenter).
		Bold(true).
		FontSize(printer.FontDouble).
		Line(settings.StoreName).
		FontSize(printer.FontNormal).
		Bold(false)

	if settings.StoreAddress != "" {
		doc.Line(settings.StoreAddress)
	}
	if settings.StorePhone != "" {
		doc.Line(settings.StorePhone)
	}

	doc.Align(printer.AlignLeft).Separator()

	doc.KeyValue("Số HĐ:", order.ReceiptNumber())
	doc.KeyValue("Ngày:", order.OrderDate.Format("02/01/2006 15:04"))
	if order.Customer != nil {
		doc.KeyValue("Khách:", order.Customer.Name)
	}
	doc.KeyValue("Thanh toán:", order.PaymentMethod.Label())

	doc.Separator()

	for _, item := range order.Items {
		doc.ItemLine(item.Quantity, item.ProductName, money.FormatVND(item.LineTotal))
		if item.Quantity > 1 || item.DiscountPercent > 0 {
			doc.Linef("  @ %s  -%s%%", money.FormatVND(item.UnitPrice),
				strconv.FormatFloat(item.DiscountPercent, 'f', -1, 64))
		}
	}

	doc.Separator()

	doc.KeyValue("Tổng tiền hàng:", money.FormatVND(order.SubTotal))
	if order.DiscountAmount > 0 {
		doc.KeyValue("Giảm giá:", money.FormatVND(order.DiscountAmount))
	}
	doc.Bold(true).
		KeyValue("THÀNH TIỀN:", money.FormatVND(order.Total)).
		Bold(false)
	doc.KeyValue("Khách đưa:", money.FormatVND(order.ReceivedAmount))
	doc.KeyValue("Tiền thừa:", money.FormatVND(order.ChangeAmount))

	doc.Line(vietnum.ToWords(order.Total))

	if qr := paymentQR(order, settings); qr != "" {
		doc.Align(printer.AlignCenter).QRCode(qr, 4).Align(printer.AlignLeft)
	}

	if settings.FooterNote != "" {
		doc.Align(printer.AlignCenter).Line(settings.FooterNote)
	}

	doc.Cut()
	return doc.Bytes()
}

// PrinterStatus reports the thermal printer connection state.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short test page to the printer.
func (s *ReceiptService) TestPrint(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	columns := printer.Columns80mm
	if settings.DefaultPaperSize == string(receipt.Size57m) {
		columns = printer.Columns57mm
	}

	doc := printer.NewDocument(columns)
	doc.Align(printer.AlignCenter).
		Bold(true).
		Line("IN THỬ").
		Bold(false).
		Line(settings.StoreName).
		Separator().
		Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}
