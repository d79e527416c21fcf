// Package qrpay builds bank-transfer QR image URLs via the VietQR image
// service. The application only embeds the resulting URL; it never fetches
// or parses the image.
package qrpay

import (
	"fmt"
	"net/url"
	"strconv"
)

// Config identifies the store's receiving bank account.
type Config struct {
	BankID      string // bank short code, e.g. "vietcombank" or BIN
	AccountNo   string
	AccountName string
	Template    string // vietqr layout template, e.g. "compact2"
}

const defaultTemplate = "compact2"

// Builder builds payment QR image URLs for a configured bank account.
type Builder struct {
	cfg Config
}

// NewBuilder creates a URL builder. An empty template falls back to the
// compact layout.
func NewBuilder(cfg Config) *Builder {
	if cfg.Template == "" {
		cfg.Template = defaultTemplate
	}
	return &Builder{cfg: cfg}
}

// Configured reports whether a bank account is set up; without one no QR is
// embedded into receipts.
func (b *Builder) Configured() bool {
	return b.cfg.BankID != "" && b.cfg.AccountNo != ""
}

// ImageURL returns the QR image URL for a transfer of amount VND with the
// given description (typically the order number).
func (b *Builder) ImageURL(amount int64, description string) string {
	if !b.Configured() {
		return ""
	}

	q := url.Values{}
	if amount > 0 {
		q.Set("amount", strconv.FormatInt(amount, 10))
	}
	if description != "" {
		q.Set("addInfo", description)
	}
	if b.cfg.AccountName != "" {
		q.Set("accountName", b.cfg.AccountName)
	}

	u := fmt.Sprintf("https://img.vietqr.io/image/%s-%s-%s.png",
		url.PathEscape(b.cfg.BankID),
		url.PathEscape(b.cfg.AccountNo),
		url.PathEscape(b.cfg.Template),
	)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
