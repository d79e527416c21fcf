package qrpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	b := NewBuilder(Config{
		BankID:      "vietcombank",
		AccountNo:   "0123456789",
		AccountName: "CUA HANG ABC",
	})

	u := b.ImageURL(21600, "HD-A1B2C3D4")
	assert.Contains(t, u, "https://img.vietqr.io/image/vietcombank-0123456789-compact2.png")
	assert.Contains(t, u, "amount=21600")
	assert.Contains(t, u, "addInfo=HD-A1B2C3D4")
	assert.Contains(t, u, "accountName=CUA+HANG+ABC")
}

func TestImageURLUnconfigured(t *testing.T) {
	b := NewBuilder(Config{})
	assert.False(t, b.Configured())
	assert.Equal(t, "", b.ImageURL(1000, "x"))
}

func TestImageURLZeroAmountOmitted(t *testing.T) {
	b := NewBuilder(Config{BankID: "acb", AccountNo: "99"})
	u := b.ImageURL(0, "")
	assert.Equal(t, "https://img.vietqr.io/image/acb-99-compact2.png", u)
}
