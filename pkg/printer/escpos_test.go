package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyValuePadsToWidth(t *testing.T) {
	d := NewDocument(Columns57mm)
	d.KeyValue("Tổng cộng:", "21.600")
	out := string(d.Bytes())
	// rune-based padding: key (10 runes) + pad (16) + value (6 runes) == 32 columns
	want := "Tổng cộng:" + strings.Repeat(" ", 16) + "21.600"
	assert.Contains(t, out, want)
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	d := NewDocument(Columns57mm)
	d.ItemLine(2, "Bánh mì thịt nướng đặc biệt loại lớn", "50.000")
	out := string(d.Bytes())
	assert.Contains(t, out, "2x ")
	assert.Contains(t, out, "50.000")
}

func TestQRCodeEmbedsPayload(t *testing.T) {
	d := NewDocument(Columns80mm)
	d.QRCode("https://img.vietqr.io/image/acb-99-compact2.png", 4)
	assert.Contains(t, string(d.Bytes()), "img.vietqr.io")
}

func TestQRCodeEmptyPayloadIsNoop(t *testing.T) {
	before := NewDocument(Columns57mm).Bytes()
	after := NewDocument(Columns57mm).QRCode("", 4).Bytes()
	assert.Equal(t, before, after)
}

func TestNewFromConfig(t *testing.T) {
	p, err := NewFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.False(t, p.IsConnected())

	_, err = NewFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewFromConfig("laser", "", "")
	assert.Error(t, err)
}
