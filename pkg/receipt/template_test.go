package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSimpleToken(t *testing.T) {
	got := Render("(Ten_Cua_Hang)", Context{"Ten_Cua_Hang": "ABC"})
	assert.Equal(t, "ABC", got)
}

func TestRenderUnknownTokenIsBlank(t *testing.T) {
	assert.Equal(t, "", Render("(Foo)", Context{}))
	assert.Equal(t, "Hóa đơn: ", Render("Hóa đơn: (So_HD)", Context{}))
}

func TestRenderAlternation(t *testing.T) {
	assert.Equal(t, "A", Render("(X A|B)", Context{"X": "1"}))
	assert.Equal(t, "B", Render("(X A|B)", Context{}))
	assert.Equal(t, "B", Render("(X A|B)", Context{"X": "0"}))
	assert.Equal(t, "B", Render("(X A|B)", Context{"X": "false"}))
}

func TestRenderAlternationBeforeSimple(t *testing.T) {
	// the simple pass must not touch literal text produced by alternation
	ctx := Context{"Da_Thanh_Toan": "1", "So_HD": "HD-1"}
	got := Render("(Da_Thanh_Toan HÓA ĐƠN BÁN HÀNG|PHIẾU TẠM TÍNH) số (So_HD)", ctx)
	assert.Equal(t, "HÓA ĐƠN BÁN HÀNG số HD-1", got)
}

func TestRenderDeterministic(t *testing.T) {
	ctx := Context{"A": "x", "B": "y"}
	tpl := "(A)-(B)-(C)-(Flag yes|no)"
	first := Render(tpl, ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(tpl, ctx))
	}
}

func TestRenderMalformedTokenLeftLiteral(t *testing.T) {
	// unterminated token syntax degrades to literal output
	assert.Equal(t, "(So_HD", Render("(So_HD", Context{"So_HD": "HD-1"}))
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, 48, ProfileFor(Size80m).Columns)
	assert.Equal(t, 32, ProfileFor(Size57m).Columns)
	assert.False(t, ProfileFor(SizeA4).Thermal)
	// unknown size falls back to A4
	assert.Equal(t, SizeA4, ProfileFor("letter").Size)
}

func TestInjectItems(t *testing.T) {
	body := "header\n" + ItemsMarker + "\nfooter"
	got := InjectItems(body, "<table/>")
	assert.Equal(t, "header\n<table/>\nfooter", got)

	// without a marker the table is appended
	assert.True(t, strings.HasSuffix(InjectItems("header", "<table/>"), "<table/>"))
}

func TestRewriteThermalMarkup(t *testing.T) {
	in := "[C][B]CỬA HÀNG ABC[/B]\n[R]21.600\nplain"
	got := RewriteThermalMarkup(in)
	assert.Contains(t, got, `<div class="text-center"><span class="bold">CỬA HÀNG ABC</span></div>`)
	assert.Contains(t, got, `<div class="text-right">21.600</div>`)
	assert.Contains(t, got, "plain")
}

func TestWrapThermal(t *testing.T) {
	p := ProfileFor(Size57m)
	doc := Wrap("[C]hello", p)
	assert.Contains(t, doc, "width: 57mm")
	assert.Contains(t, doc, `<div class="text-center">hello</div>`)
	assert.Contains(t, doc, "monospace")
}

func TestWrapA4(t *testing.T) {
	doc := Wrap("noi dung", ProfileFor(SizeA4))
	assert.Contains(t, doc, "size: A4")
	assert.Contains(t, doc, "noi dung")
}
