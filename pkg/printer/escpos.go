package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
	FontWide   = 0x10
	FontTall   = 0x01
)

// Print widths in character columns for the supported thermal rolls.
const (
	Columns57mm = 32
	Columns80mm = 48
)

// Document builds an ESC/POS byte stream for a thermal receipt.
// Column math is rune-based so Vietnamese diacritics do not skew layout.
type Document struct {
	buf     bytes.Buffer
	columns int
}

// NewDocument starts a document for the given roll width. Non-positive
// widths fall back to the 57mm roll.
func NewDocument(columns int) *Document {
	if columns <= 0 {
		columns = Columns57mm
	}
	d := &Document{columns: columns}
	d.buf.Write([]byte{esc, '@'}) // initialize
	return d
}

// Align sets text alignment for subsequent lines.
func (d *Document) Align(a int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(a)})
	return d
}

// Bold switches bold printing on or off.
func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// FontSize sets the character size (FontNormal, FontDouble, FontWide, FontTall).
func (d *Document) FontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Line writes a line of text followed by a line feed.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// Linef writes a formatted line.
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Feed emits n blank lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Separator prints a full-width dashed rule.
func (d *Document) Separator() *Document {
	return d.Line(strings.Repeat("-", d.columns))
}

// KeyValue prints a left-aligned key with its value flushed right.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.columns - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if pad < 1 {
		pad = 1
	}
	return d.Line(key + strings.Repeat(" ", pad) + value)
}

// ItemLine prints "qty x name" with the line total flushed right. Long names
// are truncated so the total always stays on the same line.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	maxPrefix := d.columns - utf8.RuneCountInString(total) - 1
	if utf8.RuneCountInString(prefix) > maxPrefix && maxPrefix > 1 {
		prefix = string([]rune(prefix)[:maxPrefix-1]) + "."
	}
	return d.KeyValue(prefix, total)
}

// QRCode prints a QR symbol (model 2) with the given payload, typically the
// bank-transfer content for the order. Size is the module size 1..16.
func (d *Document) QRCode(payload string, size byte) *Document {
	if payload == "" {
		return d
	}
	if size < 1 || size > 16 {
		size = 4
	}

	// select model 2
	d.buf.Write([]byte{gs, '(', 'k', 4, 0, 49, 65, 50, 0})
	// module size
	d.buf.Write([]byte{gs, '(', 'k', 3, 0, 49, 67, size})
	// error correction level M
	d.buf.Write([]byte{gs, '(', 'k', 3, 0, 49, 69, 49})
	// store payload
	n := len(payload) + 3
	d.buf.Write([]byte{gs, '(', 'k', byte(n % 256), byte(n / 256), 49, 80, 48})
	d.buf.WriteString(payload)
	// print symbol
	d.buf.Write([]byte{gs, '(', 'k', 3, 0, 49, 81, 48})
	return d
}

// Cut feeds and cuts the paper.
func (d *Document) Cut() *Document {
	d.Feed(3)
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
