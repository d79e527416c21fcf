package receipt

import (
	"fmt"
	"strings"
)

// Size identifies a supported paper profile.
type Size string

const (
	SizeA4  Size = "a4"
	Size80m Size = "k80" // 80mm thermal roll
	Size57m Size = "k57" // 57mm thermal roll
)

// Profile is a pure configuration value describing how a rendered receipt is
// laid out for one paper size. It carries no behavior of its own.
type Profile struct {
	Size      Size
	WidthMM   int
	Columns   int     // character columns for ESC/POS output
	FontScale float64 // relative font size for the HTML document
	Thermal   bool
}

var profiles = map[Size]Profile{
	SizeA4:  {Size: SizeA4, WidthMM: 210, Columns: 0, FontScale: 1.0, Thermal: false},
	Size80m: {Size: Size80m, WidthMM: 80, Columns: 48, FontScale: 0.85, Thermal: true},
	Size57m: {Size: Size57m, WidthMM: 57, Columns: 32, FontScale: 0.75, Thermal: true},
}

// ProfileFor returns the profile for a size, defaulting to A4 when the size
// is unknown.
func ProfileFor(s Size) Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[SizeA4]
}

// ItemsMarker is where the structured item table is injected into a rendered
// template body. Templates without the marker get the table appended.
const ItemsMarker = "<!--BANG_KE-->"

// InjectItems places the structured items block into a substituted body.
func InjectItems(body, items string) string {
	if strings.Contains(body, ItemsMarker) {
		return strings.Replace(body, ItemsMarker, items, 1)
	}
	return body + "\n" + items
}

// Wrap produces the final printable HTML document for a substituted body.
// A4 gets a page-sized layout; thermal widths get a narrow monospace column.
func Wrap(body string, p Profile) string {
	if p.Thermal {
		body = RewriteThermalMarkup(body)
		return fmt.Sprintf(thermalShell, p.WidthMM, p.FontScale, body)
	}
	return fmt.Sprintf(a4Shell, p.FontScale, body)
}

// Template authors mark thermal lines with layout prefixes and a bold pair:
//
//	[C]line   centered        [R]line   right-aligned
//	[L]line   left (default)  [B]text[/B]   bold span
//
// RewriteThermalMarkup rewrites those conventions into the print CSS classes.
// This is a purely textual pass; unrecognized text is preserved as-is.
func RewriteThermalMarkup(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "[C]"):
			lines[i] = `<div class="text-center">` + line[3:] + `</div>`
		case strings.HasPrefix(line, "[R]"):
			lines[i] = `<div class="text-right">` + line[3:] + `</div>`
		case strings.HasPrefix(line, "[L]"):
			lines[i] = `<div>` + line[3:] + `</div>`
		}
	}
	s = strings.Join(lines, "\n")
	s = strings.ReplaceAll(s, "[B]", `<span class="bold">`)
	s = strings.ReplaceAll(s, "[/B]", `</span>`)
	return s
}

const a4Shell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 15mm; }
body { font-family: "Times New Roman", serif; font-size: %.2frem; }
table.items { width: 100%%; border-collapse: collapse; }
table.items th, table.items td { border: 1px solid #333; padding: 4px 6px; }
.text-center { text-align: center; }
.text-right { text-align: right; }
.bold { font-weight: bold; }
</style>
</head>
<body>
%s
</body>
</html>`

const thermalShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { margin: 0; }
body { width: %dmm; font-family: monospace; font-size: %.2frem; margin: 0; }
table.items { width: 100%%; border-collapse: collapse; }
table.items td { padding: 1px 2px; }
table.items tr.sep td { border-top: 1px dashed #000; }
.text-center { text-align: center; }
.text-right { text-align: right; }
.bold { font-weight: bold; }
</style>
</head>
<body>
%s
</body>
</html>`
