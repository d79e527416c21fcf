// Package receipt renders user-editable receipt templates. Templates are free
// text with placeholder tokens; unknown or malformed tokens degrade to blank
// or literal output instead of erroring, since cashiers edit templates by hand.
package receipt

import "regexp"

// Context is the flattened substitution data for one render: token name to
// pre-formatted string. It is derived once per render from an order, the
// store settings and a timestamp breakdown.
type Context map[string]string

// Token grammar:
//
//	(Ten_Cua_Hang)              simple token, replaced by context value
//	(Da_Thanh_Toan A|B)         alternation: A if the flag is truthy, else B
//
// Alternation is resolved first so the simple-token pattern can never match
// inside an alternation's literal text.
var (
	altTokenRe    = regexp.MustCompile(`\(([A-Za-z_][A-Za-z0-9_]*) ([^|()]*)\|([^()]*)\)`)
	simpleTokenRe = regexp.MustCompile(`\(([A-Za-z_][A-Za-z0-9_]*)\)`)
)

// Render substitutes every token in tpl from ctx. A given (tpl, ctx) pair
// always yields the same output. Tokens without a context entry render blank;
// text that does not parse as a token is left untouched.
func Render(tpl string, ctx Context) string {
	out := altTokenRe.ReplaceAllStringFunc(tpl, func(m string) string {
		parts := altTokenRe.FindStringSubmatch(m)
		if truthy(ctx[parts[1]]) {
			return parts[2]
		}
		return parts[3]
	})

	return simpleTokenRe.ReplaceAllStringFunc(out, func(m string) string {
		return ctx[m[1:len(m)-1]]
	})
}

func truthy(v string) bool {
	return v != "" && v != "0" && v != "false"
}
