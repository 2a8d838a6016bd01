package utils

import "strings"

var markupEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// EscapeHTML neutralizes markup in user supplied display text so it can be
// reflected back to browsers as plain text. Only angle brackets are escaped;
// quotes and ampersands in names are left as typed.
func EscapeHTML(s string) string {
	return markupEscaper.Replace(s)
}
