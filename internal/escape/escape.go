// internal/escape/escape.go
//
// Escaping for text dropped into an HTML text node. Only the three
// characters that can change the markup structure are rewritten.

package escape

import (
	"fmt"
	"regexp"
)

var markupSpecial = regexp.MustCompile(`[&<>]`)

// Text returns s with every &, < and > replaced by its entity so the
// result is safe inside an HTML text node. Everything else passes
// through untouched.
func Text(s string) string {
	return markupSpecial.ReplaceAllStringFunc(s, func(match string) string {
		switch match {
		case "&":
			return "&amp;"
		case "<":
			return "&lt;"
		case ">":
			return "&gt;"
		default:
			// The character class above only admits the three cases;
			// anything else means the matcher itself is broken.
			panic(fmt.Sprintf("escape: matcher produced %q", match))
		}
	})
}
