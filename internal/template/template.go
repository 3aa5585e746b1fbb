// internal/template/template.go
//
// A deliberately small substitution engine for the document template.
// Placeholders look like {{name}} and every one of them must resolve;
// a missing value aborts the whole render so a half-substituted
// document can never reach disk.

package template

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrUndefinedVariable reports a placeholder that has no value in the
// variable set. Callers match it with errors.Is; the wrapping error
// names the offending identifier.
var ErrUndefinedVariable = errors.New("undefined template variable")

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes every {{name}} placeholder in tpl with vars[name].
// The same placeholder may appear any number of times and resolves to
// the same value each time. Substitution is a single pass: inserted
// values are never rescanned, so a value containing {{...}} stays
// literal in the output.
func Render(tpl string, vars map[string]string) (string, error) {
	var missing string
	out := placeholder.ReplaceAllStringFunc(tpl, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := vars[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("template: %w: %s", ErrUndefinedVariable, missing)
	}
	return out, nil
}
