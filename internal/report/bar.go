// internal/report/bar.go
//
// Proportional bar rendering. The fill is computed in eighths of a
// terminal cell using the Unicode block elements, so even a small
// fraction of a narrow bar moves the needle.

package report

import (
	"math"
	"strings"
)

const subcells = 8

// Index 1..7 maps to the partial block glyphs; index 0 is unused
// because a zero remainder draws no partial cell.
var partialBlocks = [subcells]rune{0, '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// Bar renders fraction f as a bar exactly width cells wide. f is
// clamped to [0, 1]; 0 yields all blanks and 1 all full blocks.
func Bar(f float64, width int) string {
	if width < 1 {
		return ""
	}
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	units := int(math.Round(f * float64(width*subcells)))
	if units > width*subcells {
		units = width * subcells
	}
	full := units / subcells
	rem := units % subcells

	var b strings.Builder
	b.Grow(width * 3)
	for i := 0; i < full; i++ {
		b.WriteRune('█')
	}
	used := full
	if rem > 0 {
		b.WriteRune(partialBlocks[rem])
		used++
	}
	for i := used; i < width; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}
