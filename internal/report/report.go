// internal/report/report.go
//
// Human-readable budget report: the observed byte size, the signed
// margin as a percentage, and a boxed proportional bar. Writes to the
// diagnostic stream only; nothing here touches the artifacts.

package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	fallbackWidth = 78
	minBarWidth   = 8
)

var (
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	nominalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

// Margin is the signed fractional distance between the observed size
// and the budget: positive over, negative under.
func Margin(actual, budget int) float64 {
	return float64(actual-budget) / float64(budget)
}

// Reporter prints how a build result sits against its byte budget.
type Reporter struct {
	Budget int

	// Width fixes the bar's cell count. Zero means detect from the
	// output stream, with a fallback when it is not a terminal.
	Width int
}

// Print writes the report for an observed byte count to w.
func (r Reporter) Print(w io.Writer, actual int) {
	margin := Margin(actual, r.Budget)
	fmt.Fprintf(w, "packed size: %d bytes (budget %d)\n", actual, r.Budget)

	style := nominalStyle
	fraction := -margin // remaining share of the budget
	label := "under budget"
	if margin > 0 {
		style = alertStyle
		fraction = margin // overage share of the budget
		label = "over budget"
	}
	fmt.Fprintln(w, style.Render(fmt.Sprintf("%.1f%% %s", math.Abs(margin)*100, label)))

	bar := Bar(fraction, r.barWidth(w))
	fmt.Fprintln(w, boxStyle.Render(style.Render(bar)))
}

func (r Reporter) barWidth(w io.Writer) int {
	if r.Width > 0 {
		return r.Width
	}
	width := fallbackWidth
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols - 2 // leave room for the box borders
		}
	}
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}
