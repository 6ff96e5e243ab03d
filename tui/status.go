package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shururuun/TourGuide-Utils/types"
)

// Summary is the run data shown in the status bar.
type Summary struct {
	Started   int
	Completed int
	Counts    map[types.DiagnosticKind]int
}

// countsText lists the non-zero diagnostic counts in a fixed order.
func (s Summary) countsText() string {
	var parts []string
	for _, k := range []types.DiagnosticKind{types.KindStructural, types.KindTag, types.KindSemantic, types.KindNotice} {
		if n := s.Counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", k, n))
		}
	}
	if len(parts) == 0 {
		return "clean"
	}
	return strings.Join(parts, " ")
}

// renderStatusBar produces a full-width inverted status line showing the
// position in the guide, the current FIXME and the run summary.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" Line %d/%d", m.viewport.YOffset+1, len(m.lines))
	if len(m.fixmes) > 0 {
		cur := "-"
		if m.current >= 0 {
			cur = fmt.Sprint(m.current + 1)
		}
		left += fmt.Sprintf(" | FIXME %s/%d", cur, len(m.fixmes))
	}
	if m.notice != "" {
		left += " | " + m.notice
	}

	right := fmt.Sprintf("%s | S:%d C:%d ", m.summary.countsText(), m.summary.Started, m.summary.Completed)
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width {
		right = fmt.Sprintf("S:%d C:%d ", m.summary.Started, m.summary.Completed)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
