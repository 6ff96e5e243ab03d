package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/shururuun/TourGuide-Utils/types"
)

// styles renders diagnostics for one output stream.
type styles struct {
	error   lipgloss.Style
	notice  lipgloss.Style
	heading lipgloss.Style
	quest   lipgloss.Style
}

// newStyles builds the styles for w. Without color every style renders its
// text unchanged.
func newStyles(w io.Writer, color bool) styles {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return styles{
		error:   r.NewStyle().Foreground(lipgloss.Color("196")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("243")),
		heading: r.NewStyle().Bold(true),
		quest:   r.NewStyle().Foreground(lipgloss.Color("228")),
	}
}

// diagnostic picks the style of a diagnostic by its kind.
func (s styles) diagnostic(d types.Diagnostic) lipgloss.Style {
	if d.Kind == types.KindNotice {
		return s.notice
	}
	return s.error
}
