package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleStep = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleAction = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleFixme = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleCurrent = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Background(lipgloss.Color("237")).
			Bold(true)

	styleBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleComment = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleOther = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// lineKind identifies the type of a guide line for styling.
type lineKind int

const (
	kindOther lineKind = iota
	kindStep
	kindFixme
	kindBanner
	kindComment
	kindBlank
)

const fixmePrefix = "; --- FIXME: "

// classifyLine determines what kind of guide line this is.
func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return kindBlank
	case strings.HasPrefix(line, fixmePrefix):
		return kindFixme
	case strings.HasPrefix(line, "; === "):
		return kindBanner
	case strings.HasPrefix(line, ";"):
		return kindComment
	case len(line) > 2 && line[1] == ' ' && strings.HasSuffix(line, "|"):
		return kindStep
	default:
		return kindOther
	}
}

// styledStep renders a step line with its action code highlighted.
func styledStep(line string) string {
	return styleAction.Render(line[:1]) + styleStep.Render(line[1:])
}

// renderLine applies the style for a line kind.
func renderLine(line string, kind lineKind, current bool) string {
	switch kind {
	case kindStep:
		return styledStep(line)
	case kindFixme:
		if current {
			return styleCurrent.Render(line)
		}
		return styleFixme.Render(line)
	case kindBanner:
		return styleBanner.Render(line)
	case kindComment:
		return styleComment.Render(line)
	case kindBlank:
		return ""
	default:
		return styleOther.Render(line)
	}
}
