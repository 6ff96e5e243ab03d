package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = " n/p next/prev FIXME  / search  g/G top/bottom  q quit"

// Model is the Bubble Tea model for reviewing a filtered guide.
type Model struct {
	lines   []string
	kinds   []lineKind
	fixmes  []int // indices into lines
	summary Summary

	viewport viewport.Model
	input    textinput.Model
	searches *searches

	current   int // index into fixmes, -1 before the first jump
	searching bool
	notice    string

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a model over the lines of a rewritten guide.
func New(lines []string, sum Summary) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 128
	ti.PromptStyle = styleSearchPrompt

	m := Model{
		lines:    lines,
		kinds:    make([]lineKind, len(lines)),
		summary:  sum,
		input:    ti,
		searches: newSearches(50),
		current:  -1,
	}
	for i, line := range lines {
		m.kinds[i] = classifyLine(line)
		if m.kinds[i] == kindFixme {
			m.fixmes = append(m.fixmes, i)
		}
	}
	return m
}

// Run starts the Bubble Tea program.
func Run(lines []string, sum Summary) error {
	p := tea.NewProgram(New(lines, sum), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window resizes and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // status bar + prompt line
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.viewport.SetHorizontalStep(8)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "n":
		m.jump(1)
		return m, nil
	case "p":
		m.jump(-1)
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	case "/":
		m.searching = true
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.endSearch()
		return m, nil
	case "enter":
		term := strings.TrimSpace(m.input.Value())
		if term == "" {
			term, _ = m.searches.last()
		}
		m.endSearch()
		if term != "" {
			m.searches.add(term)
			m.search(term)
		}
		return m, nil
	case "up":
		if t, ok := m.searches.older(); ok {
			m.input.SetValue(t)
			m.input.CursorEnd()
		}
		return m, nil
	case "down":
		t, _ := m.searches.newer()
		m.input.SetValue(t)
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) endSearch() {
	m.searching = false
	m.input.Blur()
	m.input.SetValue("")
}

// jump moves to the next (dir 1) or previous (dir -1) FIXME line, wrapping
// around at either end.
func (m *Model) jump(dir int) {
	n := len(m.fixmes)
	if n == 0 {
		m.notice = "no FIXME lines"
		return
	}
	switch {
	case m.current < 0 && dir > 0:
		m.current = 0
	case m.current < 0:
		m.current = n - 1
	default:
		m.current = (m.current + dir + n) % n
	}
	m.refreshViewport()
	m.center(m.fixmes[m.current])
}

// search scrolls to the next line below the top of the view that contains
// term, ignoring case.
func (m *Model) search(term string) {
	needle := strings.ToLower(term)
	start := m.viewport.YOffset + 1
	for i := range m.lines {
		idx := (start + i) % len(m.lines)
		if strings.Contains(strings.ToLower(m.lines[idx]), needle) {
			m.center(idx)
			return
		}
	}
	m.notice = fmt.Sprintf("not found: %s", term)
}

// center scrolls so that line idx sits in the middle of the view.
func (m *Model) center(idx int) {
	off := idx - m.viewport.Height/2
	if off < 0 {
		off = 0
	}
	m.viewport.SetYOffset(off)
}

// currentLine returns the guide line index of the selected FIXME, or -1.
func (m Model) currentLine() int {
	if m.current < 0 {
		return -1
	}
	return m.fixmes[m.current]
}

// refreshViewport re-styles all lines and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	cur := m.currentLine()
	styled := make([]string, len(m.lines))
	for i, line := range m.lines {
		styled[i] = renderLine(line, m.kinds[i], i == cur)
	}
	off := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.SetYOffset(off)
}

// View renders the viewport, the status bar and the prompt line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	bottom := styleComment.Render(helpText)
	if m.searching {
		bottom = m.input.View()
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + bottom
}

// viewportKeyMap returns a viewport keymap without letter bindings, which
// are used for navigation between diagnostics.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
		Left:         key.NewBinding(key.WithKeys("left")),
		Right:        key.NewBinding(key.WithKeys("right")),
	}
}
