package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/text"
)

// FastSteps is how many stops a shifted arrow moves a handle.
const FastSteps = 10

// Model is the Bubble Tea model driving a set of controls from the keyboard.
// Arrow keys are drag ticks; enter commits.
type Model struct {
	controls []*render.Control
	focus    int
	handle   int
	keys     KeyMap
	help     help.Model
	blocks   *text.Renderer
	opts     render.RenderOptions
	quitting bool
}

// NewModel builds a model over the visible controls.
func NewModel(controls []*render.Control, opts render.RenderOptions) *Model {
	var visible []*render.Control
	for _, c := range controls {
		if c != nil && !c.Hidden() {
			visible = append(visible, c)
		}
	}
	return &Model{
		controls: visible,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		blocks:   text.New(),
		opts:     opts,
	}
}

// Focused returns the control receiving keys, nil when there is none.
func (m *Model) Focused() *render.Control {
	if len(m.controls) == 0 {
		return nil
	}
	return m.controls[m.focus]
}

// Handle returns the index of the active handle on the focused control.
func (m *Model) Handle() int {
	return m.handle
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.opts.Width = max(msg.Width-16, 10)
			m.help.Width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		for _, c := range m.controls {
			c.Revert()
			c.PointerUp()
		}
		m.quitting = true
		return m, tea.Quit
	}
	c := m.Focused()
	if c == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Handle):
		if n := c.Handles(); n > 0 {
			m.handle = (m.handle + 1) % n
		}
	case key.Matches(msg, m.keys.Left):
		m.nudge(c, -1)
	case key.Matches(msg, m.keys.Right):
		m.nudge(c, 1)
	case key.Matches(msg, m.keys.FastLeft):
		m.nudge(c, -FastSteps)
	case key.Matches(msg, m.keys.FastRight):
		m.nudge(c, FastSteps)
	case key.Matches(msg, m.keys.Commit):
		c.Commit()
	case key.Matches(msg, m.keys.Revert):
		c.Revert()
		c.PointerUp()
	case key.Matches(msg, m.keys.Toggle):
		c.ToggleIncludeNone()
	case key.Matches(msg, m.keys.Reset):
		c.Reset()
	}
	return m, nil
}

func (m *Model) nudge(c *render.Control, steps int) {
	c.PointerDown()
	c.Nudge(m.handle, steps)
}

// move shifts focus, dropping any uncommitted draft on the control left
// behind.
func (m *Model) move(delta int) {
	next := m.focus + delta
	if next < 0 || next >= len(m.controls) {
		return
	}
	prev := m.controls[m.focus]
	prev.Revert()
	prev.PointerUp()
	m.focus = next
	m.handle = 0
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.controls) == 0 {
		return "No filters to show.\n"
	}
	blocks := make([]string, 0, len(m.controls))
	for i, c := range m.controls {
		blocks = append(blocks, m.blocks.Block(c, m.opts, i == m.focus))
	}
	return strings.Join(blocks, "\n\n") + "\n\n" + m.help.View(m.keys) + "\n"
}
