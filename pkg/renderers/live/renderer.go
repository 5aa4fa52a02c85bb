package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledkarlsson/fiftyone/pkg/render"
)

type Option func(*Renderer)

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(rd *Renderer) {
		rd.input = r
	}
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(rd *Renderer) {
		rd.output = w
	}
}

// WithAltScreen runs the session in the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(rd *Renderer) {
		rd.altScreen = enabled
	}
}

// Renderer runs a full-screen keyboard session over the controls.
type Renderer struct {
	input     io.Reader
	output    io.Writer
	altScreen bool
}

// New constructs the live renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "live"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render runs the session until the user quits and returns the JSON summary
// of the committed state.
func (r *Renderer) Render(ctx context.Context, controls []*render.Control, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("live: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.input != nil {
		programOptions = append(programOptions, tea.WithInput(r.input))
	}
	if r.output != nil {
		programOptions = append(programOptions, tea.WithOutput(r.output))
	}
	if r.altScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	program := tea.NewProgram(NewModel(controls, opts), programOptions...)
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("live: %w", err)
	}
	return render.EncodeJSON(controls)
}

var _ render.Renderer = (*Renderer)(nil)
