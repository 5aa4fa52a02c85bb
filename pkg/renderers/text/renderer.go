package text

import (
	"context"
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/ledkarlsson/fiftyone/pkg/render"
)

type Option func(*config)

type config struct {
	includeNoneLabel string
	resetLabel       string
}

// WithIncludeNoneLabel replaces the checkbox caption.
func WithIncludeNoneLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.includeNoneLabel = label
		}
	}
}

// WithResetLabel replaces the reset caption.
func WithResetLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.resetLabel = label
		}
	}
}

// Renderer draws controls as plain terminal text, one block per visible
// control.
type Renderer struct {
	cfg config
}

// New constructs the text renderer applying any provided options.
func New(options ...Option) *Renderer {
	cfg := config{includeNoneLabel: "include missing", resetLabel: "reset"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws every visible control. With FormatJSON it emits the committed
// summaries instead.
func (r *Renderer) Render(ctx context.Context, controls []*render.Control, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("text renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Format == render.FormatJSON {
		return render.EncodeJSON(controls)
	}

	var blocks []string
	for _, c := range controls {
		if c == nil || c.Hidden() {
			continue
		}
		blocks = append(blocks, r.Block(c, opts, false))
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

// Block draws one control. focused marks it as the one receiving keyboard
// input, for interactive front ends that reuse the layout.
func (r *Renderer) Block(c *render.Control, opts render.RenderOptions, focused bool) string {
	view := c.View()
	if view.Hidden {
		return ""
	}
	st := newStyles(view.Color, opts.NoColor)
	vis := c.Visibility()

	var lines []string
	if c.Named() != nil {
		header := c.Label()
		if focused {
			header = "> " + header
		}
		lines = append(lines, st.header.Render(header))
	} else if focused {
		lines = append(lines, st.header.Render("> "+c.Label()))
	}
	if view.Title != "" {
		lines = append(lines, st.muted.Render(view.Title))
	}

	width := opts.TrackWidth()
	minLabel, maxLabel := flatten(view.MinLabel), flatten(view.MaxLabel)
	offset := 0
	row := drawTrack(view, width, st)
	if minLabel != "" {
		row = st.muted.Render(minLabel) + " " + row
		offset = runewidth.StringWidth(minLabel) + 1
	}
	if maxLabel != "" {
		row += " " + st.muted.Render(maxLabel)
	}
	lines = append(lines, row)

	if view.ShowLabels {
		if labels := labelLine(view, width, offset); strings.TrimSpace(labels) != "" {
			lines = append(lines, labels)
		}
	}

	if vis.Divider {
		lines = append(lines, st.muted.Render(strings.Repeat("─", rowWidth(width, minLabel, maxLabel))))
	}
	if vis.Checkbox {
		named := c.Named().View()
		box := "[ ]"
		if named.IncludeNone {
			box = "[x]"
		}
		lines = append(lines, st.accent.Render(box)+" "+r.cfg.includeNoneLabel+" ("+humanize.Comma(int64(named.NoneCount))+")")
	}
	if vis.Reset {
		lines = append(lines, st.accent.Render("["+r.cfg.resetLabel+"]"))
	}
	return strings.Join(lines, "\n")
}

func rowWidth(width int, minLabel, maxLabel string) int {
	total := width
	if minLabel != "" {
		total += runewidth.StringWidth(minLabel) + 1
	}
	if maxLabel != "" {
		total += runewidth.StringWidth(maxLabel) + 1
	}
	return total
}

// flatten folds multi-line date-time labels onto one line.
func flatten(label string) string {
	return strings.ReplaceAll(label, "\n", " ")
}

var _ render.Renderer = (*Renderer)(nil)
