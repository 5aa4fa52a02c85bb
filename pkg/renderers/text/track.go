package text

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ledkarlsson/fiftyone/pkg/slider"
)

const (
	railGlyph   = "─"
	fillGlyph   = "━"
	handleGlyph = "●"
)

type styles struct {
	header lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(color string, noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{header: plain, accent: plain, muted: plain}
	}
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return styles{
		header: accent.Bold(true),
		accent: accent,
		muted:  lipgloss.NewStyle().Faint(true),
	}
}

// position maps v onto a cell index of a track width cells wide.
func position(v, lo, hi float64, width int) int {
	if width <= 1 || hi <= lo {
		return 0
	}
	pos := int(math.Round((v - lo) / (hi - lo) * float64(width-1)))
	return min(max(pos, 0), width-1)
}

// handleCells returns the cell of every set handle, -1 for unset ones.
func handleCells(view slider.View, width int) []int {
	cells := make([]int, len(view.Handles))
	for i, h := range view.Handles {
		v, ok := h.Value.Float()
		if !ok {
			cells[i] = -1
			continue
		}
		cells[i] = position(v, view.Min, view.Max, width)
	}
	return cells
}

func drawTrack(view slider.View, width int, st styles) string {
	cells := handleCells(view, width)
	fillFrom, fillTo := -1, -1
	switch len(cells) {
	case 1:
		if cells[0] >= 0 {
			fillFrom, fillTo = 0, cells[0]
		}
	case 2:
		fillFrom, fillTo = cells[0], cells[1]
		if fillFrom < 0 {
			fillFrom = 0
		}
		if fillTo < 0 {
			fillTo = width - 1
		}
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case isHandle(cells, i):
			b.WriteString(st.accent.Render(handleGlyph))
		case i >= fillFrom && i <= fillTo && fillFrom >= 0:
			b.WriteString(st.accent.Render(fillGlyph))
		default:
			b.WriteString(railGlyph)
		}
	}
	return b.String()
}

func isHandle(cells []int, i int) bool {
	for _, c := range cells {
		if c == i {
			return true
		}
	}
	return false
}

// labelLine centres each handle label under its handle without letting
// labels overlap.
func labelLine(view slider.View, width, offset int) string {
	cells := handleCells(view, width)
	var b strings.Builder
	next := 0
	for i, h := range view.Handles {
		label := flatten(h.Label)
		if label == "" || cells[i] < 0 {
			continue
		}
		w := runewidth.StringWidth(label)
		start := max(offset+cells[i]-w/2, next, 0)
		b.WriteString(strings.Repeat(" ", start-next))
		b.WriteString(label)
		next = start + w + 1
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}
