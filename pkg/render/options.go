package render

// Format selects the serialization a renderer produces.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// DefaultWidth is the track width, in terminal cells, used when none is set.
const DefaultWidth = 40

// RenderOptions describe per-call settings renderers use to customise their
// output without touching the controls.
type RenderOptions struct {
	// Format picks text or JSON output. Interactive renderers always report
	// their result as JSON.
	Format Format
	// Width is the track width in cells; zero means DefaultWidth.
	Width int
	// NoColor disables ANSI styling.
	NoColor bool
}

// TrackWidth resolves the configured width.
func (o RenderOptions) TrackWidth() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}
