package render

import "context"

// Renderer turns a set of filter controls into a byte representation. Static
// renderers draw the current state; interactive renderers run a session
// against the controls and return a summary of the committed result.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, controls []*Control, options RenderOptions) ([]byte, error)
}
