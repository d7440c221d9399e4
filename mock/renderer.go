package mock

import "github.com/fwojciec/folio"

// Compile-time interface verification.
var _ folio.BodyRenderer = (*BodyRenderer)(nil)

// BodyRenderer is a mock implementation of folio.BodyRenderer.
type BodyRenderer struct {
	RenderFn func(body string, width int) (string, error)
}

func (r *BodyRenderer) Render(body string, width int) (string, error) {
	return r.RenderFn(body, width)
}
