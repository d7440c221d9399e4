package mock

import (
	"context"

	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of folio.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, corpus *folio.Corpus) error
}

func (v *Viewer) View(ctx context.Context, corpus *folio.Corpus) error {
	return v.ViewFn(ctx, corpus)
}
