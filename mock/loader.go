// Package mock provides test doubles for folio interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.CorpusLoader = (*CorpusLoader)(nil)

// CorpusLoader is a mock implementation of folio.CorpusLoader.
type CorpusLoader struct {
	LoadFn func(ctx context.Context) (*folio.Corpus, error)
}

func (l *CorpusLoader) Load(ctx context.Context) (*folio.Corpus, error) {
	return l.LoadFn(ctx)
}
