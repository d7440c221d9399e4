package fs

import (
	"context"
	"encoding/json"
	"fmt"
	iofs "io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/folio"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches every JSON file below the corpus root.
const DefaultPattern = "**/*.json"

// Compile-time interface verification.
var _ folio.CorpusLoader = (*Loader)(nil)

// Loader reads a corpus from JSON files in a file system. Each file holds
// either a single text or an object mapping text ids to texts.
type Loader struct {
	fsys    iofs.FS
	pattern string
	limit   int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPattern sets the doublestar pattern used to find text files.
func WithPattern(pattern string) LoaderOption {
	return func(l *Loader) {
		l.pattern = pattern
	}
}

// WithConcurrency bounds the number of files decoded at once.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.limit = n
		}
	}
}

// NewLoader creates a Loader over fsys.
func NewLoader(fsys iofs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:    fsys,
		pattern: DefaultPattern,
		limit:   8,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load finds, decodes and validates every text file.
func (l *Loader) Load(ctx context.Context) (*folio.Corpus, error) {
	paths, err := doublestar.Glob(l.fsys, l.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", l.pattern, err)
	}
	if len(paths) == 0 {
		return nil, folio.ErrNoTexts
	}
	sort.Strings(paths)

	decoded := make([][]folio.Text, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			texts, err := l.decodeFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			decoded[i] = texts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var texts []folio.Text
	for _, d := range decoded {
		texts = append(texts, d...)
	}
	if len(texts) == 0 {
		return nil, folio.ErrNoTexts
	}
	return folio.NewCorpus(texts)
}

func (l *Loader) decodeFile(path string) ([]folio.Text, error) {
	data, err := iofs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses one corpus file. An object with a "paragraphs" member is a
// single text; any other object maps text ids to texts, and entries without
// an id take their key.
func Decode(data []byte) ([]folio.Text, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["paragraphs"]; ok {
		var t folio.Text
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return []folio.Text{t}, nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	texts := make([]folio.Text, 0, len(keys))
	for _, k := range keys {
		var t folio.Text
		if err := json.Unmarshal(fields[k], &t); err != nil {
			return nil, fmt.Errorf("text %q: %w", k, err)
		}
		if t.ID == "" {
			t.ID = k
		}
		if t.ID != k {
			return nil, fmt.Errorf("text %q: id %q does not match key", k, t.ID)
		}
		texts = append(texts, t)
	}
	return texts, nil
}
