// Package markdown renders annotation bodies and context notes with glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.BodyRenderer = (*Renderer)(nil)

// minWidth keeps very narrow panes readable.
const minWidth = 20

type cacheKey struct {
	body  string
	width int
}

// Renderer renders markdown for a terminal. Term renderers are built once
// per width and output is memoized, since annotation cards are re-rendered
// on every frame.
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	cache     map[cacheKey]string
}

// NewRenderer creates a Renderer using a glamour style name ("dark",
// "light", "notty").
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[cacheKey]string),
	}
}

// Render renders body wrapped to width. Surrounding blank lines that glamour
// adds are trimmed.
func (r *Renderer) Render(body string, width int) (string, error) {
	width = max(width, minWidth)
	key := cacheKey{body: body, width: width}

	r.mu.Lock()
	defer r.mu.Unlock()

	if out, ok := r.cache[key]; ok {
		return out, nil
	}

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStylePath(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		r.renderers[width] = tr
	}

	out, err := tr.Render(body)
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, "\n")
	r.cache[key] = out
	return out, nil
}
