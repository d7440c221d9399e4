// Package bubbletea provides a terminal reader for the corpus using the Bubble Tea framework.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/folio"
)

// Viewer implements folio.Viewer using a Bubble Tea TUI.
type Viewer struct {
	altScreen   bool
	modelOpts   []ModelOption
	programOpts []tea.ProgramOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithModelOptions sets the options of the model the viewer runs.
func WithModelOptions(opts ...ModelOption) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// WithProgramOptions adds Bubble Tea program options, e.g. custom input and
// output for tests.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// WithoutAltScreen renders inline instead of in the alternate screen.
func WithoutAltScreen() ViewerOption {
	return func(v *Viewer) {
		v.altScreen = false
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{altScreen: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the corpus and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, corpus *folio.Corpus) error {
	m := NewModel(corpus, append([]ModelOption{WithContext(ctx)}, v.modelOpts...)...)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	}
	if v.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, v.programOpts...)

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
