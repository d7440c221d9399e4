// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/folio"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Ensure System implements the Clipboard interface.
var _ folio.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard utility
// (pbcopy, xclip, xsel, wl-copy or clip.exe).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(content)
}
