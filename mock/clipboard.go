package mock

import "github.com/fwojciec/folio"

// Compile-time interface verification.
var _ folio.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of folio.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

// Copy forwards the paragraph text to CopyFn.
func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
