// Package corpus bundles the sample texts shipped with folio.
package corpus

import (
	"embed"
	"io/fs"
)

//go:embed texts/*.json
var files embed.FS

// FS returns the bundled texts rooted at the texts directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, "texts")
	if err != nil {
		panic(err)
	}
	return sub
}
