// Package zerolog constructs the application logger.
package zerolog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger that writes JSON to file. The terminal belongs to the
// reading view, so an empty file yields a disabled logger.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, err
	}

	if file == "" {
		return zerolog.Nop(), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), closer, err
	}
	closer = func() { _ = f.Close() }

	l := zerolog.New(f).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
