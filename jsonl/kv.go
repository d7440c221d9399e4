// Package jsonl provides a key/value store kept in a JSONL file.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/folio"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ folio.KV = (*KV)(nil)

// maxLineSize is the maximum size for a single JSONL line (4MB).
const maxLineSize = 4 * 1024 * 1024

type record struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// KV stores one record per line. Every mutation rewrites the whole file.
// Malformed lines are logged and skipped, and dropped by the next write.
type KV struct {
	path   string
	now    func() time.Time
	logger zerolog.Logger
	mu     sync.Mutex
}

// Option configures a KV.
type Option func(*KV)

// WithLogger sets the logger that reports malformed lines.
func WithLogger(l zerolog.Logger) Option {
	return func(s *KV) {
		s.logger = l
	}
}

// NewKV creates a KV backed by the file at path. The file is created on the
// first write.
func NewKV(path string, opts ...Option) *KV {
	s := &KV{path: path, now: time.Now, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value stored under key.
func (s *KV) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Key == key {
			return r.Value, nil
		}
	}
	return nil, folio.ErrNotFound
}

// Set stores value under key, replacing any previous value.
func (s *KV) Set(_ context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("set %s: invalid JSON value", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	r := record{Key: key, Value: value, UpdatedAt: s.now().UTC()}
	replaced := false
	for i := range records {
		if records[i].Key == key {
			records[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, r)
	}
	return s.save(records)
}

// Remove deletes key. Removing a missing key is not an error.
func (s *KV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.Key != key {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return s.save(kept)
}

// load reads every well-formed record. A missing file holds no records.
func (s *KV) load() ([]record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r record
		if err := json.Unmarshal([]byte(line), &r); err != nil || r.Key == "" {
			s.logger.Warn().Err(err).Str("path", s.path).Int("line", lineNum).Msg("skip malformed record")
			continue
		}
		records = append(records, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// save replaces the file through a temporary file in the same directory.
func (s *KV) save(records []record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	w := bufio.NewWriter(f)
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			f.Close()
			return err
		}
		if _, err := w.Write(data); err != nil {
			f.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), s.path)
}
