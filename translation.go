package folio

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by a KV when a key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a persistent key/value store holding JSON documents.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// TranslationKey returns the storage key for a text's user translations.
func TranslationKey(textID string) string {
	return "translations-" + textID
}

// UserTranslation is the reader's own translation of one paragraph.
type UserTranslation struct {
	Text         string    `json:"text"`
	LastModified time.Time `json:"lastModified"`
}

// Translations maps paragraph ids to the reader's translations of one text.
type Translations map[string]UserTranslation

// With returns a copy of t with paragraphID set to text.
func (t Translations) With(paragraphID, text string, at time.Time) Translations {
	out := make(Translations, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[paragraphID] = UserTranslation{Text: text, LastModified: at}
	return out
}

// TranslationStore persists user translations per text on top of a KV.
// Read failures degrade to an empty set; write failures are logged and
// returned so callers can keep the in-memory copy.
type TranslationStore struct {
	kv     KV
	logger zerolog.Logger
}

// NewTranslationStore creates a TranslationStore.
func NewTranslationStore(kv KV, logger zerolog.Logger) *TranslationStore {
	return &TranslationStore{kv: kv, logger: logger}
}

// Load returns the stored translations for textID. Missing or corrupted
// data yields an empty set.
func (s *TranslationStore) Load(ctx context.Context, textID string) Translations {
	key := TranslationKey(textID)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error().Err(err).Str("key", key).Msg("load translations")
		}
		return Translations{}
	}
	var t Translations
	if err := json.Unmarshal(raw, &t); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding corrupted translations")
		return Translations{}
	}
	if t == nil {
		t = Translations{}
	}
	return t
}

// Save replaces the stored translations for textID.
func (s *TranslationStore) Save(ctx context.Context, textID string, t Translations) error {
	key := TranslationKey(textID)
	raw, err := json.Marshal(t)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("encode translations")
		return err
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("save translations")
		return err
	}
	return nil
}

// Clear removes every stored translation for textID and leaves other
// texts untouched.
func (s *TranslationStore) Clear(ctx context.Context, textID string) error {
	key := TranslationKey(textID)
	if err := s.kv.Remove(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("clear translations")
		return err
	}
	return nil
}
